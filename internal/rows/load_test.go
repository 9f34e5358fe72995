package rows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "yaml sequence", input: "- text: A\n- text: B\n", want: []string{"A", "B"}},
		{name: "json array", input: `[{"text":"A"},{"text":"B"},{"text":"C"}]`, want: []string{"A", "B", "C"}},
		{name: "items mapping", input: "items:\n  - text: X\n", want: []string{"X"}},
		{name: "mapping without items", input: "title: nothing\n", want: []string{}},
		{name: "empty document", input: "", want: []string{}},
		{name: "empty json array", input: "[]", want: []string{}},
		{name: "row without text", input: "- {}\n- text: B\n", want: []string{"", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, append([]string{}, list.Texts()...))
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Run("scalar document", func(t *testing.T) {
		_, err := Parse([]byte("just a string"))
		require.ErrorIs(t, err, ErrInvalidItems)
	})

	t.Run("sequence of scalars", func(t *testing.T) {
		_, err := Parse([]byte("- A\n- B\n"))
		require.ErrorIs(t, err, ErrInvalidItems)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("- text: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("yaml file", func(t *testing.T) {
		path := writeFile(t, "items.yaml", "- text: A\n- text: B\n")

		list, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, list.Texts())
	})

	t.Run("json file", func(t *testing.T) {
		path := writeFile(t, "items.json", `{"items":[{"text":"A"}]}`)

		list, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, list.Texts())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "items.txt", "A\n")

		_, err := Load(path)
		require.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid contents", func(t *testing.T) {
		path := writeFile(t, "items.yml", "hello")

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalidItems)
		assert.Contains(t, err.Error(), path)
	})
}
