package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/rowpick/internal/logging"
	"github.com/rshade/rowpick/internal/rows"
	"github.com/rshade/rowpick/internal/tui"
	listview "github.com/rshade/rowpick/internal/tui/list"
)

// runOptions holds the flags shared by the root command and `run`.
type runOptions struct {
	itemsPath string
	plain     bool
	selects   []int
}

func addRunFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.itemsPath, "items", "",
		"YAML or JSON file with a list of {text: ...} rows (default: built-in ten rows)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false,
		"render the list once instead of running interactively")
	cmd.Flags().IntSliceVar(&opts.selects, "select", nil,
		"click the row at this position before showing the list (repeatable)")
}

func newRunCmd(sess *session) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the list and select rows by clicking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, sess, opts)
		},
	}
	addRunFlags(cmd, &opts)
	return cmd
}

// loadItems returns the built-in dataset when path is empty.
func loadItems(path string) (rows.List, error) {
	if path == "" {
		return rows.Default(), nil
	}
	return rows.Load(path)
}

func runList(cmd *cobra.Command, sess *session, opts runOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	items, err := loadItems(opts.itemsPath)
	if err != nil {
		return err
	}

	modelOpts := []listview.Option{
		listview.WithStyles(tui.NewStyles(tui.PaletteFromConfig(sess.cfg.Colors))),
		listview.WithLogger(logging.ComponentLogger(log, "listview")),
		listview.WithOnSelect(func(position int, row rows.Row) {
			log.Info().Ctx(ctx).Int("position", position).Str("text", row.Text).Msg("row selected")
		}),
	}
	if sess.cfg.List.ShowHeader {
		modelOpts = append(modelOpts, listview.WithHeader(sess.cfg.List.Title))
	}
	m := listview.New(items, modelOpts...)

	for _, position := range opts.selects {
		if !m.Click(position) {
			return fmt.Errorf("--select %d: out of range for %d rows", position, m.ItemCount())
		}
	}

	switch tui.DetectOutputMode(cmd.OutOrStdout(), opts.plain) {
	case tui.OutputModeInteractive:
		return runInteractive(ctx, cmd.OutOrStdout(), m)
	case tui.OutputModePlain:
		fallthrough
	default:
		return renderPlain(cmd.OutOrStdout(), m)
	}
}

func runInteractive(ctx context.Context, w io.Writer, m *listview.Model) error {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive list: %w", err)
	}
	return writeSelection(w, m)
}

// renderPlain writes the rows once, followed by the selection.
func renderPlain(w io.Writer, m *listview.Model) error {
	if body := m.RenderRows(); body != "" {
		if _, err := fmt.Fprintln(w, body); err != nil {
			return err
		}
	}
	return writeSelection(w, m)
}

func writeSelection(w io.Writer, m *listview.Model) error {
	var err error
	switch position, ok := m.Selected(); {
	case m.ItemCount() == 0:
		_, err = fmt.Fprintln(w, "No rows")
	case ok:
		row, _ := m.SelectedRow()
		_, err = fmt.Fprintf(w, "Selected: row %d (%s)\n", position, row.Text)
	default:
		_, err = fmt.Fprintln(w, "No row selected")
	}
	return err
}
