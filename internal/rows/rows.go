// Package rows defines the row data shown by the selectable list, its shape
// validation, and loading from YAML or JSON item files.
package rows

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

// defaultCount is the size of the built-in dataset.
const defaultCount = 10

// Row is one line of the list. Rows are identified by position only.
type Row struct {
	Text string `yaml:"text" json:"text"`
}

// List is an ordered sequence of rows. Consumers never mutate it.
type List []Row

// Warning is a shape-validation finding. Warnings never stop rendering.
type Warning struct {
	Position int
	Message  string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Position, w.Message)
}

// Default returns the built-in dataset: "This is line 1" through "This is line 10".
func Default() List {
	return FromStrings(lo.Times(defaultCount, func(i int) string {
		return fmt.Sprintf("This is line %d", i+1)
	})...)
}

// FromStrings builds a list with one row per text.
func FromStrings(texts ...string) List {
	return lo.Map(texts, func(text string, _ int) Row {
		return Row{Text: normalize(text)}
	})
}

// Texts returns the display text of every row in order.
func (l List) Texts() []string {
	return lo.Map(l, func(r Row, _ int) string { return r.Text })
}

// Len is nil-safe.
func (l List) Len() int {
	return len(l)
}

// Validate reports rows without usable text: empty text and text made only of
// whitespace both produce a warning. A nil list is valid.
func Validate(l List) []Warning {
	var warnings []Warning
	for i, r := range l {
		if strings.TrimSpace(r.Text) == "" {
			warnings = append(warnings, Warning{Position: i, Message: "text is required"})
		}
	}
	return warnings
}

func normalize(text string) string {
	return norm.NFC.String(text)
}
