// Package rowitem renders a single row of the selectable list.
//
// A row is a pure function of its Props. It never holds state and never
// calls OnActivate while rendering; the owning list calls Activate when the
// row is clicked.
package rowitem

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/rowpick/internal/tui"
)

const (
	keyPrefix = "row-"
	ellipsis  = "…"
)

// lineBreaks folds anything that would start a new screen line into a space.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Props are everything a row needs to render.
type Props struct {
	Key        string
	Position   int
	IsSelected bool
	Text       string
	// OnActivate is deferred: it runs on a click, never during Render.
	OnActivate func()
}

// Key returns the stable identity of the row at position. Positions are
// valid keys because rows are never reordered or spliced.
func Key(position int) string {
	return keyPrefix + strconv.Itoa(position)
}

// Equal compares the value fields. OnActivate is not comparable and is ignored,
// so a row whose callback changed but whose values did not is treated as equal.
func (p Props) Equal(other Props) bool {
	return p.Key == other.Key &&
		p.Position == other.Position &&
		p.IsSelected == other.IsSelected &&
		p.Text == other.Text
}

// Render draws the row on exactly one screen line. width <= 0 leaves the row
// at its natural width; otherwise text that does not fit is truncated with an
// ellipsis and shorter rows are padded to width.
func Render(p Props, styles tui.Styles, width int) string {
	marker := tui.MarkerUnselected
	if p.IsSelected {
		marker = tui.MarkerSelected
	}

	style := styles.Row(p.IsSelected)
	content := " " + marker + " " + SingleLine(p.Text)
	if width > 0 {
		content = ansi.Truncate(content, width-style.GetHorizontalPadding(), ellipsis)
		style = style.Width(width)
	}
	return style.Render(content)
}

// SingleLine replaces line breaks and tabs in text with spaces.
func SingleLine(text string) string {
	return lineBreaks.Replace(text)
}

// Activate runs the row's callback once. A nil callback is a no-op.
func Activate(p Props) {
	if p.OnActivate != nil {
		p.OnActivate()
	}
}
