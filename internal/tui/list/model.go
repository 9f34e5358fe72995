package listview

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/rshade/rowpick/internal/rows"
	"github.com/rshade/rowpick/internal/tui"
	"github.com/rshade/rowpick/internal/tui/rowitem"
)

// focusColumnWidth is the width of the focus indicator plus its separator.
const focusColumnWidth = 2

// SelectFunc observes selection changes. It runs after the selection is stored.
type SelectFunc func(position int, row rows.Row)

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the row and chrome styles.
func WithStyles(s tui.Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithHeader shows a title line above the rows.
func WithHeader(title string) Option {
	return func(m *Model) {
		m.title = title
		m.showHeader = true
	}
}

// WithOnSelect registers a selection observer.
func WithOnSelect(fn SelectFunc) Option {
	return func(m *Model) { m.onSelect = fn }
}

// WithLogger sets the logger used for validation warnings and selection events.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithClipboard replaces the clipboard writer used by the copy key.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copyText = fn }
}

// cachedRow is a rendered row and the props it was rendered from.
type cachedRow struct {
	props rowitem.Props
	line  string
}

// Model is the selectable list container.
type Model struct {
	// rows is never written by the model.
	rows rows.List

	// selected is the selected row position; nil means none.
	selected *int

	// cursor is the keyboard focus. It never changes selection by itself.
	cursor int

	// visibleFrom is the first visible row (inclusive).
	visibleFrom int

	// visibleTo is the last visible row (exclusive).
	visibleTo int

	height int
	width  int

	title      string
	showHeader bool
	styles     tui.Styles
	keys       KeyMap
	help       help.Model

	onSelect SelectFunc
	copyText func(string) error
	status   string
	logger   zerolog.Logger

	// cache holds rendered rows by key; cacheWidth is the width they were drawn at.
	cache      map[string]cachedRow
	cacheWidth int
	renders    int
}

// New creates a list over items. A nil list renders no rows. Rows without
// text are reported as warnings and rendered anyway.
func New(items rows.List, opts ...Option) *Model {
	m := &Model{
		rows:     items,
		styles:   tui.NewStyles(tui.DefaultPalette()),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		copyText: clipboard.WriteAll,
		logger:   zerolog.Nop(),
		cache:    make(map[string]cachedRow),
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, w := range rows.Validate(items) {
		m.logger.Warn().
			Int("position", w.Position).
			Str("warning", w.Message).
			Msg("row failed validation")
	}

	m.updateVisibleRange()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles mouse, keyboard and resize messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.help.Width = msg.Width
		m.updateVisibleRange()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	position, ok := m.RowAt(msg.Y)
	if !ok {
		m.logger.Debug().Int("x", msg.X).Int("y", msg.Y).Msg("click outside rows")
		return
	}
	m.Click(position)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(m.cursor - 1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)

	case key.Matches(msg, m.keys.Home):
		m.moveCursor(0)

	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows) - 1)

	case key.Matches(msg, m.keys.Activate):
		m.Click(m.cursor)

	case key.Matches(msg, m.keys.Copy):
		m.copySelected()
	}

	return nil
}

// Click activates the row at position the same way a mouse click does.
// It reports false when position is out of range.
func (m *Model) Click(position int) bool {
	if position < 0 || position >= len(m.rows) {
		m.logger.Debug().Int("position", position).Msg("ignoring activation out of range")
		return false
	}
	rowitem.Activate(m.itemProps(position))
	return true
}

// selectRow is the only writer of the selection.
func (m *Model) selectRow(position int) {
	m.selected = &position
	m.status = ""
	m.moveCursor(position)

	m.logger.Debug().Int("position", position).Msg("row selected")

	if m.onSelect != nil {
		m.onSelect(position, m.rows[position])
	}
}

func (m *Model) moveCursor(position int) {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}

	switch {
	case position < 0:
		m.cursor = 0
	case position >= len(m.rows):
		m.cursor = len(m.rows) - 1
	default:
		m.cursor = position
	}

	m.updateVisibleRange()
}

func (m *Model) copySelected() {
	row, ok := m.SelectedRow()
	if !ok {
		m.status = "No row selected"
		return
	}

	if err := m.copyText(row.Text); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard write failed")
		m.status = "Copy failed: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("Copied row %d", *m.selected)
}

// isSelected compares the shared selection with one row's position.
func (m *Model) isSelected(position int) bool {
	return m.selected != nil && *m.selected == position
}

// itemProps builds the props for one row. The callback captures position and
// only runs when the row is activated.
func (m *Model) itemProps(position int) rowitem.Props {
	return rowitem.Props{
		Key:        rowitem.Key(position),
		Position:   position,
		IsSelected: m.isSelected(position),
		Text:       m.rows[position].Text,
		OnActivate: func() { m.selectRow(position) },
	}
}

// Items returns the props of every row in order.
func (m *Model) Items() []rowitem.Props {
	items := make([]rowitem.Props, len(m.rows))
	for i := range m.rows {
		items[i] = m.itemProps(i)
	}
	return items
}

// chromeLines is the number of non-row lines drawn by View.
func (m *Model) chromeLines() int {
	lines := 2 // status + help
	if m.showHeader {
		lines++
	}
	return lines
}

// headerLines is the number of lines above the first row.
func (m *Model) headerLines() int {
	if m.showHeader {
		return 1
	}
	return 0
}

// updateVisibleRange scrolls the viewport just enough to keep the focused row
// visible. Before the first resize every row is visible.
func (m *Model) updateVisibleRange() {
	n := len(m.rows)
	capacity := m.height - m.chromeLines()

	if m.height <= 0 || capacity >= n {
		m.visibleFrom = 0
		m.visibleTo = n
		return
	}
	capacity = max(capacity, 1)

	from := m.visibleFrom
	switch {
	case m.cursor < from:
		from = m.cursor
	case m.cursor >= from+capacity:
		from = m.cursor - capacity + 1
	}
	from = max(min(from, n-capacity), 0)

	m.visibleFrom = from
	m.visibleTo = from + capacity
}

// RowAt maps a screen line to a row position. Every row and the header
// occupy exactly one line.
func (m *Model) RowAt(y int) (int, bool) {
	line := y - m.headerLines()
	if line < 0 {
		return 0, false
	}
	position := m.visibleFrom + line
	if position >= m.visibleTo {
		return 0, false
	}
	return position, true
}

func (m *Model) rowWidth() int {
	if m.width <= focusColumnWidth {
		return 0
	}
	return m.width - focusColumnWidth
}

// renderRow returns the cached line for p when its props are unchanged.
func (m *Model) renderRow(p rowitem.Props, width int) string {
	if width != m.cacheWidth {
		m.cache = make(map[string]cachedRow)
		m.cacheWidth = width
	}

	if c, ok := m.cache[p.Key]; ok && c.props.Equal(p) {
		return c.line
	}

	line := rowitem.Render(p, m.styles, width)
	m.cache[p.Key] = cachedRow{props: p, line: line}
	m.renders++
	return line
}

func (m *Model) renderHeader() string {
	title := rowitem.SingleLine(m.title)
	if m.width > 0 {
		title = ansi.Truncate(title, m.width-m.styles.Header.GetHorizontalFrameSize(), "…")
	}
	return m.styles.Header.Render(title)
}

// RenderRows draws the header and the visible rows without interactive chrome.
func (m *Model) RenderRows() string {
	lines := make([]string, 0, m.visibleTo-m.visibleFrom+1)
	if m.showHeader {
		lines = append(lines, m.renderHeader())
	}

	width := m.rowWidth()
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		focus := tui.NoFocusIndicator
		if i == m.cursor {
			focus = m.styles.Focus.Render(tui.FocusIndicator)
		}
		lines = append(lines, focus+" "+m.renderRow(m.itemProps(i), width))
	}

	return strings.Join(lines, "\n")
}

// View renders the list, a status line and the key help.
func (m *Model) View() string {
	var b strings.Builder

	if body := m.RenderRows(); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	if len(m.rows) == 0 {
		return "No rows"
	}
	if row, ok := m.SelectedRow(); ok {
		return fmt.Sprintf("Selected: row %d (%s)", *m.selected, row.Text)
	}
	return "No row selected"
}

// Selected returns the selected position.
func (m *Model) Selected() (int, bool) {
	if m.selected == nil {
		return 0, false
	}
	return *m.selected, true
}

// SelectedRow returns the selected row. The selection is not re-validated
// against the rows, so a stale position reports false.
func (m *Model) SelectedRow() (rows.Row, bool) {
	if m.selected == nil || *m.selected < 0 || *m.selected >= len(m.rows) {
		return rows.Row{}, false
	}
	return m.rows[*m.selected], true
}

// Cursor returns the focused row position.
func (m *Model) Cursor() int {
	return m.cursor
}

// ItemCount returns the total number of rows.
func (m *Model) ItemCount() int {
	return len(m.rows)
}

// VisibleFrom returns the first visible row (inclusive).
func (m *Model) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible row (exclusive).
func (m *Model) VisibleTo() int {
	return m.visibleTo
}

// Status returns the transient status message, if any.
func (m *Model) Status() string {
	return m.status
}
