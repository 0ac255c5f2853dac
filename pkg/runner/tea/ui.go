package teaui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/clipbucket/pkg/app"
	"tableflip.dev/clipbucket/pkg/bucket"
	"tableflip.dev/clipbucket/pkg/tui/theme"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeSelect
	modePick
	modeInsert
	modeConfirm
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionNewBucket
	actionRename
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDeleteEntry
	confirmDeleteBucketEntry
	confirmDeleteBucket
)

type section int

const (
	sectionLatest section = iota
	sectionBucket
	sectionOlder
)

// Binding documents one key of the screen.
type Binding struct {
	Keys string
	Help string
}

var (
	// NormalKeys are active while browsing.
	NormalKeys = []Binding{
		{"j/k", "move"},
		{"g/G", "top/bottom"},
		{"enter/p", "paste and close"},
		{"c", "copy"},
		{"m", "move to bucket"},
		{"x", "remove from bucket"},
		{"d", "delete"},
		{"r", "rename bucket"},
		{"v", "select"},
		{"?", "help"},
		{"q", "quit"},
	}
	// SelectKeys are active while items are selected.
	SelectKeys = []Binding{
		{"v", "toggle"},
		{"m", "move selected"},
		{"enter/p", "paste selected"},
		{"esc", "clear selection"},
	}
)

func joinBindings(bs []Binding) string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		parts = append(parts, b.Keys+" "+b.Help)
	}
	return strings.Join(parts, ", ")
}

// statusTTL is how long a success message stays in the footer.
const statusTTL = 3 * time.Second

// row is either a section header or one clipboard text.
type row struct {
	header   bool
	section  section
	bucketID int // -1 outside buckets
	label    string
	text     string
	marked   bool
	picking  bool
}

func (r row) FilterValue() string { return r.text }

// rowDelegate draws rows one line each, styling section headers and
// selection marks with the list theme.
type rowDelegate struct {
	list.DefaultDelegate
	styles theme.ListTheme
}

func newRowDelegate(styles theme.ListTheme) rowDelegate {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)
	return rowDelegate{DefaultDelegate: d, styles: styles}
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}
	frame := d.Styles.NormalTitle
	if index == m.Index() {
		frame = d.Styles.SelectedTitle
	}
	width := max(m.Width()-frame.GetHorizontalFrameSize(), 8)

	var line string
	switch {
	case r.header:
		line = d.styles.Section.Render(truncate.StringWithTail(r.label, uint(width), "…"))
	case r.picking:
		mark, text := "[ ]", preview(r.text, width-4)
		if r.marked {
			mark, text = "[x]", d.styles.Selected.Render(text)
		}
		line = d.styles.Marker.Render(mark) + " " + text
	default:
		line = "  " + preview(r.text, width-2)
	}
	fmt.Fprint(w, frame.Render(line))
}

// preview flattens text onto one line and caps its width.
func preview(text string, width int) string {
	flat := strings.Join(strings.Fields(strings.ReplaceAll(text, "\n", " ⏎ ")), " ")
	if width <= 0 {
		return flat
	}
	return truncate.StringWithTail(flat, uint(width), "…")
}

// Model contains UI state
type Model struct {
	svc    *app.Service
	ctx    context.Context
	mode   mode
	action action

	confirm confirmAction
	target  row  // row the pending pick/insert/confirm applies to
	bulk    bool // pending move applies to the selection
	slot    int  // bucket slot for actionNewBucket and actionRename

	list  list.Model
	input textinput.Model
	theme theme.Theme

	status    string
	statusErr bool
	statusID  int

	termWidth  int
	termHeight int

	pending string
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) Model {
	th := theme.Default()

	l := list.New([]list.Item{}, newRowDelegate(th.List), 80, 20)
	l.Title = "Clipboard"
	l.Styles.Title = th.List.Title
	l.Styles.NoItems = th.List.Empty
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Bucket name"
	ti.CharLimit = 64
	ti.Prompt = ""

	return Model{
		svc:   svc,
		ctx:   context.Background(),
		mode:  modeNormal,
		list:  l,
		input: ti,
		theme: th,
	}
}

// messages
type errMsg struct{ err error }
type activatedMsg struct{}
type clearStatusMsg struct{ id int }

// Init activates the service: buckets load and clipboard history is reconciled.
func (m Model) Init() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return errMsg{errors.New("ui: no service")}
		}
		if err := svc.Activate(ctx); err != nil {
			return errMsg{err}
		}
		return activatedMsg{}
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		log.Printf("ui: %v", msg.err)
		m.status = "ERR: " + msg.err.Error()
		m.statusErr = true
	case activatedMsg:
		m.refreshRows()
		if len(m.list.Items()) == 0 {
			m.status = "Clipboard history is empty"
		}
	case clearStatusMsg:
		if msg.id == m.statusID && !m.statusErr {
			m.status = ""
		}
	case tea.KeyPressMsg:
		var cmd tea.Cmd
		switch m.mode {
		case modeHelp:
			switch msg.String() {
			case "q", "esc", "?":
				m.mode = modeNormal
			}
			skipListRouting = true
		case modeConfirm:
			cmd = m.handleConfirmKey(msg.String())
			skipListRouting = true
		case modePick:
			cmd = m.handlePickKey(msg.String())
			skipListRouting = true
		case modeInsert:
			cmd = m.handleInsertKey(msg)
			skipListRouting = true
		case modeSelect:
			cmd, skipListRouting = m.handleSelectKey(msg.String())
		case modeNormal:
			cmd, skipListRouting = m.handleNormalKey(msg.String())
		}
		cmds = append(cmds, cmd)
	}

	if (m.mode == modeNormal || m.mode == modeSelect) && !skipListRouting {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormalKey(key string) (tea.Cmd, bool) {
	cur, ok := m.current()
	switch key {
	case "q", "esc", "ctrl+c":
		return tea.Quit, true
	case "?":
		m.mode = modeHelp
		return nil, true
	case "enter", "p":
		if !ok || cur.header {
			return nil, true
		}
		return m.paste(cur.text), true
	case "c", "y":
		if !ok || cur.header {
			return nil, true
		}
		if err := m.svc.Copy(m.ctx, cur.text); err != nil {
			return m.fail(err), true
		}
		return m.flash("Copied"), true
	case "m":
		if ok && !cur.header {
			m.startPick(cur, false)
		}
		return nil, true
	case "v", "space", " ":
		if ok && !cur.header {
			m.svc.EnterSelection(cur.text)
			m.mode = modeSelect
			m.refreshRows()
		}
		return nil, true
	case "x":
		if !ok || cur.header || cur.bucketID < 0 {
			return nil, true
		}
		name := m.bucketName(cur.bucketID)
		if err := m.svc.RemoveFromBucket(m.ctx, cur.text, cur.bucketID); err != nil {
			return m.fail(err), true
		}
		m.refreshRows()
		return m.flash("Removed from " + name), true
	case "d":
		if ok {
			m.startDelete(cur)
		}
		return nil, true
	case "r":
		if ok && cur.bucketID >= 0 {
			m.slot = cur.bucketID
			return m.startInsert(actionRename, m.bucketName(cur.bucketID)), true
		}
		return nil, true
	case "g":
		m.list.Select(0)
		return nil, true
	case "G":
		if n := len(m.list.Items()); n > 0 {
			m.list.Select(n - 1)
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) handleSelectKey(key string) (tea.Cmd, bool) {
	cur, ok := m.current()
	switch key {
	case "ctrl+c":
		return tea.Quit, true
	case "q", "esc":
		m.svc.ExitSelection()
		m.mode = modeNormal
		m.refreshRows()
		return nil, true
	case "v", "space", " ":
		if ok && !cur.header {
			m.svc.ToggleSelection(cur.text)
			if !m.svc.SelectionMode() {
				m.mode = modeNormal
			}
			m.refreshRows()
		}
		return nil, true
	case "m":
		if m.svc.SelectionMode() {
			m.startPick(cur, true)
		}
		return nil, true
	case "enter", "p":
		text := m.svc.SelectedText()
		m.svc.ExitSelection()
		if text == "" {
			return tea.Quit, true
		}
		return m.paste(text), true
	}
	return nil, false
}

func (m *Model) handlePickKey(key string) tea.Cmd {
	switch key {
	case "esc", "q":
		m.endPick()
		return nil
	case "n":
		id, ok := m.svc.FirstEmptySlot()
		if !ok {
			return m.flash("All buckets are named")
		}
		m.slot = id
		return m.startInsert(actionNewBucket, "")
	}
	if len(key) != 1 || key[0] < '1' || key[0] >= '1'+bucket.Slots {
		return nil
	}
	id := int(key[0] - '1')
	b, err := m.svc.Bucket(id)
	if err != nil {
		m.endPick()
		return m.fail(err)
	}
	if b.Empty() {
		m.slot = id
		return m.startInsert(actionNewBucket, "")
	}
	return m.moveTo(id)
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.endInsert()
		return nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m.flash("Bucket name required")
		}
		act := m.action
		m.action = actionNone
		m.input.Reset()
		m.input.Blur()
		switch act {
		case actionRename:
			m.mode = modeNormal
			if err := m.svc.RenameBucket(m.ctx, m.slot, name); err != nil {
				return m.fail(err)
			}
			m.refreshRows()
			return m.flash("Renamed to " + name)
		case actionNewBucket:
			return m.moveToNew(m.slot, name)
		}
		m.mode = modeNormal
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// handleConfirmKey applies the pending delete on y; anything else declines quietly.
func (m *Model) handleConfirmKey(key string) tea.Cmd {
	act, target := m.confirm, m.target
	m.confirm = confirmNone
	m.target = row{}
	m.mode = modeNormal
	if key != "y" && key != "Y" {
		return nil
	}

	var err error
	var done string
	switch act {
	case confirmDeleteEntry:
		err = m.svc.DeleteEntry(m.ctx, target.text)
		done = "Deleted"
	case confirmDeleteBucketEntry:
		err = m.svc.DeleteBucketEntry(m.ctx, target.text, target.bucketID)
		done = "Deleted from " + m.bucketName(target.bucketID)
	case confirmDeleteBucket:
		done = "Deleted bucket " + m.bucketName(target.bucketID)
		err = m.svc.DeleteBucket(m.ctx, target.bucketID)
	default:
		return nil
	}
	if err != nil {
		return m.fail(err)
	}
	m.refreshRows()
	return m.flash(done)
}

func (m *Model) startPick(cur row, bulk bool) {
	m.mode = modePick
	m.target = cur
	m.bulk = bulk
}

func (m *Model) endPick() {
	m.target = row{}
	if m.bulk && m.svc.SelectionMode() {
		m.mode = modeSelect
	} else {
		m.mode = modeNormal
	}
	m.bulk = false
}

func (m *Model) startInsert(act action, value string) tea.Cmd {
	m.mode = modeInsert
	m.action = act
	m.input.SetValue(value)
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) endInsert() {
	if m.action == actionNewBucket {
		m.endPick()
	} else {
		m.mode = modeNormal
	}
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) startDelete(cur row) {
	switch {
	case cur.header && cur.section == sectionBucket:
		m.confirm = confirmDeleteBucket
	case cur.header:
		return
	case cur.bucketID >= 0:
		m.confirm = confirmDeleteBucketEntry
	default:
		m.confirm = confirmDeleteEntry
	}
	m.target = cur
	m.mode = modeConfirm
}

func (m *Model) moveTo(id int) tea.Cmd {
	bulk, text := m.bulk, m.target.text
	first := text
	var err error
	if bulk {
		if sel := m.svc.Selected(); len(sel) > 0 {
			first = sel[0]
		}
		err = m.svc.MoveSelection(m.ctx, id)
	} else {
		err = m.svc.MoveToBucket(m.ctx, text, id)
	}
	m.endPick()
	if err != nil {
		return m.fail(err)
	}
	m.refreshRows()
	m.focusText(first)
	return m.flash("Moved to " + m.bucketName(id))
}

func (m *Model) moveToNew(id int, name string) tea.Cmd {
	bulk, text := m.bulk, m.target.text
	first := text
	var moved bool
	var err error
	if bulk {
		if sel := m.svc.Selected(); len(sel) > 0 {
			first = sel[0]
		}
		moved, err = m.svc.MoveSelectionToNewBucket(m.ctx, id, name)
	} else {
		moved, err = m.svc.MoveToNewBucket(m.ctx, text, id, name)
	}
	m.endPick()
	if err != nil {
		return m.fail(err)
	}
	if !moved {
		return m.flash(fmt.Sprintf("Slot %d is already named", id+1))
	}
	m.refreshRows()
	m.focusText(first)
	return m.flash("Moved to " + name)
}

// paste closes the screen; Run hands the text to the clipboard once the
// terminal is restored so the paste lands in the previous window.
func (m *Model) paste(text string) tea.Cmd {
	m.pending = text
	return tea.Quit
}

// Pending is the text waiting to be pasted after the screen closes.
func (m Model) Pending() string { return m.pending }

// flash sets a success message that clears itself after statusTTL.
func (m *Model) flash(s string) tea.Cmd {
	m.statusID++
	m.status = s
	m.statusErr = false
	id := m.statusID
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{id: id} })
}

func (m *Model) fail(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

func (m *Model) current() (row, bool) {
	sel := m.list.SelectedItem()
	if sel == nil {
		return row{}, false
	}
	r, ok := sel.(row)
	return r, ok
}

func (m *Model) bucketName(id int) string {
	b, err := m.svc.Bucket(id)
	if err != nil {
		return fmt.Sprintf("bucket %d", id+1)
	}
	return b.Title()
}

// refreshRows rebuilds the list from the service, keeping the cursor on the
// same text when it still exists.
func (m *Model) refreshRows() {
	prev, _ := m.current()
	idx := m.list.Index()
	m.list.SetItems(buildRows(m.svc, m.mode == modeSelect))
	if prev.text != "" && m.focusText(prev.text) {
		return
	}
	if n := len(m.list.Items()); idx >= n {
		idx = n - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

// focusText moves the cursor to the first row holding text.
func (m *Model) focusText(text string) bool {
	for i, it := range m.list.Items() {
		if r, ok := it.(row); ok && !r.header && r.text == text {
			m.list.Select(i)
			return true
		}
	}
	return false
}

func buildRows(svc *app.Service, picking bool) []list.Item {
	var items []list.Item
	item := func(s section, id int, text string) row {
		return row{section: s, bucketID: id, text: text, picking: picking, marked: svc.IsSelected(text)}
	}
	view := svc.View()
	if view.HasLatest() {
		items = append(items, row{header: true, section: sectionLatest, bucketID: -1, label: "Latest"})
		items = append(items, item(sectionLatest, -1, view.Latest))
	}
	for _, b := range svc.Buckets() {
		if b.Empty() {
			continue
		}
		label := fmt.Sprintf("%d ▸ %s (%d)", b.ID+1, b.Name, len(b.Items))
		items = append(items, row{header: true, section: sectionBucket, bucketID: b.ID, label: label})
		for _, text := range b.Items {
			items = append(items, item(sectionBucket, b.ID, text))
		}
	}
	if len(view.Older) > 0 {
		items = append(items, row{header: true, section: sectionOlder, bucketID: -1, label: "Older"})
		for _, text := range view.Older {
			items = append(items, item(sectionOlder, -1, text))
		}
	}
	return items
}

// View renders the list with the active overlay and the footer.
func (m Model) View() string {
	body := m.list.View()
	th := m.theme

	switch m.mode {
	case modePick:
		body += "\n\n" + th.Modal.Frame.Render(m.pickView())
	case modeInsert:
		prompt := "New bucket: "
		if m.action == actionRename {
			prompt = "Rename: "
		}
		body += "\n\n" + th.Modal.Title.Render(prompt) + m.input.View()
	case modeConfirm:
		body += "\n\n" + th.Modal.Frame.Render(m.confirmView())
	case modeHelp:
		help := "Keys: " + joinBindings(NormalKeys) + "\nSelecting: " + joinBindings(SelectKeys)
		body += "\n\n" + th.Footer.Help.Italic(true).Render(help)
	}

	modeStr := map[mode]string{
		modeNormal:  "NORMAL",
		modeSelect:  "SELECT",
		modePick:    "MOVE",
		modeInsert:  "INSERT",
		modeConfirm: "CONFIRM",
		modeHelp:    "HELP",
	}[m.mode]
	status := m.status
	if m.mode == modeSelect {
		status = strings.TrimSpace(fmt.Sprintf("%d selected  %s", len(m.svc.Selected()), status))
	}
	statusStyle := th.Footer.Status
	if m.statusErr {
		statusStyle = th.Footer.Error
	}
	footer := th.Footer.Mode.Render("["+modeStr+"]") + " " + statusStyle.Render(status)
	if m.status == "" && m.mode == modeNormal {
		footer += th.Footer.Help.Render("? help")
	}
	return body + "\n\n" + footer
}

func (m Model) pickView() string {
	th := m.theme.Modal
	title := "Move to bucket"
	if m.bulk {
		title = fmt.Sprintf("Move %d selected to bucket", len(m.svc.Selected()))
	}
	lines := []string{th.Title.Render(title)}
	for _, b := range m.svc.Buckets() {
		name := th.Body.Render(b.Title())
		if b.Empty() {
			name = th.Dimmed.Render(b.Title())
		}
		lines = append(lines, fmt.Sprintf("%s %s", th.Key.Render(fmt.Sprint(b.ID+1)), name))
	}
	if _, ok := m.svc.FirstEmptySlot(); ok {
		lines = append(lines, th.Key.Render("n")+" new bucket")
	}
	lines = append(lines, th.Dimmed.Render("esc cancel"))
	return strings.Join(lines, "\n")
}

func (m Model) confirmView() string {
	th := m.theme.Modal
	var q string
	switch m.confirm {
	case confirmDeleteEntry:
		q = fmt.Sprintf("Delete %q from history?", preview(m.target.text, 40))
	case confirmDeleteBucketEntry:
		q = fmt.Sprintf("Delete %q from %s?", preview(m.target.text, 40), m.bucketName(m.target.bucketID))
	case confirmDeleteBucket:
		b, _ := m.svc.Bucket(m.target.bucketID)
		q = fmt.Sprintf("Delete bucket %s and its %d items?", b.Title(), len(b.Items))
	}
	return lipgloss.JoinVertical(lipgloss.Left, th.Danger.Render(q), th.Dimmed.Render("y confirm · any other key cancels"))
}

// applySizes recalculates the list size based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// Leave room for overlays and the footer.
	height := m.termHeight - 10
	if height < 5 {
		height = 5
	}
	m.list.SetSize(m.termWidth, height)
}

// Run launches the screen. When CLIPBUCKET_DEBUG names a file, debug logs go there.
func Run(svc *app.Service) error {
	if path := os.Getenv("CLIPBUCKET_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "clipbucket")
		if err != nil {
			return fmt.Errorf("ui: debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	return pasteAfter(context.Background(), svc, final)
}

func pasteAfter(ctx context.Context, svc *app.Service, final tea.Model) error {
	m, ok := final.(Model)
	if !ok || m.pending == "" {
		return nil
	}
	log.Printf("ui: pasting %d bytes", len(m.pending))
	return svc.Paste(ctx, m.pending)
}
