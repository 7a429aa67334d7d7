package tui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/hikari-md/hikari/pkg/document"
	"github.com/hikari-md/hikari/pkg/editor"
	"github.com/hikari-md/hikari/pkg/files"
	"github.com/hikari-md/hikari/pkg/guard"
	"github.com/hikari-md/hikari/pkg/models"
	"github.com/hikari-md/hikari/pkg/utils"
	"github.com/hikari-md/hikari/pkg/viewsync"
)

// frameDelay is roughly one frame; corrections run after the frame that
// shows the committed state.
const frameDelay = 16 * time.Millisecond

// wheelRows is how far one mouse wheel step scrolls.
const wheelRows = 3

// correctionMsg runs the outstanding post-render work for a surface.
type correctionMsg struct {
	surface viewsync.Surface
}

// Options configures a new App.
type Options struct {
	Settings  *models.Settings
	Store     *files.Store
	Clipboard Clipboard
	Path      string // opened on start when set
}

// App is the root model: one document shown either as raw text or as the
// rendered preview, plus the dialogs that guard destructive actions.
type App struct {
	settings *models.Settings
	store    *files.Store
	clip     Clipboard
	keys     keyMap

	doc      *document.Document
	editor   *editor.Model
	preview  *previewPane
	ctrl     *viewsync.Controller
	bottom   *viewsync.BottomAnchor
	sched    *viewsync.Scheduler
	guard    *guard.Guard
	feedback *SaveFeedback
	status   *StatusManager
	confirm  *ConfirmationModel
	openDlg  *openDialog
	saveDlg  *saveDialog
	dialog   dialogKind

	initialPath string
	width       int
	height      int
}

func NewApp(opts Options) *App {
	s := opts.Settings
	if s == nil {
		s = models.DefaultSettings()
	}
	store := opts.Store
	if store == nil {
		store = files.NewOSStore()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}

	ed := editor.New()
	ed.SetLineHeight(s.Editor.LineHeight)
	ed.SetFallbackLineHeight(s.Editor.FallbackLineHeight)
	ed.SetBottomPadding(s.Editor.BottomPaddingLines)
	ed.SetTabWidth(s.Editor.TabWidth)
	ed.CursorStyle = CursorStyle
	ed.SelectionStyle = SelectionStyle
	ed.PlaceholderStyle = PlaceholderStyle
	ed.Placeholder = "Start writing markdown…"

	pv := newPreviewPane(s.Preview.Style, s.Preview.WordWrap)

	filter := files.MarkdownFilter(s.Files.Extensions)
	ext := "md"
	if len(s.Files.Extensions) > 0 {
		ext = s.Files.Extensions[0]
	}

	return &App{
		settings:    s,
		store:       store,
		clip:        clip,
		keys:        newKeyMap(),
		doc:         document.New(),
		editor:      ed,
		preview:     pv,
		ctrl:        viewsync.NewController(ed, pv),
		bottom:      viewsync.NewBottomAnchor(s.Editor.NearBottomLines),
		sched:       viewsync.NewScheduler(),
		guard:       guard.New(),
		feedback:    NewSaveFeedback(millis(s.Feedback.PulseMillis), millis(s.Feedback.NoticeMillis)),
		status:      NewStatusManager("New document"),
		confirm:     NewConfirmation(),
		openDlg:     newOpenDialog(filter),
		saveDlg:     newSaveDialog(ext),
		initialPath: opts.Path,
	}
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func (a *App) Init() tea.Cmd {
	if a.initialPath == "" {
		return nil
	}
	return readFileCmd(a.store, a.initialPath)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, a.layoutPreview()

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.MouseMsg:
		a.handleMouse(msg)
		return a, nil

	case correctionMsg:
		a.runCorrection(msg.surface)
		return a, nil

	case fileLoadedMsg:
		return a, a.handleLoaded(msg)

	case fileSavedMsg:
		return a, a.handleSaved(msg)

	case dialogClosedMsg:
		return a, a.handleDialogClosed(msg)
	}

	if a.feedback.Update(msg) {
		return a, nil
	}

	// Directory reads and cursor blinks belong to the open dialog
	switch a.dialog {
	case dialogOpen:
		return a, a.openDlg.Update(msg)
	case dialogSave:
		return a, a.saveDlg.Update(msg)
	}
	return a, nil
}

// paneSize is the area inside the pane border, between the toolbar and the
// status and help lines.
func (a *App) paneSize() (int, int) {
	return max(a.width-2, 1), max(a.height-5, 1)
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	if a.ctrl.Mode() == viewsync.ModePreview {
		a.ctrl.RememberAnchor()
	}
	pw, ph := a.paneSize()
	a.editor.SetSize(pw, ph)
	a.preview.SetSize(pw, ph)
}

// layoutPreview re-renders the visible preview and schedules the anchor
// restore for the new layout.
func (a *App) layoutPreview() tea.Cmd {
	if a.ctrl.Mode() != viewsync.ModePreview {
		return nil
	}
	a.preview.Render(a.doc.Content())
	if _, ok := a.ctrl.PendingAnchor(); ok {
		return a.schedule(viewsync.SurfacePreview, viewsync.Correction{RestoreAnchor: true})
	}
	return nil
}

func (a *App) schedule(surface viewsync.Surface, c viewsync.Correction) tea.Cmd {
	if !a.sched.Schedule(surface, c) {
		return nil
	}
	return tea.Tick(frameDelay, func(time.Time) tea.Msg {
		return correctionMsg{surface: surface}
	})
}

func (a *App) runCorrection(surface viewsync.Surface) {
	c, ok := a.sched.Take(surface)
	if !ok {
		return
	}
	if c.SnapBottom {
		a.bottom.Settle(a.editor)
	}
	if c.RestoreAnchor {
		a.ctrl.Settle()
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Alt {
		return nil
	}
	if key.Matches(msg, a.keys.Exit) {
		return tea.Quit
	}

	switch a.dialog {
	case dialogOpen:
		return a.openDlg.Update(msg)
	case dialogSave:
		return a.saveDlg.Update(msg)
	}

	if a.guard.ConfirmVisible() {
		return a.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Toggle):
		return a.toggleMode()
	case key.Matches(msg, a.keys.Save):
		return a.save()
	case key.Matches(msg, a.keys.SaveAs):
		return a.showSaveDialog(saveRequest{kind: saveAs})
	case key.Matches(msg, a.keys.New):
		return a.request(guard.ActionNew)
	case key.Matches(msg, a.keys.Open):
		return a.request(guard.ActionOpen)
	case key.Matches(msg, a.keys.Quit):
		return a.request(guard.ActionQuit)
	case key.Matches(msg, a.keys.Copy):
		a.copyText()
		return nil
	case key.Matches(msg, a.keys.Paste):
		return a.paste()
	}

	if a.ctrl.Mode() == viewsync.ModePreview {
		moved, cmd := a.preview.Update(msg)
		if moved {
			a.ctrl.NoteUserScroll(viewsync.ModePreview)
		}
		return cmd
	}
	return a.editKey(msg)
}

func (a *App) editKey(msg tea.KeyMsg) tea.Cmd {
	edit, lineBreak := editor.EditKind(msg)
	if !edit {
		cmd := a.editor.Update(msg)
		a.ctrl.CaptureSelection()
		return cmd
	}
	return a.applyEdit(lineBreak, func() { a.editor.Update(msg) })
}

// applyEdit runs one change to the text surface between the bottom anchor's
// before and after hooks.
func (a *App) applyEdit(lineBreak bool, change func()) tea.Cmd {
	a.bottom.BeforeEdit(a.editor, a.editor.Selection(), a.editor.Len(), lineBreak)
	change()
	a.doc.Edit(a.editor.Value())
	a.ctrl.CaptureSelection()
	a.preview.Invalidate()

	if a.bottom.AfterEdit(a.editor) {
		return a.schedule(viewsync.SurfaceText, viewsync.Correction{SnapBottom: true})
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) {
	if a.dialog != dialogNone || a.guard.ConfirmVisible() {
		return
	}
	if msg.Action != tea.MouseActionPress {
		return
	}

	var delta int
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta = -wheelRows
	case tea.MouseButtonWheelDown:
		delta = wheelRows
	default:
		return
	}

	if a.ctrl.Mode() == viewsync.ModeEdit {
		a.editor.ScrollBy(delta)
	} else {
		a.preview.ScrollBy(delta)
	}
	a.ctrl.NoteUserScroll(a.ctrl.Mode())
}

func (a *App) toggleMode() tea.Cmd {
	if a.ctrl.Mode() == viewsync.ModeEdit {
		a.preview.Render(a.doc.Content())
	}
	surface := a.ctrl.Toggle()
	return a.schedule(surface, viewsync.Correction{RestoreAnchor: true})
}

func (a *App) save() tea.Cmd {
	if a.doc.HasPath() {
		return a.writeDocument(a.doc.Path(), saveRequest{kind: saveOverwrite})
	}
	return a.showSaveDialog(saveRequest{kind: saveFirst})
}

func (a *App) writeDocument(path string, req saveRequest) tea.Cmd {
	return writeFileCmd(a.store, path, a.doc.Content(), req)
}

func (a *App) showSaveDialog(req saveRequest) tea.Cmd {
	a.dialog = dialogSave
	fallback := files.SuggestFileName(a.doc.Content(), a.settings.Files.DefaultName, a.saveDlg.extension)
	return a.saveDlg.Show(files.DefaultSavePath(a.doc.Path(), fallback), req)
}

// request asks the guard to run action, opening the unsaved changes dialog
// when the document is dirty.
func (a *App) request(action guard.Action) tea.Cmd {
	if run := a.guard.Request(action, a.doc.IsDirty()); run != guard.ActionNone {
		return a.runAction(run)
	}
	if a.guard.ConfirmVisible() {
		log.Printf("[guard] %s is waiting for confirmation", a.guard.Pending())
		a.confirm.Configure(a.confirmConfig(a.guard.Pending()))
	}
	return nil
}

func (a *App) confirmConfig(action guard.Action) ConfirmationConfig {
	var verb string
	switch action {
	case guard.ActionNew:
		verb = "starting a new document"
	case guard.ActionOpen:
		verb = "opening another file"
	default:
		verb = "quitting"
	}

	config := ConfirmationConfig{
		Title:   "Unsaved changes",
		Message: fmt.Sprintf("Save changes to %s before %s?", a.doc.DisplayName(), verb),
		Width:   min(60, max(a.width-4, 30)),
	}
	if changes := a.doc.Changes(); !changes.Empty() {
		config.Warning = changes.String()
	}
	if a.doc.HasPath() {
		config.Details = []string{a.doc.Path()}
	}
	return config
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch a.confirm.Update(msg) {
	case ChoiceSave:
		if !a.guard.ChooseSave() {
			return nil
		}
		if a.doc.HasPath() {
			return a.writeDocument(a.doc.Path(), saveRequest{kind: saveOverwrite, guarded: true})
		}
		return a.showSaveDialog(saveRequest{kind: saveFirst, guarded: true})

	case ChoiceDiscard:
		return a.runAction(a.guard.ChooseDiscard())

	case ChoiceCancel:
		a.guard.ChooseCancel()
	}
	return nil
}

func (a *App) runAction(action guard.Action) tea.Cmd {
	switch action {
	case guard.ActionNew:
		a.newDocument()
	case guard.ActionOpen:
		a.dialog = dialogOpen
		dir := ""
		if a.doc.HasPath() {
			dir = filepath.Dir(a.doc.Path())
		}
		_, ph := a.paneSize()
		return a.openDlg.Show(dir, ph-4)
	case guard.ActionQuit:
		return tea.Quit
	}
	return nil
}

func (a *App) newDocument() {
	a.doc.Reset()
	a.editor.SetValue("")
	a.ctrl.Reset()
	a.bottom.Reset()
	a.preview.Invalidate()
	a.preview.SetScrollTop(0)
	a.status.ShowInfo("New document")
}

func (a *App) handleLoaded(msg fileLoadedMsg) tea.Cmd {
	if msg.err != nil {
		a.status.ShowError("Load failed: " + msg.err.Error())
		return nil
	}

	// the editor normalizes line endings; the document keeps its text
	a.editor.SetValue(msg.content)
	a.doc.Load(msg.path, a.editor.Value())
	a.ctrl.ForgetSelection()
	a.bottom.Reset()
	a.preview.Invalidate()
	a.status.ShowSuccess("Load complete: " + msg.path)
	return a.layoutPreview()
}

func (a *App) handleSaved(msg fileSavedMsg) tea.Cmd {
	if msg.err != nil {
		a.status.ShowError("Save failed: " + msg.err.Error())
		if msg.request.guarded {
			a.guard.SaveFailed()
		}
		return nil
	}

	a.doc.MarkSaved(msg.path, msg.content)
	a.status.ShowSuccess(saveStatus(msg.request.kind, msg.path))
	cmd := a.feedback.Show(msg.request.kind == saveOverwrite)

	if msg.request.guarded {
		if action := a.guard.SaveSucceeded(); action != guard.ActionNone {
			return tea.Batch(cmd, a.runAction(action))
		}
	}
	return cmd
}

func (a *App) handleDialogClosed(msg dialogClosedMsg) tea.Cmd {
	a.dialog = dialogNone

	switch msg.kind {
	case dialogOpen:
		if msg.canceled {
			return nil
		}
		return readFileCmd(a.store, msg.path)

	case dialogSave:
		if msg.canceled {
			if msg.save.guarded {
				a.guard.SaveFailed()
			}
			return nil
		}
		return a.writeDocument(msg.path, msg.save)
	}
	return nil
}

// copyText copies the editor selection, or the whole document when nothing
// is selected or the preview is showing.
func (a *App) copyText() {
	text := ""
	if a.ctrl.Mode() == viewsync.ModeEdit {
		text = a.editor.SelectedText()
	}
	if text == "" {
		text = a.doc.Content()
	}

	if err := a.clip.WriteAll(text); err != nil {
		a.status.ShowError("Copy failed: " + err.Error())
		return
	}
	a.status.ShowSuccess("Copied " + utils.FormatCharCount(utils.CountChars(text)))
}

func (a *App) paste() tea.Cmd {
	if a.ctrl.Mode() != viewsync.ModeEdit {
		return nil
	}
	text, err := a.clip.ReadAll()
	if err != nil {
		a.status.ShowError("Paste failed: " + err.Error())
		return nil
	}
	if text == "" {
		return nil
	}
	return a.applyEdit(strings.ContainsAny(text, "\r\n"), func() { a.editor.InsertText(text) })
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	pw, ph := a.paneSize()
	var body string
	switch {
	case a.dialog == dialogOpen:
		body = a.openDlg.View(pw)
	case a.dialog == dialogSave:
		body = lipgloss.Place(pw, ph, lipgloss.Center, lipgloss.Center, a.saveDlg.View(min(pw, 70)))
	case a.guard.ConfirmVisible():
		body = lipgloss.Place(pw, ph, lipgloss.Center, lipgloss.Center, a.confirm.View(a.guard.Busy()))
	case a.ctrl.Mode() == viewsync.ModeEdit:
		body = a.editor.View()
	default:
		body = a.preview.View()
	}

	focused := a.dialog == dialogNone && !a.guard.ConfirmVisible()
	pane := GetPaneBorderStyle(focused).
		Width(pw).
		Height(ph).
		MaxHeight(ph + 2).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.width, a.ctrl.Mode(), a.feedback.PulseVisible()),
		pane,
		a.statusBar(),
		a.helpLine(),
	)
}

func (a *App) statusBar() string {
	mode := ModeBadgeStyle.Render(strings.ToUpper(a.ctrl.Mode().String()))

	file := a.doc.Path()
	if file == "" {
		file = "Unsaved"
	}
	left := mode + StatusBarStyle.Render(" "+file+" ")
	if a.doc.IsDirty() {
		left += ModifiedStyle.Render("● ")
	}

	content := a.doc.Content()
	right := StatusBarStyle.Render(" " + utils.FormatCharCount(a.doc.CharCount()) +
		" · " + utils.FormatWordCount(utils.CountWords(content)) + " ")
	if a.feedback.NoticeVisible() {
		right = NoticeStyle.Render("Saved") + right
	}

	room := max(a.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	message := truncate.StringWithTail(" "+a.status.GetStatus(), uint(room), "…")
	middle := StatusBarStyle.Width(room).Render(message)

	return left + middle + right
}

func (a *App) helpLine() string {
	return truncate.StringWithTail(renderHelp(a.keys.ShortHelp()), uint(max(a.width, 0)), "…")
}
