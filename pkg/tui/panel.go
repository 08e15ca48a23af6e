package tui

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/formdeck/formdeck-cli/pkg/dnd"
	"github.com/formdeck/formdeck-cli/pkg/host"
	"github.com/formdeck/formdeck-cli/pkg/models"
	"github.com/formdeck/formdeck-cli/pkg/panel"
)

// Options configures a panel instance.
type Options struct {
	// Prefix is the host formset prefix, used for element identifiers and
	// as the default drag collection key.
	Prefix string

	// Template is the host's per-form HTML template with __prefix__
	// placeholder tokens.
	Template string

	PanelLabel string
	CanEdit    bool
	CanDelete  bool
	CanOrder   bool
	Nested     bool

	// ShowDeleted keeps deleted cards visible, off the main flow.
	ShowDeleted bool

	// RenderCardHeader overrides header rendering for collapsed cards.
	RenderCardHeader func(models.FormRecord) string

	// HeaderTemplate renders headers when RenderCardHeader is nil.
	HeaderTemplate string

	// CustomiseActions can append to or alter each card's action list.
	CustomiseActions CustomiseActionsFunc

	// CollectionKey scopes drags to this panel. Defaults to the prefix.
	CollectionKey dnd.CollectionKey

	// RunTrustedScript receives the bodies of script elements embedded in
	// materialized form fragments. The content is authored by the host
	// integration; the hook exists so the integration can decide how to
	// run its own scripts, and it never receives end-user input.
	RunTrustedScript func(string)

	Log zerolog.Logger
}

// OptionsFromSettings maps the configuration file onto panel options.
func OptionsFromSettings(s *models.Settings) Options {
	return Options{
		PanelLabel:     s.Panel.Label,
		CanEdit:        s.Panel.EffectiveCanEdit(),
		CanDelete:      s.Panel.EffectiveCanDelete(),
		CanOrder:       s.Panel.CanOrder,
		Nested:         s.Panel.Nested,
		ShowDeleted:    s.UI.ShowDeleted,
		HeaderTemplate: s.Panel.HeaderTemplate,
	}
}

// PanelModel is the interactive card panel: the collection's cards
// interleaved with insertion gaps, an inline field editor, delete
// confirmation, and a keyboard drag mode for reordering.
type PanelModel struct {
	store   *panel.Store
	formset *host.Formset
	fields  *host.FieldValues
	opts    Options
	header  *HeaderRenderer
	session *dnd.Session

	plan       panel.Plan
	fragments  map[int]*host.Fragment
	scriptsRan map[int]bool

	cursor   int // index into plan.Slots
	hoverIdx int // gap slot index while dragging

	editor        *FormEditorModel
	deleteConfirm *ConfirmationModel
	confirmingID  int

	statusMsg string
	width     int
	height    int
}

// NewPanel builds a panel around the host's initial snapshot.
func NewPanel(initial models.CollectionState, opts Options) (*PanelModel, error) {
	if opts.PanelLabel == "" {
		opts.PanelLabel = "Add"
	}
	if opts.CollectionKey == "" {
		opts.CollectionKey = dnd.KeyFor(opts.Prefix)
	}

	header, err := NewHeaderRenderer(opts.RenderCardHeader, opts.HeaderTemplate)
	if err != nil {
		return nil, err
	}

	m := &PanelModel{
		store:  panel.NewStore(),
		fields: &host.FieldValues{},
		opts:   opts,
		header: header,
		formset: &host.Formset{
			Prefix:   opts.Prefix,
			Template: opts.Template,
			CanOrder: opts.CanOrder,
			Log:      opts.Log,
		},
		session:       dnd.NewSession(opts.CanOrder),
		fragments:     make(map[int]*host.Fragment),
		scriptsRan:    make(map[int]bool),
		deleteConfirm: NewConfirmation(),
		confirmingID:  -1,
	}

	m.formset.Bind(m.store, m.fields)
	m.store.Subscribe(m.refresh)
	m.store.Dispatch(panel.SetState{State: initial})

	return m, nil
}

// Fields exposes the mirrored host management fields.
func (m *PanelModel) Fields() *host.FieldValues {
	return m.fields
}

// State returns the current collection state.
func (m *PanelModel) State() *models.CollectionState {
	return m.store.State()
}

// Fragment returns the materialized form fragment for a record, if the
// record currently needs one.
func (m *PanelModel) Fragment(id int) (*host.Fragment, bool) {
	f, ok := m.fragments[id]
	return f, ok
}

func (m *PanelModel) Init() tea.Cmd {
	return nil
}

// refresh recomputes the display plan and the materialized fragments
// after every dispatch. Fragment scripts run once per record, on first
// materialization, through the trusted-script hook.
func (m *PanelModel) refresh(state *models.CollectionState) {
	if state == nil {
		m.plan = panel.Plan{}
		return
	}

	m.plan = panel.BuildSlots(state.Forms, m.opts.Nested)

	for _, form := range state.Forms {
		if !form.NeedsFormRender(m.opts.CanEdit) {
			delete(m.fragments, form.ID)
			continue
		}
		fragment, err := m.formset.MaterializeForm(form)
		if err != nil {
			m.opts.Log.Error().Err(err).Int("form", form.ID).Msg("materializing form fragment")
			continue
		}
		scripts := fragment.Init()
		m.fragments[form.ID] = fragment

		if !m.scriptsRan[form.ID] {
			m.scriptsRan[form.ID] = true
			if m.opts.RunTrustedScript != nil {
				for _, script := range scripts {
					m.opts.RunTrustedScript(script)
				}
			}
		}
	}

	m.clampCursor()
}

func (m *PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.deleteConfirm.Active() {
			return m, m.deleteConfirm.Update(msg)
		}
		if m.editor != nil {
			return m.updateEditing(msg)
		}
		if m.session.Active() {
			return m.updateDragging(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m *PanelModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "enter", " ":
		slot, ok := m.slotUnderCursor()
		if !ok {
			break
		}
		if slot.Kind == panel.GapSlot {
			m.addAt(slot.Position, slot.Depth)
		} else {
			m.toggleEdit(slot.Record.ID)
		}

	case "a":
		// Top-level add, same as the panel's add button: first gap, depth 1.
		m.addAt(1, 1)

	case "e":
		if slot, ok := m.cardUnderCursor(); ok {
			m.toggleEdit(slot.Record.ID)
		}

	case "d":
		if slot, ok := m.cardUnderCursor(); ok {
			m.armDelete(slot.Record.ID)
		}

	case "m":
		if slot, ok := m.cardUnderCursor(); ok {
			m.beginDrag(slot.Record.ID)
		}

	case "c":
		if slot, ok := m.cardUnderCursor(); ok {
			return m, m.copyCard(slot.Record)
		}
	}

	return m, nil
}

func (m *PanelModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeEditor()
		return m, nil
	}
	return m, m.editor.Update(msg)
}

func (m *PanelModel) updateDragging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.moveHover(-1)

	case "down", "j":
		m.moveHover(1)

	case "enter", " ":
		m.drop()

	case "esc":
		m.session.Cancel()
		m.statusMsg = "Move cancelled"
	}

	return m, nil
}

// addAt creates a record from the empty form and moves it into the gap
// the user picked: an AddForm append followed by the MoveForm that puts
// it in place.
func (m *PanelModel) addAt(position, depth int) {
	state := m.store.State()
	if state == nil || !m.opts.CanEdit {
		return
	}

	id := len(state.Forms)
	newDepth := 0
	if m.opts.Nested {
		newDepth = 1
	}
	record := state.NewRecord(id, len(state.Forms)+1, newDepth)

	m.store.Dispatch(panel.AddForm{Data: record})
	m.store.Dispatch(panel.MoveForm{FormID: id, Position: position, Depth: m.moveDepth(depth)})

	m.editor = NewFormEditor(m.store.State().Forms[id])
	m.focusCard(id)
	m.statusMsg = "Added"
}

func (m *PanelModel) toggleEdit(id int) {
	state := m.store.State()
	if state == nil || !m.opts.CanEdit {
		return
	}
	record := state.Forms[id]

	if record.IsDeleted {
		return
	}

	if record.IsEditing {
		if m.editor == nil {
			// The editing flag came in with the snapshot, from a session
			// that ended mid-edit. Resume with a fresh editor so the edit
			// can still be closed.
			m.editor = NewFormEditor(record)
			return
		}
		m.closeEditor()
		return
	}

	m.store.Dispatch(panel.SetForm{FormID: id, Data: record.WithEditing(true)})
	m.editor = NewFormEditor(m.store.State().Forms[id])
}

// closeEditor harvests the editor's values into a derived copy of the
// record and dispatches it; the live record is never touched directly.
func (m *PanelModel) closeEditor() {
	if m.editor == nil {
		return
	}
	state := m.store.State()
	id := m.editor.FormID()
	record := state.Forms[id]

	m.store.Dispatch(panel.SetForm{FormID: id, Data: record.WithFields(m.editor.Values())})
	m.editor = nil
}

func (m *PanelModel) armDelete(id int) {
	if !m.opts.CanDelete {
		return
	}
	m.confirmingID = id
	m.deleteConfirm.Show("Delete this card?",
		func() tea.Cmd {
			m.confirmingID = -1
			state := m.store.State()
			m.store.Dispatch(panel.SetForm{FormID: id, Data: state.Forms[id].WithDeleted()})
			if m.editor != nil && m.editor.FormID() == id {
				m.editor = nil
			}
			m.statusMsg = "Deleted"
			return nil
		},
		func() tea.Cmd {
			m.confirmingID = -1
			return nil
		})
}

func (m *PanelModel) beginDrag(id int) {
	if !m.session.Begin(dnd.Source{Key: m.opts.CollectionKey, FormID: id}) {
		return
	}

	// Start hovering on the gap just above the grabbed card.
	for i, slot := range m.plan.Slots {
		if slot.Kind == panel.CardSlot && slot.Record.ID == id && i > 0 {
			m.hoverIdx = i - 1
			m.session.HoverOver(m.targetOf(m.plan.Slots[m.hoverIdx]))
			return
		}
	}
	m.session.Cancel()
}

func (m *PanelModel) moveHover(delta int) {
	for i := m.hoverIdx + delta; i >= 0 && i < len(m.plan.Slots); i += delta {
		if m.plan.Slots[i].Kind == panel.GapSlot {
			m.hoverIdx = i
			m.session.HoverOver(m.targetOf(m.plan.Slots[i]))
			return
		}
	}
}

func (m *PanelModel) drop() {
	if m.hoverIdx < 0 || m.hoverIdx >= len(m.plan.Slots) {
		m.session.Cancel()
		return
	}
	move, ok := m.session.Drop(m.targetOf(m.plan.Slots[m.hoverIdx]))
	if !ok {
		return
	}

	m.store.Dispatch(panel.MoveForm{FormID: move.FormID, Position: move.Position, Depth: move.Depth})
	m.focusCard(move.FormID)
	m.statusMsg = "Moved"
}

func (m *PanelModel) copyCard(record models.FormRecord) tea.Cmd {
	data, err := json.Marshal(record.Fields)
	if err != nil {
		m.statusMsg = "Copy failed"
		return nil
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.statusMsg = "Copy failed"
		m.opts.Log.Debug().Err(err).Msg("clipboard write")
		return nil
	}
	m.statusMsg = fmt.Sprintf("Copied card %d", record.ID)
	return nil
}

func (m *PanelModel) targetOf(slot panel.Slot) dnd.Target {
	return dnd.Target{
		Key:      m.opts.CollectionKey,
		Position: slot.Position,
		Depth:    m.moveDepth(slot.Depth),
	}
}

// moveDepth maps a gap's depth onto a MoveForm depth: flat panels do not
// track depth at all.
func (m *PanelModel) moveDepth(depth int) int {
	if !m.opts.Nested {
		return 0
	}
	return depth
}

func (m *PanelModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.plan.Slots) {
		m.cursor = next
	}
}

func (m *PanelModel) clampCursor() {
	if m.cursor >= len(m.plan.Slots) {
		m.cursor = len(m.plan.Slots) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *PanelModel) focusCard(id int) {
	for i, slot := range m.plan.Slots {
		if slot.Kind == panel.CardSlot && slot.Record.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *PanelModel) slotUnderCursor() (panel.Slot, bool) {
	if m.cursor < 0 || m.cursor >= len(m.plan.Slots) {
		return panel.Slot{}, false
	}
	return m.plan.Slots[m.cursor], true
}

func (m *PanelModel) cardUnderCursor() (panel.Slot, bool) {
	slot, ok := m.slotUnderCursor()
	if !ok || slot.Kind != panel.CardSlot {
		return panel.Slot{}, false
	}
	return slot, true
}
