package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/formdeck/formdeck-cli/pkg/models"
	"github.com/formdeck/formdeck-cli/pkg/panel"
)

func (m *PanelModel) View() string {
	var b strings.Builder

	state := m.store.State()
	live := panel.LiveCount(state)

	b.WriteString(PanelTitleStyle.Render(m.opts.PanelLabel))
	b.WriteString(DimStyle.Render(fmt.Sprintf("  %d %s", live, pluralize("card", live))))
	b.WriteString("\n\n")

	for i, slot := range m.plan.Slots {
		switch slot.Kind {
		case panel.GapSlot:
			b.WriteString(m.renderGap(i, slot))
		case panel.CardSlot:
			b.WriteString(m.renderCard(i, slot))
		}
		b.WriteString("\n")
	}

	if m.opts.ShowDeleted && len(m.plan.Deleted) > 0 {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render("Deleted"))
		b.WriteString("\n")
		for _, record := range m.plan.Deleted {
			b.WriteString("  ")
			b.WriteString(DeletedCardStyle.Render(m.header.Header(record)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.deleteConfirm.Active() {
		b.WriteString(m.deleteConfirm.View())
	} else {
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

func (m *PanelModel) renderGap(idx int, slot panel.Slot) string {
	indent := strings.Repeat("  ", slot.Depth-1)

	if m.session.Active() {
		if m.session.IsOver(m.targetOf(slot)) {
			return indent + GapOverStyle.Render("▸ ──────── here ────────")
		}
		return indent + GapStyle.Render("  ────")
	}

	label := "+"
	if idx == m.cursor {
		return indent + SelectedStyle.Render(fmt.Sprintf(" %s add here ", label))
	}
	return indent + GapStyle.Render("  "+label)
}

func (m *PanelModel) renderCard(idx int, slot panel.Slot) string {
	record := slot.Record
	indent := strings.Repeat("  ", slot.Depth-1)

	marker := "  "
	if record.HasErrors() {
		marker = ErrorMarkerStyle.Render("! ")
	}

	header := m.header.Header(record)
	if m.width > 0 {
		header = wordwrap.String(header, m.width-len(indent)-12)
	}

	_, dragging := m.session.Dragging()
	isSource := false
	if src, ok := m.session.Dragging(); ok && src.FormID == record.ID {
		isSource = true
	}

	line := marker + m.cardStyleFor(record, isSource).Render(header)
	if badge := statusBadge(record); badge != "" {
		line += " " + DimStyle.Render(badge)
	}

	if idx == m.cursor && !dragging {
		line = SelectedStyle.Render("▸ ") + line
		line += "  " + m.renderActions(record)
	} else {
		line = "  " + line
	}

	out := indent + line

	if m.editor != nil && m.editor.FormID() == record.ID && record.IsEditing {
		out += "\n" + m.editor.View()
	}

	return out
}

func (m *PanelModel) renderActions(record models.FormRecord) string {
	actions := cardActions(record,
		m.opts.CanEdit, m.opts.CanDelete, m.opts.CanOrder,
		m.confirmingID == record.ID, m.opts.CustomiseActions)

	hints := make([]string, len(actions))
	for i, action := range actions {
		hints[i] = fmt.Sprintf("%s %s", action.Key, action.Label)
	}
	return HelpStyle.Render(strings.Join(hints, " · "))
}

func (m *PanelModel) renderFooter() string {
	var help []string
	switch {
	case m.editor != nil:
		help = []string{"tab next field", "shift+tab previous", "esc save & close"}
	case m.session.Active():
		help = []string{"j/k choose gap", "enter drop", "esc cancel"}
	default:
		help = []string{"j/k navigate", "enter select", "a add"}
		if m.opts.CanOrder {
			help = append(help, "m move")
		}
		help = append(help, "q quit")
	}

	line := HelpStyle.Render(strings.Join(help, " · "))
	if m.statusMsg != "" {
		line += "  " + StatusStyle.Render(m.statusMsg)
	}
	return line
}

// cardStyleFor picks the card's text style. New wins over changed,
// deleted wins over editing, and the dragged card overrides everything.
func (m *PanelModel) cardStyleFor(record models.FormRecord, isDragSource bool) lipgloss.Style {
	switch {
	case isDragSource:
		return DraggingCardStyle
	case record.IsDeleted:
		return DeletedCardStyle
	case record.IsEditing:
		return EditingCardStyle
	case record.IsNew:
		return NewCardStyle
	case record.HasChanged:
		return ChangedCardStyle
	default:
		return NormalStyle
	}
}

func statusBadge(record models.FormRecord) string {
	switch {
	case record.IsDeleted:
		return "[deleted]"
	case record.IsNew:
		return "[new]"
	case record.IsEditing:
		return "[editing]"
	case record.HasChanged:
		return "[changed]"
	default:
		return ""
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
