package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/models"
)

func (m mainLoopModel) updateNotes(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		if m.noteIdx >= len(m.notes) {
			m.noteIdx = len(m.notes) - 1
		}
		if m.noteIdx < 0 {
			m.noteIdx = 0
		}
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Note deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m.backToMenu()
	case "up":
		if m.noteIdx > 0 {
			m.noteIdx--
		}
	case "down":
		if m.noteIdx < len(m.notes)-1 {
			m.noteIdx++
		}
	case "a":
		m.startNoteCreate()
		return m, textinput.Blink
	case "ctrl+d":
		if note, ok := m.currentNote(); ok {
			return m, m.cmdDeleteNote(note.ID)
		}
	}

	return m, nil
}

func (m *mainLoopModel) startNoteCreate() {
	m.resetForm()

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Width = 40
	title.Focus()

	category := textinput.New()
	category.Placeholder = "category (optional)"
	category.CharLimit = 40
	category.Width = 40

	m.formInputs = []textinput.Model{title, category}

	ta := textarea.New()
	ta.Placeholder = "Note text"
	ta.SetWidth(54)
	ta.SetHeight(5)
	m.contentArea = ta

	m.screen = screenNoteCreate
}

func (m mainLoopModel) updateNoteCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(savedMsg); ok {
		m.saving = false
		if saved.err != nil {
			m.formErr = saved.err.Error()
			return m, nil
		}

		m.resetForm()
		m.screen = screenNotes
		m.status = "Note saved"
		m.loading = true
		return m, m.cmdLoadNotes()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			m.screen = screenNotes
			return m, nil
		case "tab":
			if m.areaFocused {
				m.contentArea.Blur()
				m.areaFocused = false
				m.formFocus = 0
				m.formInputs[0].Focus()
			} else if m.formFocus == len(m.formInputs)-1 {
				m.formInputs[m.formFocus].Blur()
				m.areaFocused = true
				m.contentArea.Focus()
			} else {
				m.formFocusNext()
			}
			return m, nil
		case "ctrl+s":
			if m.saving {
				return m, nil
			}

			title := strings.TrimSpace(m.formInputs[0].Value())
			if title == "" {
				m.formErr = "title is required"
				return m, nil
			}

			note := models.Note{
				Title:    title,
				Category: strings.TrimSpace(m.formInputs[1].Value()),
				Content:  m.contentArea.Value(),
			}

			m.formErr = ""
			m.saving = true
			return m, m.cmdCreateNote(note)
		}
	}

	var cmd tea.Cmd
	if m.areaFocused {
		m.contentArea, cmd = m.contentArea.Update(msg)
	} else {
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) viewNotes() string {
	if m.loading {
		return renderPage("NOTES", "Loading notes...", "esc: back")
	}

	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += statusLineStyle.Render(m.status) + "\n"
	}

	if len(m.notes) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No notes yet\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "Title                    │ Category\n"
		out += "─────────────────────────┼────────────────\n"
		for i, note := range m.notes {
			cursor := " "
			if i == m.noteIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-23s │ %s\n",
				cursor,
				fitText(note.Title, 23),
				fitText(note.Category, 16),
			)
		}
	}

	return renderPage("NOTES", strings.TrimRight(out, "\n"), "a: new note │ ctrl+d: delete │ ↑/↓: move │ esc: back")
}

func (m mainLoopModel) viewNoteCreate() string {
	out := "Title    : [ " + m.formInputs[0].View() + " ]\n"
	out += "Category : [ " + m.formInputs[1].View() + " ]\n\n"
	out += "Content:\n"
	out += m.contentArea.View() + "\n"

	if m.saving {
		out += "\nSaving...\n"
	}
	if m.formErr != "" {
		out += "\n" + errorStyle.Render("Error: "+m.formErr) + "\n"
	}

	return renderPage("NEW NOTE", strings.TrimRight(out, "\n"), "tab: next field │ ctrl+s: save │ esc: cancel")
}

func (m mainLoopModel) currentNote() (models.Note, bool) {
	if len(m.notes) == 0 || m.noteIdx < 0 || m.noteIdx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.noteIdx], true
}

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	userID := m.userID

	return func() tea.Msg {
		notes, err := svc.List(ctx, userID)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdCreateNote(note models.Note) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes
	userID := m.userID

	return func() tea.Msg {
		_, err := svc.Create(ctx, userID, note)
		return savedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteNote(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Notes

	return func() tea.Msg {
		return deletedMsg{err: svc.Delete(ctx, id)}
	}
}
