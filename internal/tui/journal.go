package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/models"
)

func (m mainLoopModel) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		if m.entryIdx >= len(m.entries) {
			m.entryIdx = len(m.entries) - 1
		}
		if m.entryIdx < 0 {
			m.entryIdx = 0
		}
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Entry deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadEntries()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.entryDetail {
		entry, ok := m.currentEntry()
		if !ok {
			m.entryDetail = false
			return m, nil
		}

		switch keyMsg.String() {
		case "esc":
			m.entryDetail = false
		case "c":
			if err := clipboard.WriteAll(entry.Content); err != nil {
				m.errMsg = fmt.Sprintf("copy failed: %v", err)
				return m, nil
			}
			m.status = "Copied to clipboard"
			return m, clearStatusAfter(copiedStatusTTL)
		case "ctrl+d":
			m.entryDetail = false
			return m, m.cmdDeleteEntry(entry.ID)
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m.backToMenu()
	case "up":
		if m.entryIdx > 0 {
			m.entryIdx--
		}
	case "down":
		if m.entryIdx < len(m.entries)-1 {
			m.entryIdx++
		}
	case "enter":
		if _, ok := m.currentEntry(); ok {
			m.entryDetail = true
		}
	case "a":
		m.startJournalCreate()
		return m, textinput.Blink
	case "ctrl+d":
		if entry, ok := m.currentEntry(); ok {
			return m, m.cmdDeleteEntry(entry.ID)
		}
	}

	return m, nil
}

func (m *mainLoopModel) startJournalCreate() {
	m.resetForm()

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Width = 40
	title.Focus()

	mood := textinput.New()
	mood.Placeholder = "mood (optional)"
	mood.CharLimit = 30
	mood.Width = 40

	m.formInputs = []textinput.Model{title, mood}

	ta := textarea.New()
	ta.Placeholder = "How was your day?"
	ta.SetWidth(54)
	ta.SetHeight(6)
	m.contentArea = ta

	m.screen = screenJournalCreate
}

func (m mainLoopModel) updateJournalCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(savedMsg); ok {
		m.saving = false
		if saved.err != nil {
			m.formErr = saved.err.Error()
			return m, nil
		}

		m.resetForm()
		m.screen = screenJournal
		m.status = "Entry saved"
		m.loading = true
		return m, m.cmdLoadEntries()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			m.screen = screenJournal
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

			entry := models.JournalEntry{
				Title:   title,
				Mood:    strings.TrimSpace(m.formInputs[1].Value()),
				Content: m.contentArea.Value(),
			}

			m.formErr = ""
			m.saving = true
			return m, m.cmdCreateEntry(entry)
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

func (m mainLoopModel) viewJournal() string {
	if m.entryDetail {
		entry, ok := m.currentEntry()
		if !ok {
			return renderPage("JOURNAL ENTRY", "Entry not found", "esc: back")
		}

		var b strings.Builder
		b.WriteString("Title : " + entry.Title + "\n")
		b.WriteString("Date  : " + entry.EntryDate + "\n")
		if entry.Mood != "" {
			b.WriteString("Mood  : " + entry.Mood + "\n")
		}
		b.WriteString("\n")
		if strings.TrimSpace(entry.Content) != "" {
			b.WriteString(entry.Content + "\n")
		} else {
			b.WriteString("(empty)\n")
		}
		if m.status != "" {
			b.WriteString("\n" + statusLineStyle.Render(m.status) + "\n")
		}
		if m.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
		}

		return renderPage("JOURNAL ENTRY", strings.TrimRight(b.String(), "\n"), "c: copy │ ctrl+d: delete │ esc: back")
	}

	out := ""
	if m.loading {
		return renderPage("JOURNAL", "Loading entries...", "esc: back")
	}

	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += statusLineStyle.Render(m.status) + "\n"
	}

	if len(m.entries) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No entries yet\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "Date       │ Title                    │ Mood\n"
		out += "───────────┼──────────────────────────┼──────────\n"
		for i, entry := range m.entries {
			cursor := " "
			if i == m.entryIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-9s │ %-24s │ %s\n",
				cursor,
				entry.EntryDate,
				fitText(entry.Title, 24),
				fitText(entry.Mood, 10),
			)
		}
	}

	return renderPage("JOURNAL", strings.TrimRight(out, "\n"), "a: new entry │ enter: open │ ctrl+d: delete │ ↑/↓: move │ esc: back")
}

func (m mainLoopModel) viewJournalCreate() string {
	out := "Title   : [ " + m.formInputs[0].View() + " ]\n"
	out += "Mood    : [ " + m.formInputs[1].View() + " ]\n\n"
	out += "Content:\n"
	out += m.contentArea.View() + "\n"

	if m.saving {
		out += "\nSaving...\n"
	}
	if m.formErr != "" {
		out += "\n" + errorStyle.Render("Error: "+m.formErr) + "\n"
	}

	return renderPage("NEW JOURNAL ENTRY", strings.TrimRight(out, "\n"), "tab: next field │ ctrl+s: save │ esc: cancel")
}

func (m mainLoopModel) currentEntry() (models.JournalEntry, bool) {
	if len(m.entries) == 0 || m.entryIdx < 0 || m.entryIdx >= len(m.entries) {
		return models.JournalEntry{}, false
	}
	return m.entries[m.entryIdx], true
}

func (m mainLoopModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Journal
	userID := m.userID

	return func() tea.Msg {
		entries, err := svc.List(ctx, userID)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdCreateEntry(entry models.JournalEntry) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Journal
	userID := m.userID

	return func() tea.Msg {
		_, err := svc.Create(ctx, userID, entry)
		return savedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteEntry(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Journal

	return func() tea.Msg {
		return deletedMsg{err: svc.Delete(ctx, id)}
	}
}
