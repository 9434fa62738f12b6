package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/models"
)

const eventDateLayout = "2006-01-02 15:04"

func (m mainLoopModel) updateEvents(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.events = msg.events
		if m.eventIdx >= len(m.events) {
			m.eventIdx = len(m.events) - 1
		}
		if m.eventIdx < 0 {
			m.eventIdx = 0
		}
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = "Event deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadEvents()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m.backToMenu()
	case "up":
		if m.eventIdx > 0 {
			m.eventIdx--
		}
	case "down":
		if m.eventIdx < len(m.events)-1 {
			m.eventIdx++
		}
	case "a":
		m.startEventCreate()
		return m, textinput.Blink
	case "ctrl+d":
		if event, ok := m.currentEvent(); ok {
			return m, m.cmdDeleteEvent(event.ID)
		}
	}

	return m, nil
}

func (m *mainLoopModel) startEventCreate() {
	m.resetForm()

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 120
	title.Width = 40
	title.Focus()

	date := textinput.New()
	date.Placeholder = eventDateLayout
	date.CharLimit = len(eventDateLayout)
	date.Width = 40

	location := textinput.New()
	location.Placeholder = "location (optional)"
	location.CharLimit = 120
	location.Width = 40

	remindAt := textinput.New()
	remindAt.Placeholder = eventDateLayout + " (optional reminder)"
	remindAt.CharLimit = len(eventDateLayout)
	remindAt.Width = 40

	m.formInputs = []textinput.Model{title, date, location, remindAt}
	m.screen = screenEventCreate
}

func (m mainLoopModel) updateEventCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(savedMsg); ok {
		m.saving = false
		if saved.err != nil {
			m.formErr = saved.err.Error()
			return m, nil
		}

		m.resetForm()
		m.screen = screenEvents
		m.status = "Event saved"
		m.loading = true
		return m, m.cmdLoadEvents()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.resetForm()
			m.screen = screenEvents
			return m, nil
		case "tab":
			m.formFocusNext()
			return m, nil
		case "shift+tab":
			m.formFocusPrev()
			return m, nil
		case "enter":
			if m.saving {
				return m, nil
			}

			title := strings.TrimSpace(m.formInputs[0].Value())
			if title == "" {
				m.formErr = "title is required"
				return m, nil
			}

			eventDate, err := time.ParseInLocation(eventDateLayout, strings.TrimSpace(m.formInputs[1].Value()), time.Local)
			if err != nil {
				m.formErr = "date must look like " + eventDateLayout
				return m, nil
			}

			var remindAt *time.Time
			if raw := strings.TrimSpace(m.formInputs[3].Value()); raw != "" {
				at, err := time.ParseInLocation(eventDateLayout, raw, time.Local)
				if err != nil {
					m.formErr = "reminder must look like " + eventDateLayout
					return m, nil
				}
				remindAt = &at
			}

			event := models.Event{
				Title:     title,
				EventDate: eventDate,
				Location:  strings.TrimSpace(m.formInputs[2].Value()),
			}

			m.formErr = ""
			m.saving = true
			return m, m.cmdCreateEvent(event, remindAt)
		}
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewEvents() string {
	if m.loading {
		return renderPage("EVENTS", "Loading events...", "esc: back")
	}

	out := ""
	if m.errMsg != "" {
		out += errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	if m.status != "" {
		out += statusLineStyle.Render(m.status) + "\n"
	}

	if len(m.events) == 0 {
		if out != "" {
			out += "\n"
		}
		out += "No events yet\n"
	} else {
		if out != "" {
			out += "\n"
		}
		out += "When             │ Title                    │ Location\n"
		out += "─────────────────┼──────────────────────────┼────────────────\n"
		for i, event := range m.events {
			cursor := " "
			if i == m.eventIdx {
				cursor = ">"
			}
			out += fmt.Sprintf(
				"%s %-15s │ %-24s │ %s\n",
				cursor,
				event.EventDate.Local().Format(eventDateLayout),
				fitText(event.Title, 24),
				fitText(event.Location, 16),
			)
		}
	}

	return renderPage("EVENTS", strings.TrimRight(out, "\n"), "a: new event │ ctrl+d: delete │ ↑/↓: move │ esc: back")
}

func (m mainLoopModel) viewEventCreate() string {
	out := "Title    : [ " + m.formInputs[0].View() + " ]\n"
	out += "Date     : [ " + m.formInputs[1].View() + " ]\n"
	out += "Location : [ " + m.formInputs[2].View() + " ]\n"
	out += "Remind   : [ " + m.formInputs[3].View() + " ]\n"

	if m.saving {
		out += "\nSaving...\n"
	}
	if m.formErr != "" {
		out += "\n" + errorStyle.Render("Error: "+m.formErr) + "\n"
	}

	return renderPage("NEW EVENT", strings.TrimRight(out, "\n"), "tab: next field │ enter: save │ esc: cancel")
}

func (m mainLoopModel) currentEvent() (models.Event, bool) {
	if len(m.events) == 0 || m.eventIdx < 0 || m.eventIdx >= len(m.events) {
		return models.Event{}, false
	}
	return m.events[m.eventIdx], true
}

func (m mainLoopModel) cmdLoadEvents() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Events
	userID := m.userID

	return func() tea.Msg {
		events, err := svc.List(ctx, userID)
		return eventsLoadedMsg{events: events, err: err}
	}
}

func (m mainLoopModel) cmdCreateEvent(event models.Event, remindAt *time.Time) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Events
	userID := m.userID

	return func() tea.Msg {
		_, err := svc.Create(ctx, userID, event, remindAt)
		return savedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteEvent(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Events

	return func() tea.Msg {
		return deletedMsg{err: svc.Delete(ctx, id)}
	}
}
