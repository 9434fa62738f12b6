package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/internal/service"
	"github.com/memvault/memvault/models"
)

type screen int

const (
	screenLock screen = iota
	screenMenu
	screenJournal
	screenJournalCreate
	screenEvents
	screenEventCreate
	screenNotes
	screenNoteCreate
	screenStreak
	screenSecurity
	screenReminders
)

var menuEntries = []struct {
	label  string
	target screen
}{
	{"Journal", screenJournal},
	{"Events", screenEvents},
	{"Notes", screenNotes},
	{"Streak", screenStreak},
	{"Security settings", screenSecurity},
	{"Reminder settings", screenReminders},
}

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	userID   string

	screen  screen
	menuIdx int
	status  string
	errMsg  string
	logout  bool

	pinInput      textinput.Model
	pinSubmitting bool
	pinErr        string

	entries     []models.JournalEntry
	entryIdx    int
	entryDetail bool
	loading     bool

	events   []models.Event
	eventIdx int

	notes   []models.Note
	noteIdx int

	streak models.Streak

	settings       models.UserSettings
	settingsLoaded bool

	formInputs  []textinput.Model
	formFocus   int
	contentArea textarea.Model
	areaFocused bool
	saving      bool
	formErr     string

	newPinInput textinput.Model
	pinEntry    bool

	reminderEnabled bool
	reminderFreq    models.Frequency
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, userID string) mainLoopModel {
	m := mainLoopModel{
		ctx:      ctx,
		services: services,
		userID:   userID,
		screen:   screenMenu,
	}

	if !services.Gate.IsUnlocked(ctx, userID) {
		m.screen = screenLock
		m.initPinInput()
	}

	return m
}

func (m *mainLoopModel) initPinInput() {
	pin := textinput.New()
	pin.Placeholder = "****"
	pin.CharLimit = 4
	pin.Width = 8
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '*'
	pin.Focus()
	m.pinInput = pin
}

func (m mainLoopModel) Init() tea.Cmd {
	if m.screen == screenLock {
		return textinput.Blink
	}
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(clearStatusMsg); ok {
		m.status = ""
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

		// Typing the PIN is not journal activity; everything past the
		// challenge is.
		if m.screen != screenLock {
			m.services.Gate.OnUserInteraction(m.ctx)
		}
	}

	if m.screen == screenLock {
		return m.updateLock(msg)
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenJournal:
		return m.updateJournal(msg)
	case screenJournalCreate:
		return m.updateJournalCreate(msg)
	case screenEvents:
		return m.updateEvents(msg)
	case screenEventCreate:
		return m.updateEventCreate(msg)
	case screenNotes:
		return m.updateNotes(msg)
	case screenNoteCreate:
		return m.updateNoteCreate(msg)
	case screenStreak:
		return m.updateStreak(msg)
	case screenSecurity:
		return m.updateSecurity(msg)
	case screenReminders:
		return m.updateReminders(msg)
	}

	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenLock:
		return m.viewLock()
	case screenMenu:
		return m.viewMenu()
	case screenJournal:
		return m.viewJournal()
	case screenJournalCreate:
		return m.viewJournalCreate()
	case screenEvents:
		return m.viewEvents()
	case screenEventCreate:
		return m.viewEventCreate()
	case screenNotes:
		return m.viewNotes()
	case screenNoteCreate:
		return m.viewNoteCreate()
	case screenStreak:
		return m.viewStreak()
	case screenSecurity:
		return m.viewSecurity()
	case screenReminders:
		return m.viewReminders()
	}
	return renderPage("MEMVAULT", "", "")
}

// ── lock screen ──────────────────────────────────────────────────────

func (m mainLoopModel) updateLock(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(pinResultMsg); ok {
		m.pinSubmitting = false
		if result.err != nil {
			m.pinErr = result.err.Error()
			return m, nil
		}
		if !result.ok {
			m.pinErr = "wrong PIN"
			m.pinInput.SetValue("")
			return m, nil
		}

		m.pinErr = ""
		m.screen = screenMenu
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if m.pinSubmitting {
			return m, nil
		}

		candidate := strings.TrimSpace(m.pinInput.Value())
		if len(candidate) != 4 {
			m.pinErr = "enter the 4-digit PIN"
			return m, nil
		}

		m.pinErr = ""
		m.pinSubmitting = true
		return m, m.cmdSubmitPin(candidate)
	}

	var cmd tea.Cmd
	m.pinInput, cmd = m.pinInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) cmdSubmitPin(candidate string) tea.Cmd {
	ctx := m.ctx
	gate := m.services.Gate
	userID := m.userID

	return func() tea.Msg {
		ok, err := gate.SubmitPin(ctx, userID, candidate)
		return pinResultMsg{ok: ok, err: err}
	}
}

func (m mainLoopModel) viewLock() string {
	var b strings.Builder
	b.WriteString(lockedBoxStyle.Render("SESSION LOCKED"))
	b.WriteString("\n\n")
	b.WriteString("PIN: [")
	b.WriteString(m.pinInput.View())
	b.WriteString("]\n")

	if m.pinSubmitting {
		b.WriteString("\nChecking...\n")
	}
	if m.pinErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.pinErr))
		b.WriteString("\n")
	}

	return renderPage("MEMVAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock")
}

// relocked moves back behind the PIN challenge when the inactivity
// threshold has passed. Checked on section navigation, not on every
// keystroke.
func (m *mainLoopModel) relocked() bool {
	if m.services.Gate.IsUnlocked(m.ctx, m.userID) {
		return false
	}

	m.screen = screenLock
	m.pinSubmitting = false
	m.pinErr = ""
	m.initPinInput()
	return true
}

// ── menu ─────────────────────────────────────────────────────────────

func (m mainLoopModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "l":
		m.logout = true
		return m, tea.Quit
	case "up":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down":
		if m.menuIdx < len(menuEntries)-1 {
			m.menuIdx++
		}
	case "1", "2", "3", "4", "5", "6":
		m.menuIdx = int(keyMsg.String()[0] - '1')
		return m.openSection(menuEntries[m.menuIdx].target)
	case "enter":
		return m.openSection(menuEntries[m.menuIdx].target)
	}

	return m, nil
}

func (m mainLoopModel) openSection(target screen) (tea.Model, tea.Cmd) {
	if m.relocked() {
		return m, textinput.Blink
	}

	m.screen = target
	m.status = ""
	m.errMsg = ""
	m.loading = true

	switch target {
	case screenJournal:
		m.entryDetail = false
		return m, m.cmdLoadEntries()
	case screenEvents:
		return m, m.cmdLoadEvents()
	case screenNotes:
		return m, m.cmdLoadNotes()
	case screenStreak:
		return m, m.cmdLoadStreak()
	case screenSecurity, screenReminders:
		m.pinEntry = false
		m.settingsLoaded = false
		return m, m.cmdLoadSettings()
	}

	m.loading = false
	return m, nil
}

// backToMenu re-checks the gate on the way out of a section.
func (m mainLoopModel) backToMenu() (tea.Model, tea.Cmd) {
	if m.relocked() {
		return m, textinput.Blink
	}

	m.screen = screenMenu
	m.status = ""
	m.errMsg = ""
	return m, nil
}

func (m mainLoopModel) viewMenu() string {
	var b strings.Builder
	for i, entry := range menuEntries {
		cursor := " "
		line := entry.label
		if i == m.menuIdx {
			cursor = ">"
			line = selectedStyle.Render(line)
		}
		b.WriteString(cursor)
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusLineStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("MEMVAULT", strings.TrimRight(b.String(), "\n"), "↑/↓: move │ enter: open │ l: sign out │ q: quit")
}

// ── shared form helpers ──────────────────────────────────────────────

func (m *mainLoopModel) formFocusNext() {
	if len(m.formInputs) == 0 {
		return
	}
	m.formInputs[m.formFocus].Blur()
	m.formFocus = (m.formFocus + 1) % len(m.formInputs)
	m.formInputs[m.formFocus].Focus()
}

func (m *mainLoopModel) formFocusPrev() {
	if len(m.formInputs) == 0 {
		return
	}
	m.formInputs[m.formFocus].Blur()
	m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
	m.formInputs[m.formFocus].Focus()
}

func (m *mainLoopModel) resetForm() {
	m.formInputs = nil
	m.formFocus = 0
	m.areaFocused = false
	m.saving = false
	m.formErr = ""
}

const copiedStatusTTL = 3 * time.Second

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
