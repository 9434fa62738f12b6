package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/models"
)

var reminderFreqCycle = []models.Frequency{
	models.FrequencyDaily,
	models.FrequencyEvery3Days,
	models.FrequencyWeekly,
	models.FrequencyCustom,
}

func (m mainLoopModel) updateReminders(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.settings = msg.settings
		m.settingsLoaded = true
		m.initReminderForm()
		return m, textinput.Blink
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		m.formErr = ""
		m.status = "Saved"
		m.loading = true
		return m, m.cmdLoadSettings()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m.backToMenu()
	case "tab":
		m.formFocusNext()
		return m, nil
	case "shift+tab":
		m.formFocusPrev()
		return m, nil
	case "ctrl+e":
		m.reminderEnabled = !m.reminderEnabled
		return m, nil
	case "ctrl+f":
		for i, f := range reminderFreqCycle {
			if f == m.reminderFreq {
				m.reminderFreq = reminderFreqCycle[(i+1)%len(reminderFreqCycle)]
				return m, nil
			}
		}
		m.reminderFreq = reminderFreqCycle[0]
		return m, nil
	case "ctrl+g":
		return m, m.cmdSetPermission(models.PermissionGranted)
	case "ctrl+b":
		return m, m.cmdSetPermission(models.PermissionDenied)
	case "ctrl+s", "enter":
		if m.saving || len(m.formInputs) == 0 {
			return m, nil
		}

		timeOfDay := strings.TrimSpace(m.formInputs[0].Value())
		customDays := 0
		if m.reminderFreq == models.FrequencyCustom {
			raw := strings.TrimSpace(m.formInputs[1].Value())
			days, err := strconv.Atoi(raw)
			if err != nil || days < 1 {
				m.formErr = "interval must be a whole number of days, 1 or more"
				return m, nil
			}
			customDays = days
		}

		m.formErr = ""
		m.saving = true
		return m, m.cmdUpdateReminder(m.reminderEnabled, timeOfDay, m.reminderFreq, customDays)
	}

	if len(m.formInputs) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m *mainLoopModel) initReminderForm() {
	m.resetForm()
	m.reminderEnabled = m.settings.NotificationEnabled
	m.reminderFreq = m.settings.NotificationFrequency
	if !m.reminderFreq.Valid() {
		m.reminderFreq = models.FrequencyDaily
	}

	timeOfDay := textinput.New()
	timeOfDay.Placeholder = "HH:MM"
	timeOfDay.CharLimit = 5
	timeOfDay.Width = 8
	timeOfDay.SetValue(m.settings.NotificationTime)
	timeOfDay.Focus()

	customDays := textinput.New()
	customDays.Placeholder = "days"
	customDays.CharLimit = 3
	customDays.Width = 8
	if m.settings.CustomIntervalDays != nil {
		customDays.SetValue(strconv.Itoa(*m.settings.CustomIntervalDays))
	}

	m.formInputs = []textinput.Model{timeOfDay, customDays}
}

func (m mainLoopModel) viewReminders() string {
	if m.loading || len(m.formInputs) == 0 {
		return renderPage("REMINDERS", "Loading settings...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}
	if m.status != "" {
		b.WriteString(statusLineStyle.Render(m.status) + "\n\n")
	}

	b.WriteString(checkbox(m.reminderEnabled) + " Journal reminder\n\n")
	b.WriteString("Time      : [ " + m.formInputs[0].View() + " ]\n")
	b.WriteString("Frequency : " + frequencyLabel(m.reminderFreq) + "\n")
	if m.reminderFreq == models.FrequencyCustom {
		b.WriteString("Every     : [ " + m.formInputs[1].View() + " ] days\n")
	}

	if next, armed := m.services.Scheduler.NextFireAt(); armed {
		b.WriteString("\nNext reminder: " + next.Local().Format("2006-01-02 15:04") + "\n")
	}

	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	if m.formErr != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.formErr) + "\n")
	}

	return renderPage(
		"REMINDERS",
		strings.TrimRight(b.String(), "\n"),
		"ctrl+e: on/off │ ctrl+f: frequency │ enter: save │ ctrl+g/ctrl+b: allow/block notifications │ esc: back",
	)
}

func frequencyLabel(f models.Frequency) string {
	switch f {
	case models.FrequencyDaily:
		return "every day"
	case models.FrequencyEvery3Days:
		return "every 3 days"
	case models.FrequencyWeekly, models.FrequencyEvery7Days:
		return "every week"
	case models.FrequencyCustom:
		return "custom interval"
	default:
		return string(f)
	}
}

func (m mainLoopModel) cmdUpdateReminder(enabled bool, timeOfDay string, freq models.Frequency, customDays int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings
	userID := m.userID

	return func() tea.Msg {
		return savedMsg{err: svc.UpdateReminder(ctx, userID, enabled, timeOfDay, freq, customDays)}
	}
}

func (m mainLoopModel) cmdSetPermission(state models.PermissionState) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings

	return func() tea.Msg {
		return savedMsg{err: svc.SetPermission(ctx, state)}
	}
}
