package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/models"
)

func (m mainLoopModel) updateSecurity(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		return m, nil
	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		m.pinEntry = false
		m.formErr = ""
		m.status = "Security settings saved"
		m.loading = true
		return m, m.cmdLoadSettings()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.pinEntry {
		switch keyMsg.String() {
		case "esc":
			m.pinEntry = false
			m.formErr = ""
			return m, nil
		case "enter":
			if m.saving {
				return m, nil
			}

			pin := strings.TrimSpace(m.newPinInput.Value())
			m.saving = true
			return m, m.cmdUpdateSecurity(models.PinChange{Enabled: true, Pin: pin})
		}

		var cmd tea.Cmd
		m.newPinInput, cmd = m.newPinInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m.backToMenu()
	case "p":
		pin := textinput.New()
		pin.Placeholder = "****"
		pin.CharLimit = 4
		pin.Width = 8
		pin.EchoMode = textinput.EchoPassword
		pin.EchoCharacter = '*'
		pin.Focus()
		m.newPinInput = pin
		m.pinEntry = true
		m.formErr = ""
		return m, textinput.Blink
	case "d":
		if !m.settingsLoaded || !m.settings.PinEnabled || m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.cmdUpdateSecurity(models.PinChange{Enabled: false})
	}

	return m, nil
}

func (m mainLoopModel) viewSecurity() string {
	if m.loading {
		return renderPage("SECURITY", "Loading settings...", "esc: back")
	}

	if m.pinEntry {
		out := "New PIN : [ " + m.newPinInput.View() + " ]\n"
		if m.saving {
			out += "\nSaving...\n"
		}
		if m.formErr != "" {
			out += "\n" + errorStyle.Render("Error: "+m.formErr) + "\n"
		}
		return renderPage("SET PIN", strings.TrimRight(out, "\n"), "enter: save │ esc: cancel")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}
	if m.status != "" {
		b.WriteString(statusLineStyle.Render(m.status) + "\n\n")
	}

	b.WriteString(checkbox(m.settings.PinEnabled) + " PIN lock\n\n")
	if m.settings.PinEnabled {
		b.WriteString("The session locks after a period of inactivity and\n")
		b.WriteString("asks for the 4-digit PIN.\n")
	} else {
		b.WriteString("The session stays open while the app is running.\n")
	}
	if m.formErr != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.formErr) + "\n")
	}

	return renderPage("SECURITY", strings.TrimRight(b.String(), "\n"), "p: set PIN │ d: disable PIN │ esc: back")
}

func (m mainLoopModel) cmdUpdateSecurity(change models.PinChange) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings
	userID := m.userID

	return func() tea.Msg {
		return savedMsg{err: svc.UpdateSecurity(ctx, userID, change)}
	}
}

func (m mainLoopModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Settings
	userID := m.userID

	return func() tea.Msg {
		settings, err := svc.Current(ctx, userID)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}
