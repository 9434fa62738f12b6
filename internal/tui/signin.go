// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MemVault Authors

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/memvault/memvault/internal/utils"
	"github.com/memvault/memvault/models"
)

// SignInModel is the Bubble Tea model for the sign-in screen. It renders two
// text inputs (user ID and backend bearer token) and produces a
// [SessionResult] message on submission, which [RootModel] handles to finish
// the flow. The token is only checked for freshness here; the backend is the
// authority on whether it is actually accepted.
type SignInModel struct {
	ctx context.Context

	inputs []textinput.Model
	focus  int
	errMsg string
}

// NewSignInModel creates a [SignInModel] with pre-configured user ID and
// token inputs. The user ID field receives focus immediately; the token
// field uses masked echo.
func NewSignInModel(ctx context.Context) *SignInModel {
	userInput := textinput.New()
	userInput.Placeholder = "user id"
	userInput.CharLimit = 64
	userInput.Width = 40
	userInput.Focus()

	tokenInput := textinput.New()
	tokenInput.Placeholder = "access token"
	tokenInput.CharLimit = 2048
	tokenInput.Width = 40
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.EchoCharacter = '*'

	return &SignInModel{
		ctx:    ctx,
		inputs: []textinput.Model{userInput, tokenInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - tab        moves focus to the next input.
//   - shift+tab  moves focus to the previous input.
//   - enter      validates inputs and emits a [SessionResult].
//
// All other key events are forwarded to the focused input widget.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			userID := strings.TrimSpace(m.inputs[0].Value())
			token := strings.TrimSpace(m.inputs[1].Value())
			if userID == "" || token == "" {
				m.errMsg = "user id and token are required"
				return m, nil
			}

			if _, err := utils.CheckTokenFreshness(token, time.Now()); err != nil {
				m.errMsg = "token rejected: " + err.Error()
				return m, nil
			}

			m.errMsg = ""
			return m, func() tea.Msg {
				return SessionResult{Session: models.Session{
					UserID:  userID,
					Token:   token,
					SavedAt: time.Now(),
				}}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the sign-in form as a two-column
// table with an optional error message.
func (m *SignInModel) View() string {
	var b strings.Builder
	b.WriteString("Field   │ Value\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("User ID │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Token   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}

func (m *SignInModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SignInModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
