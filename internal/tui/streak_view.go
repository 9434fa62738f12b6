package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateStreak(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(streakLoadedMsg); ok {
		m.loading = false
		if loaded.err != nil {
			m.errMsg = loaded.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.streak = loaded.streak
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m.backToMenu()
	case "r":
		m.loading = true
		return m, m.cmdLoadStreak()
	}

	return m, nil
}

func (m mainLoopModel) viewStreak() string {
	if m.loading {
		return renderPage("STREAK", "Loading streak...", "esc: back")
	}

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n\n")
	}

	b.WriteString(streakBigStyle.Render(fmt.Sprintf("%d day streak", m.streak.CurrentStreak)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Longest streak : %d days\n", m.streak.LongestStreak))
	b.WriteString(fmt.Sprintf("Total points   : %d\n", m.streak.TotalPoints))
	if m.streak.LastJournalDate != "" {
		b.WriteString("Last entry     : " + m.streak.LastJournalDate + "\n")
	} else {
		b.WriteString("Last entry     : never\n")
	}

	if next, armed := m.services.Scheduler.NextFireAt(); armed {
		b.WriteString("\nNext journal reminder: " + next.Local().Format("2006-01-02 15:04") + "\n")
	}

	return renderPage("STREAK", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}

func (m mainLoopModel) cmdLoadStreak() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Streaks
	userID := m.userID

	return func() tea.Msg {
		streak, err := svc.Current(ctx, userID)
		return streakLoadedMsg{streak: streak, err: err}
	}
}
