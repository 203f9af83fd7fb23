package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// contentHeight is the space left between the header and the footer.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		return 1
	}
	return h
}

// renderHeader renders the top bar: logo, view tabs, and import status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("taskdeck")}

	home := "1 Overview"
	tasks := "2 Tasks"
	if m.currentView == ViewHome {
		parts = append(parts, styles.Text.Bold(true).Render(home), styles.MutedText.Render(tasks))
	} else {
		parts = append(parts, styles.MutedText.Render(home), styles.Text.Bold(true).Render(tasks))
	}

	if m.snapshot.Loading {
		parts = append(parts, m.spin.View()+styles.WarningText.Render("importing…"))
	} else if m.snapshot.Err != "" {
		parts = append(parts, styles.DangerText.Render("API: "+truncate(m.snapshot.Err, 40)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "   "))
}

// renderFooter renders key hints plus the transient status message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.status != "" {
		line := styles.SuccessText.Render(m.status)
		if m.statusIsError {
			line = styles.DangerText.Render(m.status)
		}
		return styles.Footer.Width(m.width).Render(line)
	}

	hints := "a add  •  e edit  •  space done  •  x delete  •  / search  •  s sort  •  r import  •  h help"
	if m.currentView == ViewHome {
		hints = "tab switch view  •  r import  •  h help  •  q quit"
	}
	return styles.Footer.Width(m.width).Render(hints)
}

// overlay centers modal content on a blank screen.
func (m Model) overlay(content string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
