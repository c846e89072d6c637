package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the key reference as a centered modal.
func (m Model) renderHelp() string {
	styles := m.styles

	full := m.help
	full.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.Text.Bold(true).Render("Keyboard Shortcuts"),
		"",
		full.View(m.keys),
		"",
		styles.MutedText.Render("Themes: ")+m.themeList(),
	)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// themeList names every theme, marking the active one.
func (m Model) themeList() string {
	names := ThemeNames()
	parts := make([]string, len(names))
	for i, name := range names {
		if name == m.theme.Name {
			parts[i] = m.styles.AccentText.Render("[" + name + "]")
			continue
		}
		parts[i] = m.styles.MutedText.Render(name)
	}
	return strings.Join(parts, " ")
}
