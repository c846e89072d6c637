package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderHeader renders the tab strip followed by the status of the active
// pane.
func (m Model) renderHeader() string {
	styles := m.styles
	bg := NewBgStyle(m.theme.Surface)

	tabs := make([]string, 0, len(m.panes))
	for i, p := range m.panes {
		if i == m.active {
			tabs = append(tabs, styles.ActiveTab.Render(p.tab.Name))
			continue
		}
		tabs = append(tabs, styles.InactiveTab.Render(p.tab.Name))
	}

	parts := []string{
		bg.Render("flow", styles.Logo),
		strings.Join(tabs, bg.Space()),
	}
	parts = append(parts, m.statusParts(bg)...)

	line := bg.Join(parts, "  ")
	line = ansi.Truncate(line, max(m.width-2, 0), "…")
	return styles.Header.Width(m.width).Render(line)
}

func (m Model) statusParts(bg BgStyle) []string {
	styles := m.styles
	p := m.current()

	parts := []string{
		bg.Render(fmt.Sprintf("%d lines", p.buf.Len()), styles.MutedText),
	}

	if p.view.Following() {
		parts = append(parts, bg.Render("FOLLOW", styles.SuccessText))
	} else {
		parts = append(parts, bg.Render(fmt.Sprintf("SCROLLED +%d", p.view.ReverseIndex), styles.WarningText))
	}

	if p.query != "" {
		k, n := p.matchPosition()
		switch {
		case n == 0:
			parts = append(parts, bg.Render("no match", styles.DangerText))
		case k == 0:
			parts = append(parts, bg.Render(fmt.Sprintf("%d matches", n), styles.AccentText))
		default:
			parts = append(parts, bg.Render(fmt.Sprintf("match %d/%d", k, n), styles.AccentText))
		}
	}

	if err := m.status.LastError; err != nil {
		label := "source error"
		if m.status.IsOffline() {
			label = "source unavailable"
		}
		parts = append(parts, bg.Render(label, styles.DangerText))
	}

	if m.cfg.LogPath != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.cfg.LogPath, 40), styles.FaintText))
	}
	return parts
}

// renderFooter shows the search prompt while it has focus and the short
// key help otherwise. Either way it is a single row.
func (m Model) renderFooter() string {
	line := m.help.View(m.keys)
	if m.prompt {
		line = m.input.View() + footerGap + m.help.View(promptKeys{m.keys})
	}
	inner := max(m.width-m.styles.Footer.GetHorizontalFrameSize(), 0)
	return m.styles.Footer.Width(m.width).Render(ansi.Truncate(line, inner, ""))
}

const footerGap = "  "

// inputWidth is the textinput width that fits the prompt footer. The input
// draws its prompt and one cursor cell beyond its Width.
func (m Model) inputWidth() int {
	inner := m.width - m.styles.Footer.GetHorizontalFrameSize()
	keys := lipgloss.Width(m.help.View(promptKeys{m.keys}))
	return max(inner-keys-len(footerGap)-lipgloss.Width(m.input.Prompt)-1, 1)
}
