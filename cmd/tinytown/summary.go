package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/younwookim/tinytown/internal/application/sim"
)

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).MarginBottom(1)
	summaryKey   = lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color("8"))
	summaryValue = lipgloss.NewStyle().Bold(true)
	summaryBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderSummary formats simulation stats as a two-column table
func renderSummary(variant string, seed int64, s sim.Stats) string {
	rows := []struct {
		key, value string
	}{
		{"Ticks", fmt.Sprintf("%d (%.1fs)", s.Ticks, s.Elapsed)},
		{"Enemy hits", fmt.Sprint(s.EnemyHits)},
		{"Enemies defeated", fmt.Sprint(s.EnemiesDefeated)},
		{"Damage dealt", fmt.Sprint(s.DamageDealt)},
		{"Player hits", fmt.Sprint(s.PlayerHits)},
		{"Damage taken", fmt.Sprint(s.DamageTaken)},
		{"Defeats", fmt.Sprint(s.Defeats)},
		{"Final score", fmt.Sprint(s.FinalScore)},
		{"Best score", fmt.Sprint(s.BestScore)},
		{"Final health", fmt.Sprint(s.FinalHealth)},
		{"Enemies alive", fmt.Sprint(s.Enemies)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, summaryKey.Render(r.key), summaryValue.Render(r.value)))
	}

	title := summaryTitle.Render(fmt.Sprintf("%s (seed %d)", variant, seed))
	return summaryBox.Render(lipgloss.JoinVertical(lipgloss.Left, title, strings.Join(lines, "\n")))
}
