package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/untoldecay/CrosswalkForge/internal/types"
)

// Palette shared across commands.
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "244", Dark: "241"}
	ColorWarn   = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	ColorPass   = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
)

var (
	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Align(lipgloss.Center)

	TableBorderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	WarnStyle = lipgloss.NewStyle().
		Foreground(ColorWarn)

	PassStyle = lipgloss.NewStyle().
		Foreground(ColorPass)
)

// RenderSummaryTable renders the per-kind counts and derived totals as a
// bordered terminal table.
func RenderSummaryTable(s *types.Summary) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("RELATIONSHIP", "COUNT")

	for _, k := range types.AllKinds {
		t.Row(string(k), strconv.Itoa(s.Counts[k]))
	}
	t.Row("total", strconv.Itoa(s.Total))

	totals := fmt.Sprintf("mapped %d · gaps %d · excluded %d",
		s.Mapped(), s.Gaps(), s.Excluded())

	return t.Render() + "\n" + TableBorderStyle.Render(totals)
}
