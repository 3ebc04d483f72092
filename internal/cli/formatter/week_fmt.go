package formatter

import (
	"strings"

	"github.com/alexanderramin/bell/internal/app"
	"github.com/charmbracelet/lipgloss"
)

// FormatWeek renders one grid per configured day, without classification.
func FormatWeek(resp *app.WeekResponse) string {
	if len(resp.Days) == 0 {
		return Dim("No school days configured.") + "\n"
	}

	parts := make([]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		rows := make([][]string, 0, len(d.Blocks))
		for _, b := range d.Blocks {
			rows = append(rows, []string{
				b.Name,
				b.String(),
				FormatMinutes(int(b.Length().Minutes())),
			})
		}
		grid := RenderGrid([]string{"BLOCK", "TIME", "LENGTH"}, rows, func(int) lipgloss.Style {
			return StyleFg
		})
		parts = append(parts, RenderTitleBar(d.Day.String(), firstLineWidth(grid))+"\n"+grid+"\n")
	}
	return strings.Join(parts, "\n")
}
