package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bell/internal/domain"
)

// DaySource is the read side of a timetable.
type DaySource interface {
	For(day time.Weekday) (domain.DaySchedule, bool)
}

// FormatCheck summarizes a validated timetable: one line per weekday with its
// block count and school hours.
func FormatCheck(source string, tt DaySource) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render("✔ Timetable OK") + " " + Dim(source) + "\n\n")

	headers := []string{"DAY", "BLOCKS", "FIRST", "LAST"}
	rows := make([][]string, 0, len(domain.SchoolWeek))
	for _, day := range domain.SchoolWeek {
		blocks, ok := tt.For(day)
		if !ok {
			rows = append(rows, []string{Dim(day.String()), Dim("0"), Dim("--"), Dim("--")})
			continue
		}
		rows = append(rows, []string{
			Bold(day.String()),
			fmt.Sprintf("%d", len(blocks)),
			blocks[0].Start.String(),
			blocks[len(blocks)-1].End.String(),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
