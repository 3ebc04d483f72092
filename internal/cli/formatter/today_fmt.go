package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/bell/internal/app"
	"github.com/alexanderramin/bell/internal/domain"
	"github.com/alexanderramin/bell/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

var scheduleHeaders = []string{"BLOCK", "TIME", "STATUS"}

// FormatToday renders today's schedule, or the terminal message when there is
// nothing to show.
func FormatToday(resp *app.TodayResponse) string {
	if resp.State != domain.StateSchedule {
		return resp.Message + "\n"
	}

	var b strings.Builder
	b.WriteString(FormatDayTable(resp.Day.String(), resp.Blocks))

	if footer := todayFooter(resp); footer != "" {
		b.WriteString(footer + "\n")
	}
	return b.String()
}

// FormatDayTable renders a titled grid of classified blocks.
func FormatDayTable(title string, blocks []scheduler.ClassifiedBlock) string {
	rows := make([][]string, 0, len(blocks))
	for _, cb := range blocks {
		rows = append(rows, []string{cb.Block.Name, cb.Block.String(), BlockIndicator(cb)})
	}

	grid := RenderGrid(scheduleHeaders, rows, func(row int) lipgloss.Style {
		if row < 0 || row >= len(blocks) {
			return StyleFg
		}
		return BlockStyle(blocks[row])
	})
	return RenderTitleBar(title, firstLineWidth(grid)) + "\n" + grid + "\n"
}

func todayFooter(resp *app.TodayResponse) string {
	var lines []string
	if status := blockStatus(resp); status != "" {
		lines = append(lines, status)
	}
	if resp.OnlyRemaining {
		lines = append(lines, Dim(fmt.Sprintf("%d of %d blocks left", len(resp.Blocks), resp.TotalBlocks)))
	}
	return strings.Join(lines, "\n")
}

// blockStatus describes the running block, or the wait for the next one.
func blockStatus(resp *app.TodayResponse) string {
	running, ok := resp.Current()
	if !ok {
		running, ok = startedAtBoundary(resp)
	}
	if ok {
		left := ceilMinutes(running.Block.End.Sub(resp.Now))
		return StyleGreen.Render(fmt.Sprintf("%s ends in %s (%s)",
			running.Block.Name, FormatMinutes(left), running.Block.End))
	}
	if next, ok := resp.Upcoming(); ok {
		wait := ceilMinutes(next.Block.Start.Sub(resp.Now))
		return StyleYellow.Render(fmt.Sprintf("%s starts in %s (%s)",
			next.Block.Name, FormatMinutes(wait), next.Block.Start))
	}
	for _, cb := range resp.Blocks {
		if cb.Order != domain.OrderFinished {
			return ""
		}
	}
	return Dim("No blocks left today.")
}

// startedAtBoundary returns the last in-progress block that still has time
// left. Contains excludes both bounds, so at a shared boundary no block is
// current even though the later one has just begun.
func startedAtBoundary(resp *app.TodayResponse) (scheduler.ClassifiedBlock, bool) {
	for i := len(resp.Blocks) - 1; i >= 0; i-- {
		cb := resp.Blocks[i]
		if cb.Order == domain.OrderInProgress && cb.Block.End > resp.Now {
			return cb, true
		}
	}
	return scheduler.ClassifiedBlock{}, false
}
