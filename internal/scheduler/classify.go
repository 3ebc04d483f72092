package scheduler

import (
	"fmt"

	"github.com/alexanderramin/bell/internal/domain"
)

// Classify reports where now falls relative to b. The end bound is inclusive:
// at exactly b.End the block is still in progress.
func Classify(b domain.Block, now domain.TimeOfDay) domain.Order {
	remaining := b.End.Sub(now)

	switch {
	case remaining > b.Length():
		// more than a full block away from the end, so before the start
		return domain.OrderNotStarted
	case remaining >= 0:
		return domain.OrderInProgress
	default:
		return domain.OrderFinished
	}
}

// Contains reports whether now lies strictly inside b. Both bounds are open,
// unlike Classify: a block is not "containing" at its first or last instant.
func Contains(b domain.Block, now domain.TimeOfDay) bool {
	return now > b.Start && now < b.End
}

// ClassifiedBlock pairs a block with its state for one query time.
type ClassifiedBlock struct {
	Index int
	Block domain.Block
	Order domain.Order
	// Current is set when the block strictly contains the query time.
	Current bool
	// Next marks the first block that has not started yet.
	Next bool
}

// ClassifyDay classifies every block of a day against now, preserving order.
func ClassifyDay(day domain.DaySchedule, now domain.TimeOfDay) []ClassifiedBlock {
	out := make([]ClassifiedBlock, 0, len(day))
	nextMarked := false
	for i, b := range day {
		cb := ClassifiedBlock{
			Index:   i,
			Block:   b,
			Order:   Classify(b, now),
			Current: Contains(b, now),
		}
		if cb.Order == domain.OrderNotStarted && !nextMarked {
			cb.Next = true
			nextMarked = true
		}
		out = append(out, cb)
	}
	return out
}

// Remaining drops finished blocks.
func Remaining(blocks []ClassifiedBlock) []ClassifiedBlock {
	out := make([]ClassifiedBlock, 0, len(blocks))
	for _, cb := range blocks {
		if cb.Order != domain.OrderFinished {
			out = append(out, cb)
		}
	}
	return out
}

// Current returns the block that strictly contains the query time, if any.
func Current(blocks []ClassifiedBlock) (ClassifiedBlock, bool) {
	for _, cb := range blocks {
		if cb.Current {
			return cb, true
		}
	}
	return ClassifiedBlock{}, false
}

// Upcoming returns the first block that has not started, if any.
func Upcoming(blocks []ClassifiedBlock) (ClassifiedBlock, bool) {
	for _, cb := range blocks {
		if cb.Next {
			return cb, true
		}
	}
	return ClassifiedBlock{}, false
}

// CheckPartition verifies that a classified day reads finished, then in
// progress, then not started. Two blocks may both be in progress only when
// the query time sits on the boundary they share.
func CheckPartition(blocks []ClassifiedBlock, now domain.TimeOfDay) error {
	rank := map[domain.Order]int{
		domain.OrderFinished:   0,
		domain.OrderInProgress: 1,
		domain.OrderNotStarted: 2,
	}

	inProgress := 0
	for i, cb := range blocks {
		if i > 0 && rank[cb.Order] < rank[blocks[i-1].Order] {
			return fmt.Errorf("block %q is %s after %q is %s",
				cb.Block.Name, cb.Order, blocks[i-1].Block.Name, blocks[i-1].Order)
		}
		if cb.Order != domain.OrderInProgress {
			continue
		}
		inProgress++
		onBoundary := now == cb.Block.Start || now == cb.Block.End
		if inProgress > 1 && !onBoundary {
			return fmt.Errorf("block %q is in progress alongside another block at %s", cb.Block.Name, now)
		}
	}
	return nil
}
