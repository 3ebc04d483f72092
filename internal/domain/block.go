package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidBlock is returned when a block's bounds are unusable.
var ErrInvalidBlock = errors.New("invalid block")

// Block is a named interval within a school day.
type Block struct {
	Name  string
	Start TimeOfDay
	End   TimeOfDay

	// cached so classification does not recompute End - Start
	length time.Duration
}

// NewBlock creates a Block. End must not precede Start; blocks that wrap past
// midnight are not supported.
func NewBlock(name string, start, end TimeOfDay) (Block, error) {
	if end < start {
		return Block{}, fmt.Errorf("%w: %q ends at %s before it starts at %s", ErrInvalidBlock, name, end, start)
	}
	return Block{
		Name:   name,
		Start:  start,
		End:    end,
		length: end.Sub(start),
	}, nil
}

// ParseBlock builds a Block from schedule strings such as "12:00" and "1:00".
func ParseBlock(name, start, end string) (Block, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Block{}, fmt.Errorf("block %q start: %w", name, err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Block{}, fmt.Errorf("block %q end: %w", name, err)
	}
	return NewBlock(name, s, e)
}

// Length returns End - Start.
func (b Block) Length() time.Duration {
	return b.length
}

// String formats the block's range as "HH:MM - HH:MM".
func (b Block) String() string {
	return fmt.Sprintf("%s - %s", b.Start, b.End)
}
