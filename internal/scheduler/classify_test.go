package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/bell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(t *testing.T, name, start, end string) domain.Block {
	t.Helper()
	b, err := domain.ParseBlock(name, start, end)
	require.NoError(t, err)
	return b
}

func at(h, m int) domain.TimeOfDay {
	return domain.NewTimeOfDay(h, m)
}

func TestClassify(t *testing.T) {
	b, err := domain.NewBlock("Block 2", at(8, 44), at(9, 44))
	require.NoError(t, err)

	tests := []struct {
		name string
		now  domain.TimeOfDay
		want domain.Order
	}{
		{"well before", at(7, 0), domain.OrderNotStarted},
		{"one minute before start", at(8, 43), domain.OrderNotStarted},
		{"at start", at(8, 44), domain.OrderInProgress},
		{"middle", at(9, 0), domain.OrderInProgress},
		{"at end", at(9, 44), domain.OrderInProgress},
		{"one minute after end", at(9, 45), domain.OrderFinished},
		{"afternoon", at(15, 0), domain.OrderFinished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(b, tt.now))
		})
	}
}

func TestClassify_SubMinuteAfterEndIsFinished(t *testing.T) {
	b := block(t, "Block 1", "7:30", "8:36")
	now := at(8, 36) + domain.TimeOfDay(30*time.Second)
	assert.Equal(t, domain.OrderFinished, Classify(b, now))
}

func TestContains_OpenInterval(t *testing.T) {
	b := block(t, "Block 2", "8:44", "9:44")

	assert.False(t, Contains(b, at(8, 44)), "start boundary is not contained")
	assert.True(t, Contains(b, at(8, 45)))
	assert.True(t, Contains(b, at(9, 0)))
	assert.False(t, Contains(b, at(9, 44)), "end boundary is not contained")
	assert.False(t, Contains(b, at(7, 0)))
	assert.False(t, Contains(b, at(10, 0)))
}

func TestClassifyAndContains_BoundaryAsymmetry(t *testing.T) {
	b := block(t, "Block 4", "11:00", "12:00")

	assert.Equal(t, domain.OrderInProgress, Classify(b, b.End))
	assert.False(t, Contains(b, b.End))

	assert.Equal(t, domain.OrderInProgress, Classify(b, b.Start))
	assert.False(t, Contains(b, b.Start))
}

func TestClassifyDay_MarksCurrentAndNext(t *testing.T) {
	day := domain.DaySchedule{
		block(t, "Block 1", "7:30", "8:36"),
		block(t, "Block 2", "8:44", "9:44"),
		block(t, "Block 3", "9:52", "10:52"),
		block(t, "Block 4", "11:00", "12:00"),
	}

	got := ClassifyDay(day, at(9, 0))
	require.Len(t, got, 4)

	assert.Equal(t, domain.OrderFinished, got[0].Order)
	assert.Equal(t, domain.OrderInProgress, got[1].Order)
	assert.True(t, got[1].Current)
	assert.Equal(t, domain.OrderNotStarted, got[2].Order)
	assert.True(t, got[2].Next)
	assert.False(t, got[3].Next, "only the first not-started block is next")

	for i, cb := range got {
		assert.Equal(t, i, cb.Index)
	}
}

func TestClassifyDay_BetweenBlocks(t *testing.T) {
	day := domain.DaySchedule{
		block(t, "Block 1", "7:30", "8:36"),
		block(t, "Block 2", "8:44", "9:44"),
	}

	got := ClassifyDay(day, at(8, 40))
	_, hasCurrent := Current(got)
	assert.False(t, hasCurrent)

	next, ok := Upcoming(got)
	require.True(t, ok)
	assert.Equal(t, "Block 2", next.Block.Name)
}

func TestRemaining_DropsFinished(t *testing.T) {
	day := domain.DaySchedule{
		block(t, "Block 1", "7:30", "8:30"),
		block(t, "Block 2", "8:40", "9:40"),
		block(t, "Block 3", "9:50", "10:50"),
	}

	got := Remaining(ClassifyDay(day, at(9, 0)))
	require.Len(t, got, 2)
	assert.Equal(t, "Block 2", got[0].Block.Name)
	assert.Equal(t, 1, got[0].Index, "index refers to the full day")

	assert.Empty(t, Remaining(ClassifyDay(day, at(13, 0))))
	assert.Len(t, Remaining(ClassifyDay(day, at(6, 0))), 3)
}

func TestCheckPartition_SharedBoundary(t *testing.T) {
	day := domain.DaySchedule{
		block(t, "Block 4", "11:00", "12:00"),
		block(t, "Lunch", "12:00", "1:00"),
	}

	got := ClassifyDay(day, at(12, 0))
	assert.Equal(t, domain.OrderInProgress, got[0].Order)
	assert.Equal(t, domain.OrderInProgress, got[1].Order)
	assert.NoError(t, CheckPartition(got, at(12, 0)))
}

func TestCheckPartition_RejectsOutOfOrder(t *testing.T) {
	blocks := []ClassifiedBlock{
		{Block: block(t, "A", "9:00", "10:00"), Order: domain.OrderNotStarted},
		{Block: block(t, "B", "7:00", "8:00"), Order: domain.OrderFinished},
	}
	assert.Error(t, CheckPartition(blocks, at(8, 30)))
}
