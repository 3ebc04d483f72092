package timetable

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/bell/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct{ name, start, end string }

func rows(day domain.DaySchedule) []row {
	out := make([]row, 0, len(day))
	for _, b := range day {
		out = append(out, row{b.Name, b.Start.String(), b.End.String()})
	}
	return out
}

func TestDefault_MatchesBuiltInTables(t *testing.T) {
	tt, err := Default()
	require.NoError(t, err)

	fullC := []row{
		{"Block 1", "07:30", "08:36"},
		{"Block 2", "08:44", "09:44"},
		{"Block 3", "09:52", "10:52"},
		{"Block 4", "11:00", "12:00"},
		{"Lunch", "12:00", "13:00"},
		{"Block 1", "13:00", "13:25"},
		{"Block 2", "13:30", "13:55"},
	}
	fullD := append(append([]row{}, fullC[:5]...),
		row{"Block 3", "13:00", "13:25"},
		row{"Block 4", "13:30", "13:55"},
	)
	half := []row{
		{"Block 1", "07:30", "08:30"},
		{"Block 2", "08:40", "09:40"},
		{"Block 3", "09:50", "10:50"},
		{"Block 4", "11:00", "12:00"},
	}

	want := map[time.Weekday][]row{
		time.Monday:    fullC,
		time.Tuesday:   fullC,
		time.Wednesday: half,
		time.Thursday:  fullD,
		time.Friday:    fullD,
	}
	for wd, expected := range want {
		day, ok := tt.For(wd)
		require.True(t, ok, wd.String())
		assert.Equal(t, expected, rows(day), wd.String())
	}

	for _, wd := range []time.Weekday{time.Saturday, time.Sunday} {
		_, ok := tt.For(wd)
		assert.False(t, ok, wd.String())
	}

	assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, tt.Days())
}

func TestParse_CustomTimetable(t *testing.T) {
	data := []byte(`
segments:
  morning:
    - {name: Homeroom, start: "8:00", end: "8:15"}
    - {name: Math, start: "8:15", end: "9:15"}
  afternoon:
    - {name: Art, start: "2:00", end: "3:00"}
days:
  saturday: [morning, afternoon]
`)
	tt, err := Parse(data)
	require.NoError(t, err)

	day, ok := tt.For(time.Saturday)
	require.True(t, ok)
	assert.Equal(t, []row{
		{"Homeroom", "08:00", "08:15"},
		{"Math", "08:15", "09:15"},
		{"Art", "14:00", "15:00"},
	}, rows(day))

	_, ok = tt.For(time.Monday)
	assert.False(t, ok)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no days",
			yaml:    "segments:\n  a:\n    - {name: A, start: \"8:00\", end: \"9:00\"}\n",
			wantErr: "at least one weekday",
		},
		{
			name:    "unknown weekday",
			yaml:    "segments:\n  a:\n    - {name: A, start: \"8:00\", end: \"9:00\"}\ndays:\n  funday: [a]\n",
			wantErr: "days.funday: unknown weekday",
		},
		{
			name:    "abbreviated weekday",
			yaml:    "segments:\n  a:\n    - {name: A, start: \"8:00\", end: \"9:00\"}\ndays:\n  mon: [a]\n",
			wantErr: "days.mon: unknown weekday",
		},
		{
			name:    "unknown segment",
			yaml:    "segments:\n  a:\n    - {name: A, start: \"8:00\", end: \"9:00\"}\ndays:\n  monday: [a, b]\n",
			wantErr: `unknown segment "b"`,
		},
		{
			name:    "malformed time",
			yaml:    "segments:\n  a:\n    - {name: A, start: \"8h00\", end: \"9:00\"}\ndays:\n  monday: [a]\n",
			wantErr: "segments.a[0]",
		},
		{
			name:    "missing name",
			yaml:    "segments:\n  a:\n    - {start: \"8:00\", end: \"9:00\"}\ndays:\n  monday: [a]\n",
			wantErr: "segments.a[0].name is required",
		},
		{
			name:    "end before start",
			yaml:    "segments:\n  a:\n    - {name: A, start: \"11:00\", end: \"10:00\"}\ndays:\n  monday: [a]\n",
			wantErr: "ends at 10:00 before it starts at 11:00",
		},
		{
			name:    "overlap across segments",
			yaml:    "segments:\n  a:\n    - {name: A, start: \"8:00\", end: \"9:00\"}\n  b:\n    - {name: B, start: \"8:30\", end: \"9:30\"}\ndays:\n  monday: [a, b]\n",
			wantErr: `"B" (08:30 - 09:30) starts before "A" (08:00 - 09:00) ends`,
		},
		{
			name:    "empty segment",
			yaml:    "segments:\n  a: []\ndays:\n  monday: [a]\n",
			wantErr: "segments.a: must contain at least one block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTimetable)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_CollectsAllErrors(t *testing.T) {
	data := []byte(`
segments:
  a:
    - {name: A, start: "bad", end: "9:00"}
days:
  monday: [a]
  funday: [missing]
`)
	schema, err := DecodeSchema(data)
	require.NoError(t, err)

	errs := ValidateSchema(schema)
	assert.Len(t, errs, 3, "bad time, unknown weekday and unknown segment")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("this: is: invalid: yaml: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timetable yaml")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	require.NoError(t, os.WriteFile(path, DefaultSchemaYAML(), 0644))

	tt, err := Load(path)
	require.NoError(t, err)
	day, ok := tt.For(time.Wednesday)
	require.True(t, ok)
	assert.Len(t, day, 4)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	tt, err := Load("")
	require.NoError(t, err)
	assert.Len(t, tt.Days(), 5)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading timetable")
}

func TestLoad_InvalidFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("days:\n  monday: [nope]\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTimetable)
	assert.Contains(t, err.Error(), path)
}

func TestNew_CopiesDaysAndSkipsEmpty(t *testing.T) {
	b, err := domain.ParseBlock("Study Hall", "9:00", "10:00")
	require.NoError(t, err)

	days := map[time.Weekday]domain.DaySchedule{
		time.Tuesday:  {b},
		time.Thursday: nil,
	}
	tt := New(days)
	delete(days, time.Tuesday)

	got, ok := tt.For(time.Tuesday)
	require.True(t, ok)
	assert.Equal(t, "Study Hall", got[0].Name)

	_, ok = tt.For(time.Thursday)
	assert.False(t, ok)
	assert.Equal(t, []time.Weekday{time.Tuesday}, tt.Days())
}
