package domain

// Order is the state of a block relative to the current time of day.
type Order string

const (
	OrderFinished   Order = "finished"
	OrderInProgress Order = "in_progress"
	OrderNotStarted Order = "not_started"
)

// ScheduleState is the terminal outcome of a schedule query.
type ScheduleState string

const (
	// StateSchedule means there are rows to show.
	StateSchedule ScheduleState = "schedule"
	// StateNoSchool means the weekday has no configured blocks.
	StateNoSchool ScheduleState = "no_school"
	// StateSchoolOver means only remaining blocks were requested and none are left.
	StateSchoolOver ScheduleState = "school_over"
)

// ColorMode controls when styled output is emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ValidColorModes is the canonical set of accepted color mode strings.
var ValidColorModes = map[string]bool{
	"auto": true, "always": true, "never": true,
}
