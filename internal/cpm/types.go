package cpm

import "time"

// Result holds the complete critical path analysis for one project snapshot.
type Result struct {
	Tasks         map[string]*Schedule
	CriticalPath  []string // critical task ids ordered by earliest start
	ProjectStart  time.Time
	ProjectEnd    time.Time
	TotalDuration float64 // working days from project start to project end
	Waves         []Wave  // parallelizable groups
	TopoOrder     []string
}

// Schedule holds the computed dates for a single task. Finish dates are
// exclusive working-day boundaries: a successor's earliest start equals its
// predecessor's earliest finish.
type Schedule struct {
	TaskID         string    `json:"task_id"`
	EarliestStart  time.Time `json:"earliest_start"`
	EarliestFinish time.Time `json:"earliest_finish"`
	LatestStart    time.Time `json:"latest_start"`
	LatestFinish   time.Time `json:"latest_finish"`
	Slack          float64   `json:"slack"` // working days
	IsCritical     bool      `json:"is_critical"`
	Wave           int       `json:"wave"`
}

// Wave represents a group of tasks sharing an earliest start date, i.e. work
// that could proceed in parallel.
type Wave struct {
	Index      int
	TaskIDs    []string
	IsCritical bool // true if the wave contains critical path tasks
}
