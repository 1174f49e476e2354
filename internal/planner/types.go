package planner

import "time"

// Report is the full result set for one schedule calculation: per-task dates
// and slack, the ordered critical path, total duration, and parallel waves.
type Report struct {
	ID            string       `json:"id"`
	Project       string       `json:"project,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	ProjectStart  time.Time    `json:"project_start"`
	ProjectEnd    time.Time    `json:"project_end"`
	TotalDuration float64      `json:"total_duration_days"`
	TotalTasks    int          `json:"total_tasks"`
	CriticalPath  []string     `json:"critical_path"`
	Tasks         []TaskRow    `json:"tasks"`
	Waves         []ReportWave `json:"waves"`
}

// TaskRow is the per-task schedule output contract.
type TaskRow struct {
	TaskID         string    `json:"task_id"`
	Title          string    `json:"title,omitempty"`
	Duration       float64   `json:"duration"`
	EarliestStart  time.Time `json:"earliest_start"`
	EarliestFinish time.Time `json:"earliest_finish"`
	LatestStart    time.Time `json:"latest_start"`
	LatestFinish   time.Time `json:"latest_finish"`
	Slack          float64   `json:"slack"`
	IsCritical     bool      `json:"is_critical"`
	Wave           int       `json:"wave"`
}

// ReportWave is a group of tasks sharing an earliest start date.
type ReportWave struct {
	Index      int       `json:"index"`
	Start      time.Time `json:"start"`
	TaskIDs    []string  `json:"task_ids"`
	IsCritical bool      `json:"is_critical"`
}
