// Package reporter renders a schedule report for terminals and machines.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Nabzillaa/project-management-automation-sub000/internal/planner"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/ui"
)

// dateFmt is the display format for schedule dates.
const dateFmt = "Mon 2006-01-02"

// Reporter provides schedule display for a computed report.
type Reporter struct {
	Report *planner.Report
}

// New creates a new Reporter.
func New(report *planner.Report) *Reporter {
	return &Reporter{Report: report}
}

// PrintSchedule writes a terminal-friendly schedule table grouped by wave.
func (r *Reporter) PrintSchedule(w io.Writer) {
	rep := r.Report

	name := rep.Project
	if name == "" {
		name = rep.ID
	}

	fmt.Fprintf(w, "📅 %s %s\n", ui.BoldCyan("Schedule:"), ui.Bold(name))
	fmt.Fprintf(w, "%s\n", ui.Cyan("═══════════════════════════"))
	fmt.Fprintf(w, "Start:     %s\n", ui.Bold(rep.ProjectStart.Format(dateFmt)))
	fmt.Fprintf(w, "Finish:    %s\n", ui.Bold(rep.ProjectEnd.Format(dateFmt)))
	fmt.Fprintf(w, "Duration:  %s working days\n", ui.Bold(ui.Days(rep.TotalDuration)))
	fmt.Fprintf(w, "Tasks:     %d\n", rep.TotalTasks)
	if len(rep.CriticalPath) > 0 {
		fmt.Fprintf(w, "⚡ Critical path: %s\n", ui.BoldYellow(strings.Join(rep.CriticalPath, " → ")))
	}
	fmt.Fprintln(w)

	rows := make(map[string]planner.TaskRow, len(rep.Tasks))
	for _, row := range rep.Tasks {
		rows[row.TaskID] = row
	}

	for _, wave := range rep.Waves {
		fmt.Fprintf(w, "  🌊 %s %d (%s, %d tasks)\n",
			ui.BoldWhite("WAVE"), wave.Index+1, ui.Dim(wave.Start.Format(dateFmt)), len(wave.TaskIDs))

		for _, id := range wave.TaskIDs {
			r.printTask(w, rows[id])
		}
		fmt.Fprintln(w)
	}
}

func (r *Reporter) printTask(w io.Writer, row planner.TaskRow) {
	title := row.Title
	if len(title) > 32 {
		title = title[:29] + "..."
	}

	fmt.Fprintf(w, "    %s %-12s %-32s %s → %s  %s %s\n",
		ui.CriticalMarker(row.IsCritical),
		ui.BoldMagenta(row.TaskID),
		title,
		row.EarliestStart.Format(dateFmt),
		row.EarliestFinish.Format(dateFmt),
		ui.Dim("slack"),
		ui.SlackLabel(row.Slack, row.IsCritical))
}

// JSON returns the machine-readable report.
func (r *Reporter) JSON() ([]byte, error) {
	return json.MarshalIndent(r.Report, "", "  ")
}

// Summary returns a compact one-paragraph summary string.
func (r *Reporter) Summary() string {
	rep := r.Report

	critical := 0
	for _, row := range rep.Tasks {
		if row.IsCritical {
			critical++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d tasks over %s working days (%s → %s), %d critical across %d waves",
		ui.BoldCyan("Schedule:"),
		rep.TotalTasks,
		ui.Bold(ui.Days(rep.TotalDuration)),
		rep.ProjectStart.Format(dateFmt),
		rep.ProjectEnd.Format(dateFmt),
		critical,
		len(rep.Waves))
	return b.String()
}
