// Package planner assembles the caller-facing schedule report from the
// graph and CPM analysis output.
package planner

import (
	"fmt"
	"time"

	"github.com/Nabzillaa/project-management-automation-sub000/internal/cpm"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/graph"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/project"
)

// Generate creates a Report from CPM analysis results. Task rows come out in
// topological order so dependent work always appears after its prerequisites.
func Generate(p *project.Project, g *graph.Graph, result *cpm.Result) *Report {
	report := &Report{
		ID:            fmt.Sprintf("sched-%s", time.Now().Format("2006-01-02-150405")),
		Project:       p.Name,
		CreatedAt:     time.Now(),
		ProjectStart:  result.ProjectStart,
		ProjectEnd:    result.ProjectEnd,
		TotalDuration: result.TotalDuration,
		TotalTasks:    g.TaskCount(),
		CriticalPath:  result.CriticalPath,
	}

	for _, id := range result.TopoOrder {
		task := g.Tasks[g.Index[id]]
		s := result.Tasks[id]

		report.Tasks = append(report.Tasks, TaskRow{
			TaskID:         id,
			Title:          task.Title,
			Duration:       task.Duration,
			EarliestStart:  s.EarliestStart,
			EarliestFinish: s.EarliestFinish,
			LatestStart:    s.LatestStart,
			LatestFinish:   s.LatestFinish,
			Slack:          s.Slack,
			IsCritical:     s.IsCritical,
			Wave:           s.Wave,
		})
	}

	for _, wave := range result.Waves {
		report.Waves = append(report.Waves, ReportWave{
			Index:      wave.Index,
			Start:      result.Tasks[wave.TaskIDs[0]].EarliestStart,
			TaskIDs:    wave.TaskIDs,
			IsCritical: wave.IsCritical,
		})
	}

	return report
}
