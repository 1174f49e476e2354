package planner

import (
	"testing"
	"time"

	"github.com/Nabzillaa/project-management-automation-sub000/internal/cpm"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/graph"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/project"
)

func testReport(t *testing.T) (*Report, *graph.Graph, *cpm.Result) {
	t.Helper()

	p := &project.Project{
		Name:  "Test project",
		Start: time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		Tasks: []graph.Task{
			{ID: "a", Title: "First", Duration: 3},
			{ID: "b", Title: "Long branch", Duration: 4, DependsOn: []string{"a"}},
			{ID: "c", Title: "Short branch", Duration: 2, DependsOn: []string{"a"}},
			{ID: "d", Title: "Last", Duration: 5, DependsOn: []string{"b", "c"}},
		},
	}

	g, err := graph.Build(p.Tasks)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	result := cpm.Analyze(g, p.Start)
	return Generate(p, g, result), g, result
}

func TestGenerate(t *testing.T) {
	report, g, result := testReport(t)

	if report.Project != "Test project" {
		t.Errorf("expected project name carried over, got %q", report.Project)
	}
	if report.ID == "" {
		t.Error("expected a generated report ID")
	}
	if report.TotalTasks != g.TaskCount() {
		t.Errorf("expected %d tasks, got %d", g.TaskCount(), report.TotalTasks)
	}
	if report.TotalDuration != result.TotalDuration {
		t.Errorf("expected total duration %g, got %g", result.TotalDuration, report.TotalDuration)
	}
	if len(report.CriticalPath) != 3 {
		t.Errorf("expected critical path of 3, got %v", report.CriticalPath)
	}
}

func TestGenerate_RowsInTopologicalOrder(t *testing.T) {
	report, _, result := testReport(t)

	if len(report.Tasks) != len(result.TopoOrder) {
		t.Fatalf("expected %d rows, got %d", len(result.TopoOrder), len(report.Tasks))
	}
	for i, row := range report.Tasks {
		if row.TaskID != result.TopoOrder[i] {
			t.Fatalf("row %d: expected %s, got %s", i, result.TopoOrder[i], row.TaskID)
		}
	}

	// Row schedule fields mirror the analysis.
	for _, row := range report.Tasks {
		s := result.Tasks[row.TaskID]
		if !row.EarliestStart.Equal(s.EarliestStart) || !row.LatestFinish.Equal(s.LatestFinish) {
			t.Errorf("row %s dates diverge from analysis", row.TaskID)
		}
		if row.Slack != s.Slack || row.IsCritical != s.IsCritical {
			t.Errorf("row %s slack/criticality diverge from analysis", row.TaskID)
		}
	}
}

func TestGenerate_Waves(t *testing.T) {
	report, _, result := testReport(t)

	if len(report.Waves) != len(result.Waves) {
		t.Fatalf("expected %d waves, got %d", len(result.Waves), len(report.Waves))
	}
	for i, wave := range report.Waves {
		if wave.Index != i {
			t.Errorf("wave %d has index %d", i, wave.Index)
		}
		first := result.Tasks[wave.TaskIDs[0]]
		if !wave.Start.Equal(first.EarliestStart) {
			t.Errorf("wave %d start %v != first task ES %v", i, wave.Start, first.EarliestStart)
		}
	}
}
