// Package cpm implements the Critical Path Method over a validated task
// graph: a forward pass for earliest dates, a backward pass for latest
// dates, and slack-based critical path classification.
package cpm

import (
	"math"
	"sort"
	"time"

	"github.com/Nabzillaa/project-management-automation-sub000/internal/calendar"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/graph"
)

// SlackTolerance is the working-day tolerance under which slack counts as
// zero. Every slack-vs-zero comparison in the engine goes through this one
// constant.
const SlackTolerance = 0.01

// Analyze performs critical path analysis on a task graph, anchoring the
// schedule at start. Start dates falling on a weekend are normalized forward
// to the next working day. The graph is already validated (acyclic, known
// dependencies, non-negative durations), so Analyze itself cannot fail; both
// passes are iterative walks over the graph's topological order.
func Analyze(g *graph.Graph, start time.Time) *Result {
	start = calendar.NextWorkingDay(start)

	// Arena of schedules addressed by node index, mirroring the graph.
	schedules := make([]*Schedule, g.TaskCount())
	for _, node := range g.Order {
		schedules[node] = &Schedule{TaskID: g.ID(node)}
	}

	result := &Result{
		Tasks:        make(map[string]*Schedule, g.TaskCount()),
		ProjectStart: start,
		ProjectEnd:   start,
	}
	for _, node := range g.Order {
		result.Tasks[g.ID(node)] = schedules[node]
		result.TopoOrder = append(result.TopoOrder, g.ID(node))
	}

	// Forward pass: ES = max(EF of predecessors), roots start the project.
	for _, node := range g.Order {
		s := schedules[node]
		es := start
		for _, pred := range g.Preds[node] {
			if ef := schedules[pred].EarliestFinish; ef.After(es) {
				es = ef
			}
		}
		s.EarliestStart = es
		s.EarliestFinish = calendar.AddWorkingDays(es, g.Duration(node))

		if s.EarliestFinish.After(result.ProjectEnd) {
			result.ProjectEnd = s.EarliestFinish
		}
	}
	result.TotalDuration = calendar.WorkingDaysBetween(result.ProjectStart, result.ProjectEnd)

	// Backward pass, in reverse topological order:
	// LF = min(LS of successors), leaves finish at the project end.
	for i := len(g.Order) - 1; i >= 0; i-- {
		node := g.Order[i]
		s := schedules[node]

		lf := result.ProjectEnd
		for _, succ := range g.Succs[node] {
			if ls := schedules[succ].LatestStart; ls.Before(lf) {
				lf = ls
			}
		}
		s.LatestFinish = lf
		s.LatestStart = calendar.AddWorkingDays(lf, -g.Duration(node))

		s.Slack = calendar.WorkingDaysBetween(s.EarliestStart, s.LatestStart)
		s.IsCritical = math.Abs(s.Slack) < SlackTolerance
	}

	// Critical path: critical tasks ordered by earliest start, topological
	// order breaking ties so chains stay in dependency order.
	var critical []int
	for _, node := range g.Order {
		if schedules[node].IsCritical {
			critical = append(critical, node)
		}
	}
	sort.SliceStable(critical, func(a, b int) bool {
		return schedules[critical[a]].EarliestStart.Before(schedules[critical[b]].EarliestStart)
	})
	for _, node := range critical {
		result.CriticalPath = append(result.CriticalPath, g.ID(node))
	}

	result.Waves = computeWaves(g, schedules)

	return result
}

// computeWaves groups tasks by earliest start date. Tasks in the same wave
// have no ordering constraint between them and could run in parallel.
func computeWaves(g *graph.Graph, schedules []*Schedule) []Wave {
	groups := make(map[time.Time][]int)
	for _, node := range g.Order {
		es := schedules[node].EarliestStart
		groups[es] = append(groups[es], node)
	}

	starts := make([]time.Time, 0, len(groups))
	for es := range groups {
		starts = append(starts, es)
	}
	sort.Slice(starts, func(a, b int) bool { return starts[a].Before(starts[b]) })

	waves := make([]Wave, len(starts))
	for i, es := range starts {
		nodes := groups[es]

		hasCritical := false
		for _, node := range nodes {
			schedules[node].Wave = i
			if schedules[node].IsCritical {
				hasCritical = true
			}
		}

		// Critical tasks first within a wave, then id order.
		sort.SliceStable(nodes, func(a, b int) bool {
			ac, bc := schedules[nodes[a]].IsCritical, schedules[nodes[b]].IsCritical
			if ac != bc {
				return ac
			}
			return g.ID(nodes[a]) < g.ID(nodes[b])
		})

		ids := make([]string, len(nodes))
		for j, node := range nodes {
			ids[j] = g.ID(node)
		}

		waves[i] = Wave{
			Index:      i,
			TaskIDs:    ids,
			IsCritical: hasCritical,
		}
	}

	return waves
}
