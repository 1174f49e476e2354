package graph

import "sort"

// Build constructs a validated Graph from a flat task list. It fails with a
// typed error if a dependency references an unknown id, a task id appears
// twice, a duration is negative, or the dependency edges contain a cycle.
// All validation happens here, before any scheduling pass runs.
func Build(tasks []Task) (*Graph, error) {
	g := &Graph{
		Tasks: append([]Task(nil), tasks...),
		Index: make(map[string]int, len(tasks)),
	}

	for i, t := range g.Tasks {
		if _, dup := g.Index[t.ID]; dup {
			return nil, &DuplicateTaskError{TaskID: t.ID}
		}
		if t.Duration < 0 {
			return nil, &InvalidDurationError{TaskID: t.ID, Duration: t.Duration}
		}
		g.Index[t.ID] = i
	}

	g.Preds = make([][]int, len(g.Tasks))
	g.Succs = make([][]int, len(g.Tasks))

	// Dedupe edges so a dependency listed twice yields one edge.
	edgeSet := make(map[[2]int]bool)
	addEdge := func(from, to int) {
		key := [2]int{from, to}
		if edgeSet[key] {
			return
		}
		edgeSet[key] = true
		g.Succs[from] = append(g.Succs[from], to)
		g.Preds[to] = append(g.Preds[to], from)
	}

	for i, t := range g.Tasks {
		for _, ref := range t.DependsOn {
			j, ok := g.Index[ref]
			if !ok {
				return nil, &UnknownDependencyError{TaskID: t.ID, Ref: ref}
			}
			addEdge(j, i)
		}
	}

	// Sort adjacency lists by task id for deterministic traversal.
	for n := range g.Tasks {
		g.sortByID(g.Preds[n])
		g.sortByID(g.Succs[n])
	}

	for n := range g.Tasks {
		if len(g.Preds[n]) == 0 {
			g.Roots = append(g.Roots, n)
		}
		if len(g.Succs[n]) == 0 {
			g.Leaves = append(g.Leaves, n)
		}
	}
	g.sortByID(g.Roots)
	g.sortByID(g.Leaves)

	order, ok := g.topoOrder()
	if !ok {
		return nil, &CyclicDependencyError{Cycle: g.findCycle()}
	}
	g.Order = order

	return g, nil
}

// topoOrder runs Kahn's algorithm: in-degree counters plus a ready-queue of
// nodes whose predecessors are all resolved. The queue is kept id-sorted for
// determinism. Returns ok=false when the queue empties before every node is
// visited, which means a cycle is present.
func (g *Graph) topoOrder() ([]int, bool) {
	inDegree := make([]int, len(g.Tasks))
	for n := range g.Tasks {
		inDegree[n] = len(g.Preds[n])
	}

	queue := append([]int(nil), g.Roots...)

	order := make([]int, 0, len(g.Tasks))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var ready []int
		for _, succ := range g.Succs[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
		g.sortByID(ready)
		queue = append(queue, ready...)
	}

	return order, len(order) == len(g.Tasks)
}

// findCycle reconstructs one dependency cycle for error reporting.
// DFS with coloring: white (unvisited), gray (in progress), black (done).
// The walk is bounded by node count, so even adversarial input cannot
// recurse past the number of tasks.
func (g *Graph) findCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make([]int, len(g.Tasks))
	parent := make([]int, len(g.Tasks))
	for i := range parent {
		parent[i] = -1
	}

	var dfs func(node int) []string
	dfs = func(node int) []string {
		color[node] = gray
		for _, next := range g.Succs[node] {
			if color[next] == gray {
				// Found a back edge — walk parents to reconstruct the cycle.
				cycle := []int{node}
				for cur := node; cur != next; {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				ids := make([]string, 0, len(cycle)+1)
				for i := len(cycle) - 1; i >= 0; i-- {
					ids = append(ids, g.ID(cycle[i]))
				}
				return append(ids, g.ID(next))
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	starts := make([]int, 0, len(g.Tasks))
	for n := range g.Tasks {
		starts = append(starts, n)
	}
	g.sortByID(starts)

	for _, n := range starts {
		if color[n] == white {
			if cycle := dfs(n); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

func (g *Graph) sortByID(nodes []int) {
	sort.Slice(nodes, func(a, b int) bool {
		return g.ID(nodes[a]) < g.ID(nodes[b])
	})
}
