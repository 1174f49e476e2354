package graph

// Task is one schedulable unit supplied by the caller. Tasks are treated as
// immutable for the duration of a calculation.
type Task struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Duration  float64  `json:"duration" yaml:"duration"` // working days
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// Graph is a validated directed acyclic graph of tasks. Nodes live in an
// integer-indexed arena; adjacency lists and the traversal order hold arena
// indices, with a single id -> index map for lookups at the API boundary.
type Graph struct {
	Tasks []Task         // arena; position is the node index
	Index map[string]int // task id -> arena index

	Preds [][]int // node -> nodes it depends on
	Succs [][]int // node -> nodes that depend on it

	Order  []int // topological order over arena indices
	Roots  []int // nodes with no predecessors
	Leaves []int // nodes with no successors
}

// TaskCount returns the number of tasks in the graph.
func (g *Graph) TaskCount() int {
	return len(g.Tasks)
}

// ID returns the task id for an arena index.
func (g *Graph) ID(node int) string {
	return g.Tasks[node].ID
}

// Duration returns the working-day duration for an arena index.
func (g *Graph) Duration(node int) float64 {
	return g.Tasks[node].Duration
}
