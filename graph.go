package labyrinth

// Graph is the visibility graph materialised for display
type Graph struct {
	Nodes map[int]Point
	Edges map[int][]Edge
}

// Edge represents a connection between two nodes with a cost
type Edge struct {
	To   int     // Index of the destination node
	Cost float64 // Euclidean distance
}

// NumEdges counts undirected edges.
func (g *Graph) NumEdges() int {
	n := 0
	for i, edges := range g.Edges {
		for _, edge := range edges {
			if i < edge.To {
				n++
			}
		}
	}
	return n
}

// Lines returns every undirected edge once, as a segment, ordered by node ID
func (g *Graph) Lines() []Segment {
	lines := make([]Segment, 0)
	for i := 0; i < len(g.Nodes); i++ {
		for _, edge := range g.Edges[i] {
			if i < edge.To {
				lines = append(lines, Segment{P1: g.Nodes[i], P2: g.Nodes[edge.To]})
			}
		}
	}
	return lines
}
