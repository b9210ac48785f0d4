package labyrinth

import (
	"github.com/pkg/errors"
)

// MaxGraphNodes caps VisibilityGraph; the edge check is quadratic in nodes.
const MaxGraphNodes = 1000

// ErrGraphTooLarge is returned by VisibilityGraph above MaxGraphNodes nodes.
var ErrGraphTooLarge = errors.New("too many nodes for a visibility graph")

// VisibilityGraph materialises the graph the search walks implicitly: start,
// end and every distinct wall endpoint, joined wherever the leg between two of
// them is clear. Search never needs it; it exists for drawing.
func (p *Planner) VisibilityGraph(start, end Point) (*Graph, error) {
	graph := &Graph{
		Nodes: make(map[int]Point),
		Edges: make(map[int][]Edge),
	}

	// Track vertex to node index mapping
	vertexToIdx := make(map[Point]int)
	addVertex := func(vertex Point) {
		// Skip if vertex is already added (e.g., shared wall corners)
		if _, exists := vertexToIdx[vertex]; exists {
			return
		}
		idx := len(graph.Nodes)
		graph.Nodes[idx] = vertex
		vertexToIdx[vertex] = idx
	}

	addVertex(start)
	addVertex(end)
	for _, wall := range p.walls {
		addVertex(wall.P1)
		addVertex(wall.P2)
	}

	totalNodes := len(graph.Nodes)
	if totalNodes > MaxGraphNodes {
		return nil, errors.Wrapf(ErrGraphTooLarge, "%d nodes (limit %d)", totalNodes, MaxGraphNodes)
	}

	// Build edges: connect nodes that have line-of-sight
	edgesAdded := 0
	for i := 0; i < totalNodes; i++ {
		for j := i + 1; j < totalNodes; j++ {
			nodeI, nodeJ := graph.Nodes[i], graph.Nodes[j]
			if !p.IsClear(nodeI, nodeJ) {
				continue
			}

			distance := nodeI.Distance(nodeJ)

			// Add bidirectional edge
			graph.Edges[i] = append(graph.Edges[i], Edge{To: j, Cost: distance})
			graph.Edges[j] = append(graph.Edges[j], Edge{To: i, Cost: distance})
			edgesAdded++
		}
	}

	p.logf("   Visibility graph: %d nodes, %d edges", totalNodes, edgesAdded)

	return graph, nil
}
