package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// SetMeta stores value under key on vertex id.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(1).
func (g *Graph) SetMeta(id, key string, value interface{}) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Metadata[key] = value

	return nil
}

// Meta returns the value stored under key on vertex id.
// Complexity: O(1).
func (g *Graph) Meta(id, key string) (interface{}, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, false
	}
	val, ok := v.Metadata[key]

	return val, ok
}

// AddEdge connects from and to, creating missing endpoints, and returns the
// new Edge.ID. Undirected edges are mirrored in the adjacency.
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}
	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}

	g.adjacency[from][to] = eid
	if !g.directed {
		g.adjacency[to][from] = eid
	}

	return eid, nil
}

// HasEdge reports whether an edge from→to exists (either way if undirected).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the IDs reachable from id in one hop, sorted ascending.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID) // e2 before e10
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports the directedness of new edges.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
