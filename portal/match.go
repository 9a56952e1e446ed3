package portal

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/cubenet/facenet"
)

// Sentinel errors for edge matching.
var (
	// ErrNilNet is returned for a nil net.
	ErrNilNet = errors.New("portal: net is nil")

	// ErrUnmatchedEdge is returned when a boundary edge has no partner.
	ErrUnmatchedEdge = errors.New("portal: boundary edge has no partner")

	// ErrAmbiguousEdge is returned when a boundary edge has several partners.
	ErrAmbiguousEdge = errors.New("portal: boundary edge has several partners")
)

// Count is the number of portals of a cube net: seven glued edge pairs,
// each crossable both ways.
const Count = 14

// edgeKey is the ordered pair of corner keys of an edge.
type edgeKey[K comparable] struct{ from, to K }

// Match pairs every boundary edge A→B of n with the boundary edge C→D
// satisfying key(A) = key(D) and key(B) = key(C), and returns the portal of
// each pair followed by its inverse, ordered by the lower edge id.
// Returns ErrNilNet, ErrUnmatchedEdge or ErrAmbiguousEdge; no partial set is
// returned on failure.
// Complexity: O(E) for E boundary edges.
func Match[K comparable](n *facenet.Net, key func(facenet.CornerID) K) ([]Portal, error) {
	if n == nil {
		return nil, ErrNilNet
	}
	boundary := n.BoundaryEdges()
	byKey := make(map[edgeKey[K]][]facenet.EdgeID, len(boundary))
	for _, id := range boundary {
		e := n.Edges[id]
		k := edgeKey[K]{key(e.From), key(e.To)}
		byKey[k] = append(byKey[k], id)
	}

	out := make([]Portal, 0, len(boundary))
	done := mapset.New[facenet.EdgeID]()
	for _, id := range boundary {
		if done.Has(id) {
			continue
		}
		e := n.Edges[id]
		var partners []facenet.EdgeID
		for _, cand := range byKey[edgeKey[K]{key(e.To), key(e.From)}] {
			if cand != id {
				partners = append(partners, cand)
			}
		}
		switch {
		case len(partners) == 0:
			return nil, fmt.Errorf("%w: %s", ErrUnmatchedEdge, describe(n, id))
		case len(partners) > 1:
			return nil, fmt.Errorf("%w: %s has %d", ErrAmbiguousEdge, describe(n, id), len(partners))
		}
		mate := partners[0]
		if done.Has(mate) {
			return nil, fmt.Errorf("%w: %s", ErrAmbiguousEdge, describe(n, mate))
		}
		done.Put(id)
		done.Put(mate)

		p := bridge(n, e, n.Edges[mate])
		out = append(out, p, p.Inverse())
	}

	return out, nil
}

// bridge builds the portal leaving across e1 and entering across e2.
func bridge(n *facenet.Net, e1, e2 facenet.Edge) Portal {
	return Portal{
		EntranceStart:     n.CornerCell(e1.Face, e1.From),
		EntranceEnd:       n.CornerCell(e1.Face, e1.To),
		EntranceDirection: e1.Outward(),
		ExitStart:         n.CornerCell(e2.Face, e2.To),
		ExitEnd:           n.CornerCell(e2.Face, e2.From),
		ExitDirection:     e2.Inward(),
	}
}

// describe names an edge by its face and heading.
func describe(n *facenet.Net, id facenet.EdgeID) string {
	e := n.Edges[id]
	return fmt.Sprintf("edge %v of face %v", e.Heading, n.Faces[e.Face].Pos)
}

// SameSet reports whether a and b hold the same portals regardless of order.
func SameSet(a, b []Portal) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := mapset.New[Portal](), mapset.New[Portal]()
	for i := range a {
		sa.Put(a[i])
		sb.Put(b[i])
	}
	if sa.Size() != sb.Size() {
		return false
	}
	same := true
	sb.Each(func(p Portal) { same = same && sa.Has(p) })
	return same
}
