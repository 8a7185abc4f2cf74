// File: methods_links.go
// Role: Link lifecycle & queries: AddLink/HasLink/Links/LinksFrom/LinkCount.
// Determinism:
//   - Links() and LinksFrom() return links in insertion order.
//   - nextLinkID() is monotonic and stable ("l" + decimal).
// Concurrency:
//   - Mutations under muLink write lock.
//   - Read queries under muLink read lock.

package wiring

import (
	"cmp"
	"fmt"
	"strconv"
	"sync/atomic"

	"golang.org/x/exp/slices"
)

// linkIDPrefix is the textual prefix of link identifiers ("l1", "l2", ...).
const linkIDPrefix = 'l'

// AddLink connects two registered switches with a directed link.
//
// Steps:
//  1. Validate IDs and reject self-links.
//  2. Require both endpoints to be registered (links never create switches).
//  3. Lock muLink, check the parallel-link constraint.
//  4. Generate the link ID atomically, store and index it.
//
// Errors: ErrEmptySwitchID, ErrSelfLink, ErrSwitchNotFound, ErrLinkExists.
// Complexity: O(1) amortized.
func (g *Graph) AddLink(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptySwitchID
	}
	if from == to {
		return "", fmt.Errorf("AddLink(%s→%s): %w", from, to, ErrSelfLink)
	}
	for _, id := range [2]string{from, to} {
		if !g.HasSwitch(id) {
			return "", fmt.Errorf("AddLink(%s→%s): %s: %w", from, to, id, ErrSwitchNotFound)
		}
	}

	g.muLink.Lock()
	defer g.muLink.Unlock()

	if !g.allowParallel && len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("AddLink(%s→%s): %w", from, to, ErrLinkExists)
	}

	seq := atomic.AddUint64(&g.nextLinkID, 1)
	lid := nextLinkID(seq)
	g.links[lid] = &Link{ID: lid, From: from, To: to, seq: seq}

	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][lid] = struct{}{}

	return lid, nil
}

// HasLink reports whether at least one link from → to exists.
// Complexity: O(1).
func (g *Graph) HasLink(from, to string) bool {
	g.muLink.RLock()
	defer g.muLink.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Links returns copies of all links in insertion order.
// Complexity: O(L log L).
func (g *Graph) Links() []Link {
	g.muLink.RLock()
	out := make([]Link, 0, len(g.links))
	for _, l := range g.links {
		out = append(out, *l)
	}
	g.muLink.RUnlock()

	slices.SortFunc(out, func(a, b Link) int { return cmp.Compare(a.seq, b.seq) })
	return out
}

// LinksFrom returns the outgoing links of one switch in insertion order.
// Errors: ErrSwitchNotFound.
func (g *Graph) LinksFrom(id string) ([]Link, error) {
	if !g.HasSwitch(id) {
		return nil, fmt.Errorf("LinksFrom(%s): %w", id, ErrSwitchNotFound)
	}

	g.muLink.RLock()
	out := make([]Link, 0)
	for _, lids := range g.adjacency[id] {
		for lid := range lids {
			out = append(out, *g.links[lid])
		}
	}
	g.muLink.RUnlock()

	slices.SortFunc(out, func(a, b Link) int { return cmp.Compare(a.seq, b.seq) })
	return out, nil
}

// LinkCount returns the number of links.
// Complexity: O(1).
func (g *Graph) LinkCount() int {
	g.muLink.RLock()
	defer g.muLink.RUnlock()

	return len(g.links)
}

// nextLinkID renders a sequence number as a link identifier without fmt.
func nextLinkID(seq uint64) string {
	buf := make([]byte, 0, 8)
	buf = append(buf, linkIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)
	return string(buf)
}
