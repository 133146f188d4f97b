// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// merge.go - disjoint-set merge engine and compact renumbering.
//
// Contract:
//   • parent is keyed by VertexID (no pointer-linked nodes); roots map to
//     themselves. The representative of a set is its smallest member.
//   • Until a numbering is committed, apply is a full recompute: roots are
//     gathered from every vertex ever registered, sorted ascending and
//     numbered 0..n-1.
//   • Once Compress has consumed merged data the numbering is committed:
//     every set keeps the smallest final ID any of its members already had,
//     and sets without one are numbered after the largest ID, ascending by
//     root. Compressed rows and columns are never renumbered.
//   • Pending pairs rewritten by an earlier apply live in that apply's final
//     ID space; they are translated old-final → new-final. Unions never
//     split sets, so the translation is well defined.
//
// Complexity: AddVertexGroup O(k·α(n)); apply O(P + n log n) for P pending
// pairs and n registered vertices.

package csr

import "slices"

// mergeEngine owns union-find state and the latest final numbering.
type mergeEngine[V VertexID] struct {
	parent   map[V]V
	final    map[V]V // representative -> final ID
	assigned map[V]V // registered vertex -> final ID at the last apply

	grouped   bool // at least one group declared
	dirty     bool // groups declared since the last apply
	committed bool // final IDs of assigned are used by compressed data
}

func newMergeEngine[V VertexID]() mergeEngine[V] {
	return mergeEngine[V]{parent: make(map[V]V)}
}

// addGroup unions every member with the first one.
func (e *mergeEngine[V]) addGroup(vertices []V) {
	if len(vertices) == 0 {
		return
	}
	for _, v := range vertices {
		e.find(v)
	}
	for _, v := range vertices[1:] {
		e.union(vertices[0], v)
	}
	e.grouped, e.dirty = true, true
}

// find returns the representative of v, registering v as a singleton when
// it has not been seen before. Paths are compressed.
func (e *mergeEngine[V]) find(v V) V {
	if _, ok := e.parent[v]; !ok {
		e.parent[v] = v
		return v
	}

	return e.compress(v)
}

// lookup is find without registration.
func (e *mergeEngine[V]) lookup(v V) (V, bool) {
	if _, ok := e.parent[v]; !ok {
		return v, false
	}

	return e.compress(v), true
}

func (e *mergeEngine[V]) compress(v V) V {
	root := v
	for e.parent[root] != root {
		root = e.parent[root]
	}
	for v != root {
		next := e.parent[v]
		e.parent[v] = root
		v = next
	}

	return root
}

func (e *mergeEngine[V]) union(a, b V) {
	ra, rb := e.find(a), e.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		e.parent[rb] = ra
	} else {
		e.parent[ra] = rb
	}
}

// finalID resolves v through the latest numbering. Vertices never merged
// or renumbered map to themselves.
func (e *mergeEngine[V]) finalID(v V) V {
	root, ok := e.lookup(v)
	if !ok {
		return v
	}
	if id, ok := e.final[root]; ok {
		return id
	}

	return v
}

// apply renumbers all registered vertices and rewrites pending pairs in
// place. Entries [0, remapped) were rewritten by a previous apply. It
// returns one more than the largest final ID, which is the number of
// distinct final vertices unless committed IDs were merged together.
func (e *mergeEngine[V]) apply(pending *coordinates[V], remapped int, permitSelf bool) int {
	for k := remapped; k < pending.size(); k++ {
		e.find(pending.rows[k])
		e.find(pending.cols[k])
	}

	vertices := make([]V, 0, len(e.parent))
	for v := range e.parent {
		vertices = append(vertices, v)
	}

	final := make(map[V]V, len(vertices))
	var next V
	if e.committed {
		for v, id := range e.assigned {
			r := e.find(v)
			if cur, ok := final[r]; !ok || id < cur {
				final[r] = id
			}
			next = max(next, id+1)
		}
	}

	roots := make([]V, 0, len(vertices))
	for _, v := range vertices {
		if e.find(v) != v {
			continue
		}
		if _, ok := final[v]; !ok {
			roots = append(roots, v)
		}
	}
	slices.Sort(roots)
	for _, r := range roots {
		final[r] = next
		next++
	}

	// old final ID -> new final ID, for pairs rewritten by the last apply.
	translate := make(map[V]V, len(e.assigned))
	for v, old := range e.assigned {
		translate[old] = final[e.find(v)]
	}

	for k := 0; k < pending.size(); k++ {
		if k < remapped {
			pending.rows[k] = translate[pending.rows[k]]
			pending.cols[k] = translate[pending.cols[k]]
			continue
		}
		pending.rows[k] = final[e.find(pending.rows[k])]
		pending.cols[k] = final[e.find(pending.cols[k])]
	}

	assigned := make(map[V]V, len(vertices))
	for _, v := range vertices {
		assigned[v] = final[e.find(v)]
	}

	if !permitSelf {
		dropSelfConnections(pending)
	}
	pending.recomputeBounds()

	e.final, e.assigned, e.dirty = final, assigned, false

	return int(next)
}

// commit freezes the current numbering once compressed data refers to it.
func (e *mergeEngine[V]) commit() {
	if e.assigned != nil {
		e.committed = true
	}
}

// dropSelfConnections compacts pending in place, removing v->v pairs.
func dropSelfConnections[V VertexID](pending *coordinates[V]) {
	w := 0
	for r := range pending.rows {
		if pending.rows[r] == pending.cols[r] {
			continue
		}
		pending.rows[w], pending.cols[w] = pending.rows[r], pending.cols[r]
		w++
	}
	pending.rows = pending.rows[:w]
	pending.cols = pending.cols[:w]
}
