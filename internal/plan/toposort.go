package plan

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"vrm-type-generator/internal/diagnostic"
)

var errCycle = errors.New("cycle detected")

// order sorts the roots so referenced declarations come first, keeping
// first-seen order wherever dependencies allow.
func (r *Resolver) order() error {
	index := make(map[string]int, len(r.roots))
	for i, rt := range r.roots {
		index[rt.decl.QualifiedName().Root()] = i
	}

	deps := make([][]int, len(r.roots))

	for i, rt := range r.roots {
		for _, name := range rt.deps {
			j, ok := index[name]
			if !ok {
				return &diagnostic.UnresolvedReferenceError{
					Location: diagnostic.Location{Version: r.catalog.Version, File: rt.file, Ref: name},
					Reason:   "no emitting schema declares " + name,
				}
			}

			if !slices.Contains(deps[i], j) {
				deps[i] = append(deps[i], j)
			}
		}
	}

	order, err := topoSort(len(r.roots), func(i int) []int { return deps[i] })
	if err != nil {
		var names []string

		for i, rt := range r.roots {
			if !slices.Contains(order, i) {
				names = append(names, rt.decl.QualifiedName().String())
			}
		}

		return &diagnostic.CyclicReferenceError{
			Location: diagnostic.Location{Version: r.catalog.Version},
			Names:    names,
		}
	}

	for _, i := range order {
		r.unit.Decls = append(r.unit.Decls, r.roots[i].decl)
	}

	return nil
}

// topoSort returns indices in dependency order.
//
// Nodes are by index. depsFn(i) yields indices that must come before i.
//
// The result is deterministic: when multiple nodes are available, the
// smallest index is picked. On a cycle the partial order is returned along
// with an error.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return order, errCycle
	}

	return order, nil
}
