// Package traversal computes the ordering fields of element.TraversalInfo.
//
// The arena only stores and compares these values. Compute is the pass that
// fills them in after structural changes, during the mutation phase.
package traversal

import "github.com/go-drift/uitree/pkg/element"

// Options control which elements a pass visits.
type Options struct {
	// SkipDisabled leaves disabled subtrees out of the ordering.
	SkipDisabled bool
}

// Compute walks the subtree under root depth first and writes depth,
// front-to-back and back-to-front indices through Arena.SetTraversal.
// Numbering starts at 0 for root. ZIndex is preserved. It returns the number
// of elements visited.
func Compute(a *element.Arena, root element.ID, opts Options) int {
	return ComputeAll(a, []element.ID{root}, opts)
}

// ComputeAll numbers several roots as one sequence: front to back in the
// order given, back to front in reverse. Comparisons between elements of
// different roots are only meaningful when the roots were numbered by the
// same call. Dead roots are skipped.
func ComputeAll(a *element.Arena, roots []element.ID, opts Options) int {
	ftb := 0
	var forward func(id element.ID, depth int)
	forward = func(id element.ID, depth int) {
		info := a.Traversal(id)
		info.Depth = depth
		info.FTBIndex = ftb
		ftb++
		a.SetTraversal(id, info)
		for child := range a.Children(id) {
			if opts.SkipDisabled && !a.IsEnabled(child) {
				continue
			}
			forward(child, depth+1)
		}
	}

	btf := 0
	var backward func(id element.ID)
	backward = func(id element.ID) {
		info := a.Traversal(id)
		info.BTFIndex = btf
		btf++
		a.SetTraversal(id, info)
		for child := range a.ChildrenReverse(id) {
			if opts.SkipDisabled && !a.IsEnabled(child) {
				continue
			}
			backward(child)
		}
	}

	for _, root := range roots {
		if a.IsAlive(root) {
			forward(root, a.Traversal(root).Depth)
		}
	}
	for i := len(roots) - 1; i >= 0; i-- {
		if a.IsAlive(roots[i]) {
			backward(roots[i])
		}
	}
	return ftb
}

// Order returns the elements under root in front-to-back order.
func Order(a *element.Arena, root element.ID) []element.ID {
	var out []element.ID
	var walk func(id element.ID)
	walk = func(id element.ID) {
		out = append(out, id)
		for child := range a.Children(id) {
			walk(child)
		}
	}
	if a.IsAlive(root) {
		walk(root)
	}
	return out
}
