// Package element provides the element arena: generational handles, per-slot
// metadata tables, and the intrusive parent/child/sibling hierarchy shared by
// every system that refers to UI nodes.
//
// # Handles
//
// An [ID] is a {index, generation} pair. Index 0 is reserved as the null
// handle. Destroying an element bumps the generation stored in its slot, so
// every handle issued before the destroy stops reporting [Arena.IsAlive]
// even when the index is later handed to a new element:
//
//	a := element.NewArena(element.Config{})
//	id := a.CreateElement(nil, 0, element.FlagEnabled)
//	a.DestroyElement(id, true)
//	a.IsAlive(id) // false
//
// Freed indices are only reused once the free queue holds at least
// [Config.ReuseThreshold] entries, which keeps recently freed slots fallow
// for a while and slows generation wrap-around.
//
// # Hierarchy
//
// Children form a doubly linked sibling list hanging off the parent's
// first/last child links. [Arena.AddChild], [Arena.RemoveChild] and
// [Arena.UnlinkFromParent] are O(1).
//
// # Frame phases
//
// Mutations are single-writer. A parallel read phase may inspect the tables
// from many goroutines once bracketed by [Arena.BeginRead] and
// [Arena.EndRead]; in debug mode any mutation during that window fails an
// invariant assertion. Mutating operations do not validate handle
// generations: callers check IsAlive first.
package element
