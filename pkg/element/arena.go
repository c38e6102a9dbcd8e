package element

import (
	"sync/atomic"

	"github.com/go-drift/uitree/pkg/errors"
)

const (
	// DefaultInitialCapacity is the slot capacity used when Config leaves it unset.
	DefaultInitialCapacity = 256
	// DefaultReuseThreshold is the minimum number of queued free indices before
	// CreateElement starts reusing them.
	DefaultReuseThreshold = 1024
)

// Config controls arena sizing.
type Config struct {
	// InitialCapacity is the number of slots allocated up front.
	InitialCapacity int
	// ReuseThreshold is how many freed indices must be queued before reuse starts.
	// A negative value disables batching and reuses any freed index immediately.
	ReuseThreshold int
}

func (c Config) withDefaults() Config {
	if c.InitialCapacity <= 1 {
		c.InitialCapacity = DefaultInitialCapacity
	}
	if c.ReuseThreshold == 0 {
		c.ReuseThreshold = DefaultReuseThreshold
	}
	if c.ReuseThreshold < 0 {
		c.ReuseThreshold = 1
	}
	return c
}

// Arena owns element slots, handle validity, and hierarchy links.
//
// All tables are indexed by ID.Index and grow together by doubling.
type Arena struct {
	meta      []MetaInfo
	hierarchy []HierarchyInfo
	traversal []TraversalInfo
	owners    []any

	free           indexQueue
	idGenerator    uint32
	reuseThreshold int
	live           int

	enabledThisFrame  []ID
	disabledThisFrame []ID

	readers atomic.Int32
}

// NewArena creates an arena with the given configuration.
func NewArena(cfg Config) *Arena {
	cfg = cfg.withDefaults()
	a := &Arena{
		idGenerator:    1, // 0 is always invalid
		reuseThreshold: cfg.ReuseThreshold,
		free:           newIndexQueue(cfg.ReuseThreshold * 2),
	}
	a.resize(cfg.InitialCapacity)
	return a
}

// Capacity returns the number of allocated slots, including the reserved null slot.
func (a *Arena) Capacity() int {
	return len(a.meta)
}

// LiveCount returns the number of elements created and not yet destroyed.
func (a *Arena) LiveCount() int {
	return a.live
}

// ReuseThreshold returns the configured free-queue reuse threshold.
func (a *Arena) ReuseThreshold() int {
	return a.reuseThreshold
}

// CreateElement allocates a slot for owner and returns its handle.
func (a *Arena) CreateElement(owner any, depth int, flags Flags) ID {
	a.AssertWritable("element.CreateElement")

	var idx uint32
	if a.free.Len() >= a.reuseThreshold {
		idx = a.free.Dequeue()
	} else {
		idx = a.idGenerator
		a.idGenerator++
		if int(idx) >= len(a.meta) {
			a.resize(len(a.meta) * 2)
		}
	}

	// the generation carries over from the slot's previous occupant
	a.meta[idx].Flags = flags
	a.traversal[idx] = TraversalInfo{Depth: depth}
	a.hierarchy[idx] = HierarchyInfo{}
	a.owners[idx] = owner
	a.live++

	return ID{Index: idx, Generation: a.meta[idx].Generation}
}

// DestroyElement invalidates id and queues its index for reuse.
func (a *Arena) DestroyElement(id ID, unlinkFromParent bool) {
	a.AssertWritable("element.DestroyElement")
	errors.Assert(!id.IsNull(), "destroy of null element")

	if unlinkFromParent {
		a.UnlinkFromParent(id)
	}
	a.meta[id.Index].Generation++
	a.owners[id.Index] = nil
	a.free.Enqueue(id.Index)
	a.live--
}

// IsAlive reports whether id still refers to the element it was issued for.
func (a *Arena) IsAlive(id ID) bool {
	if id.Index == 0 || int(id.Index) >= len(a.meta) {
		return false
	}
	return a.meta[id.Index].Generation == id.Generation
}

// IsEnabled reports whether id is alive and carries every bit of EnabledFlagSet.
func (a *Arena) IsEnabled(id ID) bool {
	return a.IsAlive(id) && a.meta[id.Index].Flags&EnabledFlagSet == EnabledFlagSet
}

// IsDeadOrDisabled is the negation of IsEnabled.
func (a *Arena) IsDeadOrDisabled(id ID) bool {
	return !a.IsEnabled(id)
}

// Meta returns the metadata record of id's slot.
func (a *Arena) Meta(id ID) MetaInfo {
	return a.meta[id.Index]
}

// Flags returns the flags of id's slot.
func (a *Arena) Flags(id ID) Flags {
	return a.meta[id.Index].Flags
}

// SetFlags replaces the flags of id's slot.
func (a *Arena) SetFlags(id ID, flags Flags) {
	a.AssertWritable("element.SetFlags")
	a.meta[id.Index].Flags = flags
}

// Owner returns the instance reference recorded at creation.
func (a *Arena) Owner(id ID) any {
	return a.owners[id.Index]
}

// Traversal returns the traversal record of id's slot.
func (a *Arena) Traversal(id ID) TraversalInfo {
	return a.traversal[id.Index]
}

// SetTraversal stores values computed by an external traversal pass.
func (a *Arena) SetTraversal(id ID, info TraversalInfo) {
	a.AssertWritable("element.SetTraversal")
	a.traversal[id.Index] = info
}

// IsLaterInHierarchy reports whether first comes after second in front-to-back order.
func (a *Arena) IsLaterInHierarchy(first, second ID) bool {
	return a.traversal[first.Index].FTBIndex > a.traversal[second.Index].FTBIndex
}

// IsAncestorOf reports whether ancestor lies strictly above descendant
// according to the last traversal pass.
func (a *Arena) IsAncestorOf(ancestor, descendant ID) bool {
	return a.traversal[ancestor.Index].IsAncestorOf(a.traversal[descendant.Index])
}

// Reset clears every slot and counter while keeping the allocated tables.
func (a *Arena) Reset() {
	a.AssertWritable("element.Reset")
	a.idGenerator = 1
	a.live = 0
	a.free.Clear()
	a.enabledThisFrame = a.enabledThisFrame[:0]
	a.disabledThisFrame = a.disabledThisFrame[:0]
	clear(a.meta)
	clear(a.hierarchy)
	clear(a.traversal)
	clear(a.owners)
}

// RemoveDeadElements compacts buf in place by swap-removing handles that are
// no longer alive and returns the shortened slice. Order is not preserved.
func (a *Arena) RemoveDeadElements(buf []ID) []ID {
	size := len(buf)
	for i := 0; i < size; i++ {
		if !a.IsAlive(buf[i]) {
			size--
			buf[i] = buf[size]
			i--
		}
	}
	return buf[:size]
}

func (a *Arena) resize(capacity int) {
	errors.Assert(a.readers.Load() == 0, "arena resize during read phase")
	if capacity <= len(a.meta) {
		return
	}
	a.meta = grow(a.meta, capacity)
	a.hierarchy = grow(a.hierarchy, capacity)
	a.traversal = grow(a.traversal, capacity)
	a.owners = grow(a.owners, capacity)
}

func grow[T any](s []T, capacity int) []T {
	next := make([]T, capacity)
	copy(next, s)
	return next
}

// BeginRead marks the start of a read-only phase. Every BeginRead must be
// paired with EndRead.
func (a *Arena) BeginRead() {
	a.readers.Add(1)
}

// EndRead marks the end of a read-only phase.
func (a *Arena) EndRead() {
	n := a.readers.Add(-1)
	errors.Assert(n >= 0, "EndRead without matching BeginRead")
}

// InReadPhase reports whether a read-only phase is in flight.
func (a *Arena) InReadPhase() bool {
	return a.readers.Load() > 0
}

// AssertWritable fails a debug assertion when a read phase is in flight.
// Systems layered on the arena call it before mutating their own state.
func (a *Arena) AssertWritable(op string) {
	errors.Assert(a.readers.Load() == 0, "%s during read phase", op)
}
