package element

// MetaInfo is the per-slot liveness record.
type MetaInfo struct {
	Generation uint32
	Flags      Flags
}

// HierarchyInfo holds the intrusive tree links of one slot.
//
// FirstChild and LastChild are Null iff ChildCount is zero. Walking NextSibling
// from FirstChild visits exactly ChildCount nodes and ends at LastChild;
// walking PrevSibling from LastChild visits the same nodes in reverse.
type HierarchyInfo struct {
	Parent      ID
	FirstChild  ID
	LastChild   ID
	PrevSibling ID
	NextSibling ID
	ChildCount  int
	ViewID      int
}

// TraversalInfo holds ordering values computed by an external traversal pass.
// FTBIndex is the front-to-back (pre-order) position; BTFIndex is the pre-order
// position when children are visited last-to-first.
type TraversalInfo struct {
	Depth    int
	FTBIndex int
	BTFIndex int
	ZIndex   int
}

// IsDescendantOf reports whether t lies strictly below other.
func (t TraversalInfo) IsDescendantOf(other TraversalInfo) bool {
	return t.FTBIndex > other.FTBIndex && t.BTFIndex > other.BTFIndex
}

// IsAncestorOf reports whether t lies strictly above other.
func (t TraversalInfo) IsAncestorOf(other TraversalInfo) bool {
	return t.FTBIndex < other.FTBIndex && t.BTFIndex < other.BTFIndex
}

// IsParentOf reports whether t is the direct parent of other.
func (t TraversalInfo) IsParentOf(other TraversalInfo) bool {
	return other.Depth == t.Depth+1 && t.IsAncestorOf(other)
}

// IsChildOf reports whether t is a direct child of other.
func (t TraversalInfo) IsChildOf(other TraversalInfo) bool {
	return t.Depth == other.Depth+1 && t.IsDescendantOf(other)
}

// IsLaterInHierarchy reports whether t comes after other in front-to-back order.
func (t TraversalInfo) IsLaterInHierarchy(other TraversalInfo) bool {
	return t.FTBIndex > other.FTBIndex
}
