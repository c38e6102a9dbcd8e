package element

import (
	"fmt"
	"iter"

	"github.com/go-drift/uitree/pkg/errors"
)

// Hierarchy returns a copy of id's tree links.
func (a *Arena) Hierarchy(id ID) HierarchyInfo {
	return a.hierarchy[id.Index]
}

// Parent returns id's parent, or Null for a root.
func (a *Arena) Parent(id ID) ID {
	return a.hierarchy[id.Index].Parent
}

// ChildCount returns the number of direct children of id.
func (a *Arena) ChildCount(id ID) int {
	return a.hierarchy[id.Index].ChildCount
}

// SetViewID assigns the view a root element belongs to. Children pick up
// their parent's view in AddChild.
func (a *Arena) SetViewID(id ID, viewID int) {
	a.AssertWritable("element.SetViewID")
	a.hierarchy[id.Index].ViewID = viewID
}

// AddChild appends child to the end of parent's child list.
// The child must not currently have a parent.
func (a *Arena) AddChild(parentID, childID ID) {
	a.AssertWritable("element.AddChild")

	parent := &a.hierarchy[parentID.Index]
	child := &a.hierarchy[childID.Index]
	errors.Assert(child.Parent.IsNull(), "AddChild: %v already has parent %v", childID, child.Parent)

	child.Parent = parentID
	child.ViewID = parent.ViewID
	child.NextSibling = Null

	if parent.ChildCount == 0 {
		parent.FirstChild = childID
		parent.LastChild = childID
		child.PrevSibling = Null
	} else {
		a.hierarchy[parent.LastChild.Index].NextSibling = childID
		child.PrevSibling = parent.LastChild
		parent.LastChild = childID
	}

	parent.ChildCount++
}

// RemoveChild unlinks child from parent. It does nothing when child's recorded
// parent is not parent, which tolerates overlapping cleanup paths.
func (a *Arena) RemoveChild(parentID, childID ID) {
	a.AssertWritable("element.RemoveChild")
	if a.hierarchy[childID.Index].Parent != parentID {
		return
	}
	a.unlink(parentID, childID)
}

// UnlinkFromParent removes id from whatever parent it is recorded under.
func (a *Arena) UnlinkFromParent(id ID) {
	a.AssertWritable("element.UnlinkFromParent")
	parentID := a.hierarchy[id.Index].Parent
	if parentID.IsNull() {
		return
	}
	a.unlink(parentID, id)
}

func (a *Arena) unlink(parentID, childID ID) {
	parent := &a.hierarchy[parentID.Index]
	child := &a.hierarchy[childID.Index]

	if parent.FirstChild == childID {
		parent.FirstChild = child.NextSibling
	}
	if parent.LastChild == childID {
		parent.LastChild = child.PrevSibling
	}
	if !child.PrevSibling.IsNull() {
		a.hierarchy[child.PrevSibling.Index].NextSibling = child.NextSibling
	}
	if !child.NextSibling.IsNull() {
		a.hierarchy[child.NextSibling.Index].PrevSibling = child.PrevSibling
	}

	child.Parent = Null
	child.PrevSibling = Null
	child.NextSibling = Null
	parent.ChildCount--
	errors.Assert(parent.ChildCount >= 0, "negative child count on %v", parentID)
}

// Children iterates id's children first to last.
func (a *Arena) Children(id ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for ptr := a.hierarchy[id.Index].FirstChild; !ptr.IsNull(); ptr = a.hierarchy[ptr.Index].NextSibling {
			if !yield(ptr) {
				return
			}
		}
	}
}

// ChildrenReverse iterates id's children last to first.
func (a *Arena) ChildrenReverse(id ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for ptr := a.hierarchy[id.Index].LastChild; !ptr.IsNull(); ptr = a.hierarchy[ptr.Index].PrevSibling {
			if !yield(ptr) {
				return
			}
		}
	}
}

// Ancestors iterates from id's parent up to the root.
func (a *Arena) Ancestors(id ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for ptr := a.hierarchy[id.Index].Parent; !ptr.IsNull(); ptr = a.hierarchy[ptr.Index].Parent {
			if !yield(ptr) {
				return
			}
		}
	}
}

// FindFirstEnabledChild returns the first enabled child of id, or Null.
func (a *Arena) FindFirstEnabledChild(id ID) ID {
	for child := range a.Children(id) {
		if a.IsEnabled(child) {
			return child
		}
	}
	return Null
}

// FindLastEnabledChild returns the last enabled child of id, or Null.
func (a *Arena) FindLastEnabledChild(id ID) ID {
	for child := range a.ChildrenReverse(id) {
		if a.IsEnabled(child) {
			return child
		}
	}
	return Null
}

// Validate checks the sibling-chain invariants of id's child list.
func (a *Arena) Validate(id ID) error {
	h := a.hierarchy[id.Index]
	if h.ChildCount < 0 {
		return fmt.Errorf("element %v: negative child count %d", id, h.ChildCount)
	}
	if (h.ChildCount == 0) != h.FirstChild.IsNull() || (h.ChildCount == 0) != h.LastChild.IsNull() {
		return fmt.Errorf("element %v: child count %d disagrees with first=%v last=%v", id, h.ChildCount, h.FirstChild, h.LastChild)
	}

	forward := make([]ID, 0, h.ChildCount)
	prev := Null
	for ptr := h.FirstChild; !ptr.IsNull(); ptr = a.hierarchy[ptr.Index].NextSibling {
		if len(forward) > h.ChildCount {
			return fmt.Errorf("element %v: sibling chain longer than child count %d", id, h.ChildCount)
		}
		c := a.hierarchy[ptr.Index]
		if c.Parent != id {
			return fmt.Errorf("element %v: child %v records parent %v", id, ptr, c.Parent)
		}
		if c.PrevSibling != prev {
			return fmt.Errorf("element %v: child %v prev=%v, want %v", id, ptr, c.PrevSibling, prev)
		}
		forward = append(forward, ptr)
		prev = ptr
	}
	if len(forward) != h.ChildCount {
		return fmt.Errorf("element %v: sibling chain visits %d nodes, child count %d", id, len(forward), h.ChildCount)
	}
	if prev != h.LastChild {
		return fmt.Errorf("element %v: chain ends at %v, last child %v", id, prev, h.LastChild)
	}

	i := len(forward) - 1
	for ptr := range a.ChildrenReverse(id) {
		if i < 0 || forward[i] != ptr {
			return fmt.Errorf("element %v: reverse chain diverges at %v", id, ptr)
		}
		i--
	}
	return nil
}

// ValidateTree runs Validate over id and every descendant.
func (a *Arena) ValidateTree(id ID) error {
	if err := a.Validate(id); err != nil {
		return err
	}
	for child := range a.Children(id) {
		if err := a.ValidateTree(child); err != nil {
			return err
		}
	}
	return nil
}
