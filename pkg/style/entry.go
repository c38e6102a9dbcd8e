package style

import "cmp"

// Priority key layout, most significant first:
//
//	bit  63     source type (instance over shared)
//	bits 55-62  rule count, clamped to 255
//	bits 53-54  state rank (Active > Focused > Hover > Normal)
//	bits 24-52  container position, later containers win
//	bits  0-23  group position within its container, later groups win
const (
	typeShift      = 63
	ruleShift      = 55
	stateShift     = 53
	containerShift = 24

	maxRuleCount      = 0xFF
	maxContainerIndex = 1<<29 - 1
	maxGroupIndex     = 1<<24 - 1
)

func packPriority(t SourceType, ruleCount int, state State, containerIndex, groupIndex int) uint64 {
	var key uint64
	if t == SourceInstance {
		key |= 1 << typeShift
	}
	key |= uint64(min(max(ruleCount, 0), maxRuleCount)) << ruleShift
	key |= state.rank() << stateShift
	key |= uint64(min(containerIndex, maxContainerIndex)) << containerShift
	key |= uint64(min(groupIndex, maxGroupIndex))
	return key
}

// entry is one state style of one source made available to an element.
type entry struct {
	group      *Group
	container  *Container // nil for the instance group
	source     *StateStyle
	sourceType SourceType
	state      State
	ruleCount  int
	groupIndex int
	priority   uint64
}

func (e *entry) style() *Style {
	if e.source == nil {
		return nil
	}
	return e.source.Style
}

// byPriority orders entries by descending priority.
func byPriority(a, b entry) int {
	return cmp.Compare(b.priority, a.priority)
}
