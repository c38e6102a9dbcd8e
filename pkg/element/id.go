package element

import "strconv"

// ID is a generation-checked handle identifying one element slot.
type ID struct {
	Index      uint32
	Generation uint32
}

// Null is the reserved empty handle.
var Null ID

// IsNull reports whether id is the reserved empty handle.
func (id ID) IsNull() bool {
	return id == Null
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id.Index), 10) + ":" + strconv.FormatUint(uint64(id.Generation), 10)
}
