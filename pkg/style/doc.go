// Package style resolves cascading style properties for arena elements.
//
// Each element owns a StyleSet holding prioritized entries from its instance
// style and from shared containers, each gated by an interaction state.
// Resolution is incremental: structural changes and state transitions only
// recompute the properties they touch, and a Consumer is notified once per
// change of an element's effective value. Inheritable properties are pushed
// eagerly to enabled descendants that do not define them.
package style
