package element

// Enable sets FlagEnabled on id and its descendants. id is marked as the
// enabled root and recorded in the per-frame enabled list.
func (a *Arena) Enable(id ID) {
	a.AssertWritable("element.Enable")
	if a.meta[id.Index].Flags&FlagEnabled != 0 {
		return
	}
	a.meta[id.Index].Flags |= FlagEnabledRoot
	a.meta[id.Index].Flags &^= FlagDisableRoot
	a.setEnabled(id, true)
	a.enabledThisFrame = append(a.enabledThisFrame, id)
}

// Disable clears FlagEnabled on id and its descendants. id is marked as the
// disable root and recorded in the per-frame disabled list.
func (a *Arena) Disable(id ID) {
	a.AssertWritable("element.Disable")
	if a.meta[id.Index].Flags&FlagEnabled == 0 {
		return
	}
	a.meta[id.Index].Flags |= FlagDisableRoot
	a.meta[id.Index].Flags &^= FlagEnabledRoot
	a.setEnabled(id, false)
	a.disabledThisFrame = append(a.disabledThisFrame, id)
}

func (a *Arena) setEnabled(id ID, enabled bool) {
	m := &a.meta[id.Index]
	if enabled {
		m.Flags |= FlagEnabled | FlagEnableStateChanged
	} else {
		m.Flags = (m.Flags &^ FlagEnabled) | FlagEnableStateChanged
	}
	for child := range a.Children(id) {
		a.setEnabled(child, enabled)
	}
}

// EnabledThisFrame returns the roots enabled since the last CleanupFrame.
// The slice is owned by the arena and only valid until the next mutation.
func (a *Arena) EnabledThisFrame() []ID {
	return a.enabledThisFrame
}

// DisabledThisFrame returns the roots disabled since the last CleanupFrame.
func (a *Arena) DisabledThisFrame() []ID {
	return a.disabledThisFrame
}

// CleanupFrame clears the per-frame enable bookkeeping.
func (a *Arena) CleanupFrame() {
	a.AssertWritable("element.CleanupFrame")
	for _, id := range a.enabledThisFrame {
		if !a.IsAlive(id) {
			continue
		}
		a.clearChanged(id)
		a.meta[id.Index].Flags &^= FlagEnabledRoot
	}
	for _, id := range a.disabledThisFrame {
		if !a.IsAlive(id) {
			continue
		}
		a.clearChanged(id)
		a.meta[id.Index].Flags &^= FlagDisableRoot
	}
	a.enabledThisFrame = a.enabledThisFrame[:0]
	a.disabledThisFrame = a.disabledThisFrame[:0]
}

func (a *Arena) clearChanged(id ID) {
	a.meta[id.Index].Flags &^= FlagEnableStateChanged
	for child := range a.Children(id) {
		a.clearChanged(child)
	}
}
