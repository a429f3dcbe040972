package enum

// Reverse returns the mode that undoes this one.
func (m Mode) Reverse() Mode {
	if m == ModeDisable {
		return ModeEnable
	}
	return ModeDisable
}
