package enum

// mode holds the underlying values of Mode, aliases are accepted by ParseMode
type mode int

const (
	modeEnable  mode = iota // also "on"
	modeDisable             // also "off"
)
