package demo

// Which camera the demo is currently showing.
type DisplayMode int

const (
	// Unit quad, camera corrected for the aspect ratio so the quad stays square.
	ModeFit DisplayMode = iota
	// Unit quad, camera ignores the aspect ratio of wide windows so the quad stretches with them.
	ModeStretch
	// Pixel sized quad, camera measured in screen pixels (one world unit per pixel).
	ModePixel

	numModes
)

// Next cycles forward through the modes, wrapping back to ModeFit after ModePixel.
func (m DisplayMode) Next() DisplayMode {
	i := int(m) + 1
	return DisplayMode(((i % int(numModes)) + int(numModes)) % int(numModes))
}

func (m DisplayMode) Valid() bool {
	return m >= 0 && m < numModes
}

func (m DisplayMode) String() string {
	switch m {
	case ModeFit:
		return "fit"
	case ModeStretch:
		return "stretch"
	case ModePixel:
		return "pixel"
	}
	return "unknown"
}
