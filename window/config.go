package window

// Config controls the desktop window.
type Config struct {
	Width, Height int
	Title         string

	// Ticks per second for input polling
	TPS int
}
