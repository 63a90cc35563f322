package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of a text diagram
	JSONFormat bool

	// Coords labels the diagram with ranks and files
	Coords bool

	// ANSI shades diagram squares with terminal colours
	ANSI bool

	// MaxLineLength is the maximum line length for move listings
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
	}
}
