package render

// Default colors of the confirmation UI.
var (
	// DefaultBackground fills the rendered region before any element is drawn.
	DefaultBackground = White
	// DefaultTextColor is the near-black used for labels and button bodies.
	DefaultTextColor Color = 0xff212121
)
