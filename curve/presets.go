package curve

// Preset curve parameters for common icon uses. Coefficients are chosen for
// shape, not for any arithmetic property.
var (
	// Smooth is a nice single-component curve, good for general use:
	// y² = x³ - x + 1.
	Smooth = Params{A: -1, B: 1, XMin: -2, XMax: 2.5, Samples: DefaultSamples}

	// Simple has a clearly visible bulge: y² = x³ - 3x + 3.
	Simple = Params{A: -3, B: 3, XMin: -2.5, XMax: 2.5, Samples: DefaultSamples}

	// Wide is flatter and leaves room for labels: y² = x³ - 4x + 4.
	Wide = Params{A: -4, B: 4, XMin: -2.5, XMax: 2.5, Samples: DefaultSamples}

	// Tall is narrow and vertical: y² = x³ + 1.
	Tall = Params{A: 0, B: 1, XMin: -2, XMax: 2, Samples: DefaultSamples}
)
