package element

// Color is an RGBA byte quadruple. Kept free of renderer types so the
// representation builders can be exercised without a window.
type Color [4]uint8

// UnknownColor is the fallback for elements with no table entry.
var UnknownColor = Color{144, 144, 144, 255}

// DefaultRadius (Å) is the fallback Van der Waals radius for unknown elements.
const DefaultRadius float32 = 1.7

// colors follows the usual CPK convention for the elements that actually show
// up in structure files. Everything else renders gray.
var colors = map[string]Color{
	"H":  {255, 255, 255, 255},
	"C":  {80, 80, 80, 255},
	"N":  {48, 80, 248, 255},
	"O":  {255, 13, 13, 255},
	"S":  {255, 255, 48, 255},
	"P":  {255, 128, 0, 255},
	"F":  {144, 224, 80, 255},
	"CL": {31, 240, 31, 255},
	"BR": {166, 41, 41, 255},
	"I":  {148, 0, 148, 255},
	"FE": {224, 102, 51, 255},
	"MG": {138, 255, 0, 255},
	"ZN": {125, 128, 176, 255},
	"CA": {61, 255, 0, 255},
	"NA": {171, 92, 242, 255},
	"K":  {143, 64, 212, 255},
	"MN": {156, 122, 199, 255},
	"CU": {200, 128, 51, 255},
}

// radii are Van der Waals radii in Å, used by the space-filling style.
var radii = map[string]float32{
	"H":  1.20,
	"C":  1.70,
	"N":  1.55,
	"O":  1.52,
	"S":  1.80,
	"P":  1.80,
	"F":  1.47,
	"CL": 1.75,
	"BR": 1.85,
	"I":  1.98,
	"FE": 1.94,
	"MG": 1.73,
	"ZN": 1.39,
	"CA": 2.31,
	"NA": 2.27,
	"K":  2.75,
	"MN": 1.97,
	"CU": 1.40,
}

// ColorOf returns the CPK color for an upper-case element symbol, or
// UnknownColor when the symbol has no entry.
func ColorOf(symbol string) Color {
	if c, ok := colors[symbol]; ok {
		return c
	}
	return UnknownColor
}

// RadiusOf returns the Van der Waals radius (Å) for an upper-case element
// symbol, or DefaultRadius when the symbol has no entry.
func RadiusOf(symbol string) float32 {
	if r, ok := radii[symbol]; ok {
		return r
	}
	return DefaultRadius
}
