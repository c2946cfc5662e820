package render

// ColorFamily is one background/border/text triplet applied to a variable
// chip in editable mode.
type ColorFamily struct {
	Background string
	Border     string
	Text       string
}

// Palette of chip color families. Every variable name maps to exactly one
// family, so a field keeps its color everywhere it appears in a document.
var palette = []ColorFamily{
	{Background: "#dbeafe", Border: "#93c5fd", Text: "#1e40af"}, // blue
	{Background: "#dcfce7", Border: "#86efac", Text: "#166534"}, // green
	{Background: "#fef3c7", Border: "#fcd34d", Text: "#92400e"}, // amber
	{Background: "#fce7f3", Border: "#f9a8d4", Text: "#9d174d"}, // pink
	{Background: "#ede9fe", Border: "#c4b5fd", Text: "#5b21b6"}, // violet
	{Background: "#cffafe", Border: "#67e8f9", Text: "#155e75"}, // cyan
	{Background: "#ffedd5", Border: "#fdba74", Text: "#9a3412"}, // orange
	{Background: "#e0e7ff", Border: "#a5b4fc", Text: "#3730a3"}, // indigo
}

// hashName is the classic string hash: hash = code + ((hash << 5) - hash).
func hashName(name string) int32 {
	var hash int32
	for _, code := range name {
		hash = code + ((hash << 5) - hash)
	}
	return hash
}

// FamilyFor deterministically selects the color family for a variable name.
// Pure function of the name: stable within a run and across runs.
func FamilyFor(name string) ColorFamily {
	hash := hashName(name)
	if hash < 0 {
		hash = -hash
	}
	return palette[int(hash)%len(palette)]
}

// PaletteSize reports how many distinct color families exist.
func PaletteSize() int {
	return len(palette)
}
