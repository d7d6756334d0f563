package preferences

// ColorScheme carries the display metadata for one of the fixed themes.
type ColorScheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	Background  string `json:"background"`
	NavGradient string `json:"navGradient"`
}

const DefaultSchemeID = "default"

var colorSchemes = map[string]ColorScheme{
	"default": {
		ID:          "default",
		Name:        "Basketball Blue & Orange",
		Primary:     "#0f3460",
		Secondary:   "#ff6b35",
		Accent:      "#ff8c42",
		Background:  "rgba(0, 0, 0, 0.7)",
		NavGradient: "linear-gradient(90deg, rgba(0, 0, 0, 0.7) 0%, rgba(15, 52, 96, 0.8) 50%, rgba(255, 107, 53, 0.4) 100%)",
	},
	"lakers": {
		ID:          "lakers",
		Name:        "Lakers Purple & Gold",
		Primary:     "#552583",
		Secondary:   "#fdb927",
		Accent:      "#fdbb30",
		Background:  "rgba(85, 37, 131, 0.1)",
		NavGradient: "linear-gradient(90deg, rgba(85, 37, 131, 0.7) 0%, rgba(253, 185, 39, 0.6) 100%)",
	},
	"bulls": {
		ID:          "bulls",
		Name:        "Bulls Red & Black",
		Primary:     "#ce1141",
		Secondary:   "#000000",
		Accent:      "#ff6b35",
		Background:  "rgba(206, 17, 65, 0.1)",
		NavGradient: "linear-gradient(90deg, rgba(0, 0, 0, 0.8) 0%, rgba(206, 17, 65, 0.8) 100%)",
	},
	"celtics": {
		ID:          "celtics",
		Name:        "Celtics Green & White",
		Primary:     "#007a33",
		Secondary:   "#ffffff",
		Accent:      "#00d981",
		Background:  "rgba(0, 122, 51, 0.1)",
		NavGradient: "linear-gradient(90deg, rgba(0, 0, 0, 0.7) 0%, rgba(0, 122, 51, 0.8) 100%)",
	},
}

// Schemes returns the full catalog for the settings panel, default first.
func Schemes() []ColorScheme {
	ordered := []string{"default", "lakers", "bulls", "celtics"}
	out := make([]ColorScheme, 0, len(ordered))
	for _, id := range ordered {
		out = append(out, colorSchemes[id])
	}
	return out
}
