package venues

// DefaultColor is used for venues without an entry in the color table,
// including free-text venue names from community submissions.
const DefaultColor = "#FF6B35"

// Colors maps the known venues to their display colors. Must stay in
// step with the seed migration.
var Colors = map[string]string{
	"The Stone Pony":                   "#E84855",
	"House of Independents":            "#3185FC",
	"The Wonder Bar":                   "#F9A620",
	"The Saint":                        "#23CE6B",
	"Asbury Lanes":                     "#A846A0",
	"Danny Clinch Transparent Gallery": "#FF6B6B",
}

// Color resolves a venue name to its display color. Unknown and empty
// names both get the default.
func Color(name string) string {
	if c, ok := Colors[name]; ok {
		return c
	}
	return DefaultColor
}

// Genres is the fixed genre catalog offered by submission and filter UIs.
var Genres = []string{
	"Rock", "Indie", "Blues", "Jazz", "Folk", "Punk", "Electronic",
	"R&B/Soul", "Americana", "Singer-Songwriter", "Funk", "Reggae",
	"Country", "Hip-Hop", "Cover Band",
}

// Vibes is the fixed vibe catalog.
var Vibes = []string{
	"🔥 High Energy", "🎸 Rock", "🎷 Jazz & Blues", "🎵 Acoustic Chill",
	"🎤 Singer-Songwriter", "🎧 DJ / Electronic", "🎺 Funk & Soul",
	"🌊 Beach Vibes", "🎻 Folk & Americana",
}
