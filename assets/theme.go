package assets

// Emoji glyphs used by the terminal renderer.
const (
	GlyphPlayer    = "🧍"
	GlyphShambler  = "🧟"
	GlyphStalker   = "🐺"
	GlyphWhisperer = "👻"
	GlyphAnomaly   = "🌀"
	GlyphCreature  = "👾"
	GlyphContainer = "📦"
	GlyphStory     = "📜"
	GlyphDoor      = "🚪"
	GlyphEndgame   = "📡"
	GlyphUnknown   = "❔"
)

// ZoneTiles holds the emoji glyphs used to draw one zone's terrain.
type ZoneTiles struct {
	Wall  string
	Floor string
}

// DefaultTiles is used for zones without an entry in ZoneThemes.
var DefaultTiles = ZoneTiles{Wall: "🧱", Floor: "⬛"}

// ZoneThemes maps zone name to its tile set.
var ZoneThemes = map[string]ZoneTiles{
	// concrete and rails
	"Abandoned Subway": {Wall: "🧱", Floor: "🟫"},
	// ruined blocks and asphalt
	"City Center": {Wall: "🏚️", Floor: "⬛"},
	// tiled wards
	"Eerie Hospital": {Wall: "⬜", Floor: "🔲"},
	// steel girders
	"Radio Tower": {Wall: "🔩", Floor: "🟪"},
}
