package zone

// Tile symbols used in zone layouts. Any other symbol is a passable marker
// stamped by an interactable and reset to Floor once that interactable is used.
const (
	Floor byte = '.'
	Wall  byte = '#'
)

// InteractKind tags what an interactable does when the player looks at it.
type InteractKind uint8

const (
	InteractOther     InteractKind = iota // inspectable, does nothing
	InteractContainer                     // searched once for junk
	InteractStory                         // read once for zone flavor text
	InteractDoor                          // key-gated zone transition
	InteractEndgame                       // win condition
)

var interactNames = [...]string{
	InteractOther:     "other",
	InteractContainer: "container",
	InteractStory:     "story",
	InteractDoor:      "door",
	InteractEndgame:   "endgame",
}

var interactMarkers = [...]byte{
	InteractOther:     '*',
	InteractContainer: 'C',
	InteractStory:     '?',
	InteractDoor:      'D',
	InteractEndgame:   'E',
}

func (k InteractKind) String() string {
	if int(k) < len(interactNames) {
		return interactNames[k]
	}
	return "other"
}

// Marker is the tile symbol drawn where an interactable of this kind sits.
func (k InteractKind) Marker() byte {
	if int(k) < len(interactMarkers) {
		return interactMarkers[k]
	}
	return '*'
}

// ParseInteractKind maps a content name to a kind. Unknown names become
// InteractOther so that stray content stays inspectable.
func ParseInteractKind(s string) InteractKind {
	for k, name := range interactNames {
		if name == s {
			return InteractKind(k)
		}
	}
	return InteractOther
}

// Interactable is a fixed-position object the player can inspect.
type Interactable struct {
	Kind InteractKind
	Text string
}
