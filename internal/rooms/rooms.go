// Package rooms owns the canonical room vocabulary and the single
// bidirectional table translating between it and the names the control
// panel renders (bedroom1/bedroom2/living). Every boundary that accepts
// or emits room names goes through this package.
package rooms

// Canonical room names, as stored with preferences and spoken to the
// voice pipeline.
const (
	Kitchen = "kitchen"
	Hall    = "hall"
	Master  = "master"
	Guest   = "guest"
)

// All lists the canonical rooms in display order. Exactly one
// preference per entry exists for every profile.
var All = []string{Kitchen, Hall, Master, Guest}

// aliasToCanonical accepts both vocabularies; the panel's names map
// onto the stored ones.
var aliasToCanonical = map[string]string{
	Kitchen:    Kitchen,
	Hall:       Hall,
	Master:     Master,
	Guest:      Guest,
	"living":   Hall,
	"bedroom1": Master,
	"bedroom2": Guest,
}

// canonicalToUI is the reverse direction, used when describing actions
// back to the panel.
var canonicalToUI = map[string]string{
	Kitchen: Kitchen,
	Hall:    Hall,
	Master:  "bedroom1",
	Guest:   "bedroom2",
}

// Canonicalize maps a room name from either vocabulary to its canonical
// form. The second result is false for unknown names.
func Canonicalize(name string) (string, bool) {
	r, ok := aliasToCanonical[name]
	return r, ok
}

// UIName returns the control-panel name for a canonical room. Unknown
// names are returned unchanged.
func UIName(room string) string {
	if ui, ok := canonicalToUI[room]; ok {
		return ui
	}
	return room
}

// IsCanonical reports whether name is one of the four stored rooms.
func IsCanonical(name string) bool {
	for _, r := range All {
		if r == name {
			return true
		}
	}
	return false
}
