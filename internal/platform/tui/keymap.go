package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeroplus75/tm-pose-game2/internal/catch"
)

// KeyMapper translates Bubble Tea key messages to basket lanes and control
// actions. This centralizes key bindings and makes them testable. Keyboard
// lane control mirrors what the pose classifier feeds in, so the game is
// playable without a camera.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapZone translates a key message to a basket lane.
// Returns the lane and whether the key was a lane key at all.
func (km *KeyMapper) MapZone(msg tea.KeyMsg) (catch.Zone, bool) {
	switch msg.String() {
	case "left", "a", "h":
		return catch.ZoneLeft, true
	case "down", "s", "j":
		return catch.ZoneCenter, true
	case "right", "d", "l":
		return catch.ZoneRight, true
	}
	return catch.ZoneCenter, false
}

// IsQuit reports whether the key is a global quit request.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true
	}
	return false
}

// IsRestart reports whether the key requests a new round.
func (km *KeyMapper) IsRestart(msg tea.KeyMsg) bool {
	return msg.String() == "r"
}
