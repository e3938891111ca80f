package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state. A focus pause lifts by itself when the
// window regains focus; a manual pause waits for the pause key.
type PauseData struct {
	IsPaused bool
	ByFocus  bool
}

var Pause = donburi.NewComponentType[PauseData]()
