package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
)

// hudHeight is the strip above the play field that holds the scores.
const hudHeight = 40

// keyBindings maps ebiten keys to actions. Enter is bound to both start and
// restart; the state machine ignores whichever does not fit the phase.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionActivate},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyS}, core.ActionStart},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyM, ebiten.KeyB, ebiten.KeyEscape}, core.ActionMenu},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// keyActions collects the actions whose keys were pressed this frame.
func keyActions(justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if justPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}

type button struct {
	label  string
	rect   core.Rect
	action core.Action
}

// buttons returns the overlay buttons shown in the given phase, in window
// coordinates.
func buttons(p rocket.Phase, w rocket.World) []button {
	cx := int(w.Width) / 2
	cy := hudHeight + int(w.Height)/2

	switch p {
	case rocket.PhaseIdle:
		return []button{
			{label: "START", rect: core.NewRect(cx-90, cy+60, 180, 48), action: core.ActionStart},
		}
	case rocket.PhaseGameOver:
		return []button{
			{label: "PLAY AGAIN", rect: core.NewRect(cx-210, cy+90, 200, 48), action: core.ActionRestart},
			{label: "MENU", rect: core.NewRect(cx+10, cy+90, 200, 48), action: core.ActionMenu},
		}
	}
	return nil
}

// fieldRect is the play surface in window coordinates.
func fieldRect(w rocket.World) core.Rect {
	return core.NewRect(0, hudHeight, int(w.Width), int(w.Height))
}

// clickAction resolves a left click at (x, y). Buttons win; otherwise a
// click on the field thrusts while a round runs.
func clickAction(p rocket.Phase, w rocket.World, x, y int) core.Action {
	for _, b := range buttons(p, w) {
		if b.rect.Contains(x, y) {
			return b.action
		}
	}
	if p == rocket.PhasePlaying && fieldRect(w).Contains(x, y) {
		return core.ActionActivate
	}
	return core.ActionNone
}
