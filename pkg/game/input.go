package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/samber/lo"

	"github.com/golangdaddy/topgear/pkg/vehicle"
)

// keyMap lists the keys bound to each control
type keyMap struct {
	Accelerate []ebiten.Key
	Brake      []ebiten.Key
	Left       []ebiten.Key
	Right      []ebiten.Key
	ShiftUp    []ebiten.Key
	ShiftDown  []ebiten.Key
	Confirm    []ebiten.Key
}

var defaultKeys = keyMap{
	Accelerate: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
	Brake:      []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeySpace},
	Left:       []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
	Right:      []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	ShiftUp:    []ebiten.Key{ebiten.KeyE, ebiten.KeyX},
	ShiftDown:  []ebiten.Key{ebiten.KeyQ, ebiten.KeyZ},
	Confirm:    []ebiten.Key{ebiten.KeyEnter},
}

// controls snapshots the keyboard into the simulation's input
func (k keyMap) controls(pressed func(ebiten.Key) bool) vehicle.Controls {
	held := func(keys []ebiten.Key) bool {
		return lo.ContainsBy(keys, pressed)
	}
	return vehicle.Controls{
		Accelerate: held(k.Accelerate),
		Brake:      held(k.Brake),
		Left:       held(k.Left),
		Right:      held(k.Right),
		ShiftUp:    held(k.ShiftUp),
		ShiftDown:  held(k.ShiftDown),
		Confirm:    held(k.Confirm),
	}
}

func readControls() vehicle.Controls {
	return defaultKeys.controls(ebiten.IsKeyPressed)
}
