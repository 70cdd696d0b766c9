package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bikatown/ecs/component"
)

// KeyState reports whether a key is held.
type KeyState func(ebiten.Key) bool

// moveBindings is checked in order; only the first held direction counts, so
// a tick never carries two moves from the keyboard.
var moveBindings = []struct {
	input component.Input
	keys  []ebiten.Key
}{
	{component.InputMoveUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{component.InputMoveDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{component.InputMoveLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{component.InputMoveRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{component.InputAttack, []ebiten.Key{ebiten.KeyZ}},
}

var (
	runKeys  = []ebiten.Key{ebiten.KeySpace}
	quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

// Translate maps held keys to abstract inputs: at most one of move or
// attack, then Run and Quit when held.
func Translate(held KeyState) []component.Input {
	var out []component.Input
	for _, b := range moveBindings {
		if anyHeld(held, b.keys) {
			out = append(out, b.input)
			break
		}
	}
	if anyHeld(held, runKeys) {
		out = append(out, component.InputRun)
	}
	if anyHeld(held, quitKeys) {
		out = append(out, component.InputQuit)
	}
	return out
}

func anyHeld(held KeyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if held(k) {
			return true
		}
	}
	return false
}

// Keyboard polls ebiten's key state. It must be polled from Update.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Poll() []component.Input {
	return Translate(ebiten.IsKeyPressed)
}
