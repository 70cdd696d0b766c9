package render

import "image"

// Texture is a loaded image. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Canvas is the draw sink: it copies a source rectangle of a texture to a
// destination rectangle, and marks the end of a frame.
type Canvas interface {
	Copy(tex Texture, src, dst image.Rectangle)
	Present()
}

// DrawCommand is one recorded Copy call.
type DrawCommand struct {
	Texture Texture
	Src     image.Rectangle
	Dst     image.Rectangle
}

// Recorder is a Canvas that keeps every command. Frames counts Present calls.
type Recorder struct {
	Commands []DrawCommand
	Frames   int
}

func (r *Recorder) Copy(tex Texture, src, dst image.Rectangle) {
	r.Commands = append(r.Commands, DrawCommand{Texture: tex, Src: src, Dst: dst})
}

func (r *Recorder) Present() {
	r.Frames++
}

// Reset drops recorded commands but keeps the frame count.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay copies every recorded command onto c in order. It does not call
// Present.
func (r *Recorder) Replay(c Canvas) {
	for _, cmd := range r.Commands {
		c.Copy(cmd.Texture, cmd.Src, cmd.Dst)
	}
}
