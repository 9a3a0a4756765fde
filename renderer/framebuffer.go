package renderer

import "github.com/lumenray/core/types"

// Framebuffer is a flat, row-major array of packed RGBA8 pixels (§4.G).
// Width and height are mutable; Resize reallocates and clears the
// backing array.
type Framebuffer struct {
	Width  uint32
	Height uint32
	Pixels []uint32
}

// NewFramebuffer returns a zero-sized framebuffer; call Resize before use.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Resize reallocates the pixel array for the given dimensions and clears
// it to zero (transparent black). Returns ErrResizeZero for a zero width
// or height.
func (fb *Framebuffer) Resize(w, h uint32) error {
	if w == 0 || h == 0 {
		return ErrResizeZero
	}
	fb.Width = w
	fb.Height = h
	fb.Pixels = make([]uint32, int(w)*int(h))
	return nil
}

// Set packs color (components clamped to [0,1]) and stores it at (x, y).
func (fb *Framebuffer) Set(x, y uint32, color types.Vec4) {
	fb.Pixels[y*fb.Width+x] = PackRGBA8(color)
}

// PackRGBA8 clamps each component of color to [0,1] and packs it into a
// 32-bit value as (R,G,B,A) 8-bit components, R in the most significant
// byte, via floor(c*255) (§4.G).
func PackRGBA8(color types.Vec4) uint32 {
	r := packComponent(color[0])
	g := packComponent(color[1])
	b := packComponent(color[2])
	a := packComponent(color[3])
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

func packComponent(c float32) uint8 {
	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}
	v := c * 255
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
