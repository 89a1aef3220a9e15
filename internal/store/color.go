package store

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// randColor produces a bright random tag color: a random hue at high
// saturation and value, packed as RGB24.
func randColor() uint32 {
	c := colorful.Hsv(rand.Float64()*360, 0.6+rand.Float64()*0.4, 0.8+rand.Float64()*0.2)
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
