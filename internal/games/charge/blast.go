package charge

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/charge/internal/core"
)

// Blast is the expanding discharge sphere. It stays where it was released
// and kills every enemy its circle touches until it reaches full size.
type Blast struct {
	Entity
	Circle core.Circle

	growth *gween.Tween
}

// NewBlast creates a blast centered on the player body. The radius starts
// at half the player width and grows at rate px/s up to maxRadius.
func NewBlast(player core.Rect, rate, maxRadius float64) *Blast {
	start := float64(player.W) / 2
	duration := 0.0
	if rate > 0 && maxRadius > start {
		duration = (maxRadius - start) / rate
	}
	b := &Blast{
		Entity: Entity{Kind: KindEffect},
		Circle: core.Circle{
			X:      float64(player.CenterX()),
			Y:      float64(player.CenterY()),
			Radius: start,
		},
		growth: gween.New(float32(start), float32(maxRadius), float32(duration), ease.Linear),
	}
	b.syncRect()
	return b
}

// Update grows the circle and flags the blast when fully expanded.
// The blast does not scroll with the world.
func (b *Blast) Update(dt, _ float64) {
	r, done := b.growth.Update(float32(dt))
	b.Circle.Radius = float64(r)
	b.syncRect()
	if done {
		b.Destroy()
	}
}

// Hits reports whether the circle touches r.
func (b *Blast) Hits(r core.Rect) bool {
	return b.Circle.IntersectsRect(r)
}

func (b *Blast) syncRect() {
	r := core.Round(b.Circle.Radius)
	b.Pos = core.NewRect(core.Round(b.Circle.X)-r, core.Round(b.Circle.Y)-r, 2*r, 2*r)
}
