package charge

import (
	"github.com/vovakirdan/charge/internal/core"
)

// Content records what occupies a platform section.
type Content int

const (
	ContentNone Content = iota
	ContentWall
	ContentBattery
)

// SectionShape is the visual role of a section within its platform.
type SectionShape int

const (
	ShapeLeftCap SectionShape = iota
	ShapeCenter
	ShapeRightCap
)

// Section is one fixed-width slice of a platform.
type Section struct {
	Shape   SectionShape
	Content Content
}

// Platform is a horizontal run of sections in one tier.
type Platform struct {
	Entity
	Tier     int
	Color    core.Color
	Sections []Section

	segmentWidth int
}

// NewPlatform creates a platform whose width is aligned to whole segments,
// with a minimum of two.
func NewPlatform(pos core.Rect, tier, segmentWidth int, color core.Color) *Platform {
	pos.W = AlignWidth(pos.W, segmentWidth)
	p := &Platform{
		Entity:       Entity{Pos: pos, Kind: KindPlatform},
		Tier:         tier,
		Color:        color,
		segmentWidth: segmentWidth,
	}

	n := pos.W / segmentWidth
	p.Sections = make([]Section, n)
	for i := range p.Sections {
		p.Sections[i].Shape = ShapeCenter
	}
	p.Sections[0].Shape = ShapeLeftCap
	p.Sections[n-1].Shape = ShapeRightCap
	return p
}

// AlignWidth rounds width down to a multiple of segmentWidth, never
// below two segments.
func AlignWidth(width, segmentWidth int) int {
	width -= width % segmentWidth
	if width/segmentWidth < 2 {
		width = 2 * segmentWidth
	}
	return width
}

// SectionRect returns the world rectangle of section i.
func (p *Platform) SectionRect(i int) core.Rect {
	return core.NewRect(p.Pos.X+i*p.segmentWidth, p.Pos.Y, p.segmentWidth, p.Pos.H)
}

// SectionAt returns the index of the section under world x, or -1 when x
// is off the platform.
func (p *Platform) SectionAt(x int) int {
	rel := x - p.Pos.X
	if rel < 0 || rel >= p.Pos.W {
		return -1
	}
	i := rel / p.segmentWidth
	if i >= len(p.Sections) {
		return -1
	}
	return i
}

// Walkable reports whether an enemy may step onto section i.
func (p *Platform) Walkable(i int) bool {
	return i >= 0 && i < len(p.Sections) && p.Sections[i].Content != ContentWall
}

// Update scrolls the platform with the world.
func (p *Platform) Update(dt, speed float64) {
	p.Scroll(dt, speed)
	p.CullOffscreen()
}
