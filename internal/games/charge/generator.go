package charge

import (
	"math/rand"

	"github.com/vovakirdan/charge/internal/config"
	"github.com/vovakirdan/charge/internal/core"
)

// orbPairs are the (no orbs, guaranteed orb) tier combinations.
var orbPairs = [6][2]int{
	{0, 1}, {0, 2},
	{1, 0}, {1, 2},
	{2, 0}, {2, 1},
}

// Spawned collects the entities created by one generation pass.
type Spawned struct {
	Platforms []*Platform
	Batteries []*Entity
	Walls     []*Entity
	Enemies   []*Enemy
}

// LevelGenerator keeps every tier supplied with platforms ahead of the
// player and fills new platforms with batteries, walls and enemies.
type LevelGenerator struct {
	cfg *config.ChargeConfig
	rng *rand.Rand

	// rightMost holds non-owning references to the newest platform of each
	// tier. They are cleared by PlatformRemoved.
	rightMost []*Platform

	distance    int // Scrolled distance since the last orb reroll
	noOrbTier   int
	someOrbTier int
}

// NewLevelGenerator creates a generator for an empty world.
func NewLevelGenerator(cfg *config.ChargeConfig, rng *rand.Rand) *LevelGenerator {
	g := &LevelGenerator{
		cfg:         cfg,
		rng:         rng,
		rightMost:   make([]*Platform, cfg.TierCount()),
		noOrbTier:   0,
		someOrbTier: 1,
	}
	return g
}

// Reset forgets all rightmost platforms.
func (g *LevelGenerator) Reset() {
	for i := range g.rightMost {
		g.rightMost[i] = nil
	}
}

// Advance adds scrolled distance towards the next orb reroll.
func (g *LevelGenerator) Advance(dt, playerSpeed float64) {
	g.distance += int(dt * playerSpeed)
}

// Distance returns the scrolled distance since the last orb reroll.
func (g *LevelGenerator) Distance() int {
	return g.distance
}

// OrbTiers returns the current (no orbs, guaranteed orb) tiers.
func (g *LevelGenerator) OrbTiers() (none, some int) {
	return g.noOrbTier, g.someOrbTier
}

// RightMost returns the newest platform of a tier, or nil.
func (g *LevelGenerator) RightMost(tier int) *Platform {
	if tier < 0 || tier >= len(g.rightMost) {
		return nil
	}
	return g.rightMost[tier]
}

// SetRightMost records p as the newest platform of its tier. Invalid
// tiers are ignored.
func (g *LevelGenerator) SetRightMost(p *Platform, tier int) {
	if tier < 0 || tier >= len(g.rightMost) {
		return
	}
	g.rightMost[tier] = p
}

// PlatformRemoved clears any rightmost reference to p.
func (g *LevelGenerator) PlatformRemoved(p *Platform) {
	for i, rm := range g.rightMost {
		if rm == p {
			g.rightMost[i] = nil
		}
	}
}

// ShouldSpawnPlatform decides whether tier needs a new platform this tick.
func (g *LevelGenerator) ShouldSpawnPlatform(tier, liveCount int) bool {
	if liveCount > g.cfg.Generation.MaxPlatforms {
		return false
	}
	rm := g.RightMost(tier)
	if rm == nil {
		return true
	}
	win := g.cfg.Window.Width
	if rm.Pos.Right() <= win-g.cfg.Generation.MaxGaps[tier] {
		return true
	}
	if rm.Pos.Right() > win*2 {
		return false
	}
	return g.rng.Float64() < g.cfg.Generation.SpawnChance
}

// NewPlatform places a platform after the tier's rightmost one.
func (g *LevelGenerator) NewPlatform(tier int, color core.Color) *Platform {
	gen := g.cfg.Generation
	rm := g.RightMost(tier)

	minX := g.cfg.Window.Width
	if rm != nil && minX < rm.Pos.Right()+gen.MinGaps[tier] {
		minX = rm.Pos.Right() + gen.MinGaps[tier]
	}
	maxX := minX + gen.MaxGaps[tier]
	if rm != nil {
		maxX = rm.Pos.Right() + gen.MaxGaps[tier]
	}

	x := minX
	if minX < maxX {
		x = minX + g.rng.Intn(maxX-minX)
	}
	width := gen.SegmentWidth * g.segments()
	pos := core.NewRect(x, gen.TierHeights[tier], width, gen.PlatformHeight)
	return NewPlatform(pos, tier, gen.SegmentWidth, color)
}

// segments returns a random segment count in [MinSegments, MaxSegments).
func (g *LevelGenerator) segments() int {
	gen := g.cfg.Generation
	return gen.MinSegments + g.rng.Intn(gen.MaxSegments-gen.MinSegments)
}

// Generate runs one spawn pass over all tiers and fills the new platforms.
// liveEnemies is the number of enemies already in the world.
func (g *LevelGenerator) Generate(liveCount, liveEnemies int, playerSpeed, barrierSpeed float64, color core.Color) Spawned {
	var out Spawned
	for tier := range g.rightMost {
		if !g.ShouldSpawnPlatform(tier, liveCount) {
			continue
		}
		p := g.NewPlatform(tier, color)
		g.SetRightMost(p, tier)
		out.Platforms = append(out.Platforms, p)
		liveCount++
	}
	for _, p := range out.Platforms {
		g.fill(p, &out, liveEnemies+len(out.Enemies), playerSpeed, barrierSpeed)
	}
	return out
}

// rerollOrbs picks new orb tiers once enough distance has scrolled by.
func (g *LevelGenerator) rerollOrbs() bool {
	if g.distance <= g.cfg.Generation.OrbRerollDistance {
		return false
	}
	g.distance = 0
	pair := orbPairs[g.rng.Intn(len(orbPairs))]
	g.noOrbTier, g.someOrbTier = pair[0], pair[1]
	return true
}

// fill places batteries, walls and enemies on a fresh platform.
func (g *LevelGenerator) fill(p *Platform, out *Spawned, liveEnemies int, playerSpeed, barrierSpeed float64) {
	gen := g.cfg.Generation
	n := len(p.Sections)
	g.rerollOrbs()

	mustOrb := -1
	if p.Tier == g.someOrbTier {
		mustOrb = g.rng.Intn(n)
	}

	batteryRange := BatteryRollRange(playerSpeed, barrierSpeed, gen)
	wallRange := batteryRange + gen.WallRange
	enemyRange := wallRange + gen.EnemyRange

	var batteries, walls, enemies int
	for i := 0; i < n; i++ {
		roll := g.rng.Intn(gen.RollMax)
		sec := p.SectionRect(i)

		switch {
		case i == mustOrb || (roll < batteryRange && batteries < gen.MaxBatteriesPerPlatform):
			if p.Tier == g.noOrbTier {
				continue
			}
			out.Batteries = append(out.Batteries, g.battery(p, sec))
			p.Sections[i].Content = ContentBattery
			batteries++

		case roll < wallRange && walls < gen.MaxWallsPerPlatform:
			// A wall covers two sections and must not swallow the orb.
			if i >= n-1 || i+1 == mustOrb {
				continue
			}
			out.Walls = append(out.Walls, g.wall(p, sec))
			p.Sections[i].Content = ContentWall
			p.Sections[i+1].Content = ContentWall
			walls++
			i++

		case roll < enemyRange && enemies < gen.MaxEnemiesPerPlatform && liveEnemies < gen.MaxEnemies:
			if !enemyHasRoom(p, i) {
				continue
			}
			pos := core.NewRect(sec.CenterX()-gen.EnemyWidth/2, p.Pos.Y-gen.EnemyHeight, gen.EnemyWidth, gen.EnemyHeight)
			out.Enemies = append(out.Enemies, NewEnemy(pos, p, gen.EnemyPatrolSpeed, g.rng))
			enemies++
			liveEnemies++
		}
	}
}

func (g *LevelGenerator) battery(p *Platform, sec core.Rect) *Entity {
	size := g.cfg.Generation.BatterySize
	lift := g.cfg.Player.Height / 3
	pos := core.NewRect(sec.CenterX()-size/2, p.Pos.Y-size/2-lift, size, size)
	return &Entity{Pos: pos, Kind: KindBattery}
}

// wall straddles the boundary between section i and i+1.
func (g *LevelGenerator) wall(p *Platform, sec core.Rect) *Entity {
	gen := g.cfg.Generation
	pos := core.NewRect(sec.Right()-gen.WallWidth/2, p.Pos.Y-gen.WallHeight+3, gen.WallWidth, gen.WallHeight)
	return &Entity{Pos: pos, Kind: KindWall}
}

// enemyHasRoom reports whether a neighbour of section i is free to walk on.
func enemyHasRoom(p *Platform, i int) bool {
	free := func(j int) bool {
		c := p.Sections[j].Content
		return c == ContentNone || c == ContentBattery
	}
	if i > 0 && free(i-1) {
		return true
	}
	return i < len(p.Sections)-1 && free(i+1)
}

// TutorialFloor returns a full-width bottom floor starting at x when
// fewer than three platforms are live, or nil.
func (g *LevelGenerator) TutorialFloor(liveCount, x int, color core.Color) *Platform {
	if liveCount >= 3 {
		return nil
	}
	gen := g.cfg.Generation
	tier := len(gen.TierHeights) - 1
	pos := core.NewRect(x, gen.TierHeights[tier], g.cfg.Window.Width, gen.PlatformHeight)
	return NewPlatform(pos, tier, gen.SegmentWidth, color)
}

// StartLayout returns the platforms of a fresh run: a long floor under the
// player plus one random platform in each upper tier. Each becomes the
// rightmost of its tier.
func (g *LevelGenerator) StartLayout(color core.Color) []*Platform {
	gen := g.cfg.Generation
	win := g.cfg.Window.Width
	startX := g.cfg.PlayerStartX()
	bottom := len(gen.TierHeights) - 1

	var out []*Platform
	for tier := 0; tier < bottom; tier++ {
		x := g.rng.Intn(win)
		pos := core.NewRect(x, gen.TierHeights[tier], gen.SegmentWidth*g.segments(), gen.PlatformHeight)
		p := NewPlatform(pos, tier, gen.SegmentWidth, color)
		g.SetRightMost(p, tier)
		out = append(out, p)
	}

	floorW := win - startX/3
	floor := NewPlatform(core.NewRect(startX, gen.TierHeights[bottom], floorW, gen.PlatformHeight), bottom, gen.SegmentWidth, color)
	g.SetRightMost(floor, bottom)
	return append(out, floor)
}
