package game

import (
	"math"

	"github.com/vovakirdan/fruit2048/internal/board"
	"github.com/vovakirdan/fruit2048/internal/core"
)

// Durations are phase lengths in ticks.
type Durations struct {
	Slide int
	Pop   int
	Shake int
}

// DefaultDurations returns ~133ms slide, ~100ms pop and ~200ms shake at 60fps.
func DefaultDurations() Durations {
	return Durations{Slide: 8, Pop: 6, Shake: 12}
}

// Phase is the current stage of a playout.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseSlide
	PhasePop
	PhaseShake
)

// Sprite is a tile in flight during the slide phase.
type Sprite struct {
	Value    int
	From     board.Position
	To       board.Position
	Absorbed bool
}

// Position returns the sprite's interpolated row and column at progress t.
func (sp Sprite) Position(t float64) (row, col float64) {
	e := easeOutQuad(t)
	row = core.Lerp(float64(sp.From.Row), float64(sp.To.Row), e)
	col = core.Lerp(float64(sp.From.Col), float64(sp.To.Col), e)
	return row, col
}

// Playout sequences the presentation of one move: tiles slide, then merged
// tiles and the spawned tile pop. A no-op move plays a shake instead.
type Playout struct {
	dur   Durations
	phase Phase
	ticks int

	sprites []Sprite
	pops    map[board.Position]bool
}

// NewPlayout creates an idle playout.
func NewPlayout(d Durations) *Playout {
	return &Playout{dur: d}
}

// StartMove begins the slide for a committed move.
func (p *Playout) StartMove(res board.MoveResult) {
	p.sprites = p.sprites[:0]
	for _, a := range res.Actions {
		p.sprites = append(p.sprites, Sprite{
			Value:    a.Value,
			From:     a.From,
			To:       a.To,
			Absorbed: a.Absorbed,
		})
	}

	p.pops = make(map[board.Position]bool)
	for _, pos := range res.MergedTargets() {
		p.pops[pos] = true
	}
	if res.Spawned != nil {
		p.pops[res.Spawned.Pos] = true
	}

	p.enter(PhaseSlide)
}

// StartShake begins the no-op feedback.
func (p *Playout) StartShake() {
	p.sprites = p.sprites[:0]
	p.pops = nil
	p.enter(PhaseShake)
}

// Stop abandons any running phase.
func (p *Playout) Stop() {
	p.phase = PhaseNone
	p.ticks = 0
	p.sprites = p.sprites[:0]
	p.pops = nil
}

// enter switches to phase, skipping phases with no duration.
func (p *Playout) enter(phase Phase) {
	p.ticks = 0
	p.phase = phase
	for p.phase != PhaseNone && p.duration() <= 0 {
		p.phase = p.next()
	}
}

func (p *Playout) next() Phase {
	if p.phase == PhaseSlide && len(p.pops) > 0 {
		return PhasePop
	}
	return PhaseNone
}

func (p *Playout) duration() int {
	switch p.phase {
	case PhaseSlide:
		return p.dur.Slide
	case PhasePop:
		return p.dur.Pop
	case PhaseShake:
		return p.dur.Shake
	default:
		return 0
	}
}

// Tick advances the playout by one tick.
// Returns true if the playout is still running.
func (p *Playout) Tick() bool {
	if p.phase == PhaseNone {
		return false
	}

	p.ticks++
	if p.ticks >= p.duration() {
		p.enter(p.next())
	}
	return p.phase != PhaseNone
}

// Active reports whether a phase is running.
func (p *Playout) Active() bool {
	return p.phase != PhaseNone
}

// Phase returns the running phase.
func (p *Playout) Phase() Phase {
	return p.phase
}

// Progress returns how far the running phase is, from 0 to 1.
func (p *Playout) Progress() float64 {
	d := p.duration()
	if d <= 0 {
		return 1
	}
	return core.ClampF(float64(p.ticks)/float64(d), 0, 1)
}

// Sprites returns the tiles in flight. Only meaningful during PhaseSlide.
func (p *Playout) Sprites() []Sprite {
	return p.sprites
}

// Popping reports whether pos is highlighted in the pop phase.
func (p *Playout) Popping(pos board.Position) bool {
	return p.phase == PhasePop && p.pops[pos]
}

// ShakeOffset returns the horizontal board offset in columns, a decaying
// oscillation over the shake phase.
func (p *Playout) ShakeOffset() int {
	if p.phase != PhaseShake {
		return 0
	}
	t := p.Progress()
	return int(math.Round(2 * (1 - t) * math.Sin(t*6*math.Pi)))
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
