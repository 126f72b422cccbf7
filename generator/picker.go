package generator

import (
	"math/rand"

	"github.com/beka-birhanu/vinom-dungeon/dungeon"
	"github.com/zyedidia/generic/mapset"
)

// DirectionPicker yields each direction at most once per cycle. The first
// pick of a cycle keeps the previous direction unless a roll against the
// randomness forces a change; every later pick of the cycle changes direction.
//
// Randomness 0 makes corridors run straight until blocked, 100 makes them
// turn at every step.
type DirectionPicker struct {
	rng        *rand.Rand
	randomness int
	previous   dungeon.Direction
	used       mapset.Set[dungeon.Direction]
}

// NewDirectionPicker creates a picker biased towards initial.
func NewDirectionPicker(rng *rand.Rand, initial dungeon.Direction, randomness int) (*DirectionPicker, error) {
	if err := checkPercent("randomness", randomness); err != nil {
		return nil, err
	}

	return &DirectionPicker{
		rng:        ensureRand(rng),
		randomness: randomness,
		previous:   initial,
		used:       mapset.New[dungeon.Direction](),
	}, nil
}

// Reset starts a new cycle biased towards initial.
func (p *DirectionPicker) Reset(initial dungeon.Direction) {
	p.previous = initial
	p.used = mapset.New[dungeon.Direction]()
}

// HasNext reports whether the current cycle still has unused directions.
func (p *DirectionPicker) HasNext() bool {
	return p.used.Size() < dungeon.DirectionCount
}

// Next returns a direction not yet returned in this cycle.
func (p *DirectionPicker) Next() (dungeon.Direction, error) {
	if !p.HasNext() {
		return p.previous, ErrDirectionsExhausted
	}

	for {
		d := p.previous
		if p.mustChangeDirection() {
			d = p.pickDifferentDirection()
		}
		if !p.used.Has(d) {
			p.used.Put(d)
			return d, nil
		}
	}
}

func (p *DirectionPicker) mustChangeDirection() bool {
	// Once a direction has been handed out the caller found it unusable.
	return p.used.Size() > 0 || p.rng.Intn(100) < p.randomness
}

// pickDifferentDirection stops rejecting the previous direction once three
// directions are used, since it may be the only one left.
func (p *DirectionPicker) pickDifferentDirection() dungeon.Direction {
	for {
		d := randomDirection(p.rng)
		if d != p.previous || p.used.Size() >= dungeon.DirectionCount-1 {
			return d
		}
	}
}

func randomDirection(rng *rand.Rand) dungeon.Direction {
	return dungeon.Directions[rng.Intn(dungeon.DirectionCount)]
}
