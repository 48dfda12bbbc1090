package game

// Enemy is one oncoming car. The pool is fixed; cars are recycled in place
// instead of being removed.
type Enemy struct {
	Rect        Rect
	SpeedOffset int
	Sprite      int // index into the enemy sprite set, fixed for the car's lifetime
}

// NewEnemy creates a car with one of sprites variants and places it off-screen.
func NewEnemy(r Random, sprites int) Enemy {
	e := Enemy{Rect: Rect{W: CarWidth, H: CarHeight}}
	if sprites > 1 {
		e.Sprite = r.Intn(sprites)
	}
	e.Reset(r)
	return e
}

// Reset moves the car to a random lane above the screen and rerolls its
// speed offset. The spawn range is wide so the three cars arrive staggered.
func (e *Enemy) Reset(r Random) {
	e.Rect.X = randomLane(r)
	e.Rect.Y = randRange(r, SpawnMinY, SpawnMaxY)
	e.SpeedOffset = randRange(r, 0, MaxSpeedOffset)
}

// Advance moves the car down by speed plus its own offset. A car that leaves
// the bottom of the screen is recycled and Advance reports true: it was dodged.
func (e *Enemy) Advance(speed int, r Random) bool {
	e.Rect.Y += speed + e.SpeedOffset
	if e.Rect.Y > ScreenHeight {
		e.Reset(r)
		return true
	}
	return false
}
