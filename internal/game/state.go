package game

import "math"

// State is everything one play session simulates. It is owned by the main
// loop and only mutated through Reset and AdvanceFrame.
type State struct {
	Score        int
	Lives        int
	Nitro        float64
	ScrollOffset float64
	GameOver     bool
	HitCooldown  int
	Enemies      [EnemyCount]Enemy
	Player       Player

	rng     Random
	sprites int
}

// FrameEvents reports what happened during one AdvanceFrame so the caller
// can drive sound without the simulation doing any I/O.
type FrameEvents struct {
	Dodged       int
	Crashes      int
	NitroEngaged bool
	Speed        int
}

// NewState creates a session at its start values. sprites is the number of
// enemy sprite variants available; each car picks one for its lifetime.
func NewState(rng Random, sprites int) *State {
	s := &State{rng: rng, sprites: sprites}
	s.Reset()
	return s
}

// Reset puts every field back to its start value and respawns the cars.
func (s *State) Reset() {
	s.Score = 0
	s.Lives = InitialLives
	s.Nitro = NitroMax
	s.ScrollOffset = 0
	s.GameOver = false
	s.HitCooldown = 0
	s.Player = NewPlayer()
	for i := range s.Enemies {
		s.Enemies[i] = NewEnemy(s.rng, s.sprites)
	}
}

// CurrentBaseSpeed returns the scroll speed without nitro for a score.
func CurrentBaseSpeed(score int) int {
	return BaseSpeed + score/ScorePerStep
}

// AdvanceFrame runs one fixed tick. It is a no-op once the game is over.
func (s *State) AdvanceFrame(in Input) FrameEvents {
	var ev FrameEvents
	if s.GameOver {
		return ev
	}

	speed := CurrentBaseSpeed(s.Score)
	steer := SteerSpeed
	ev.NitroEngaged = in.Nitro && s.Nitro > 0
	if ev.NitroEngaged {
		speed += NitroSpeedGain
		steer = NitroSteer
		s.Nitro = clampF(s.Nitro-NitroDrainPerTick, 0, NitroMax)
	} else if s.Nitro < NitroMax {
		s.Nitro = clampF(s.Nitro+NitroRegenPerTick, 0, NitroMax)
	}
	ev.Speed = speed

	s.ScrollOffset = math.Mod(s.ScrollOffset+float64(speed), ScreenHeight)

	if in.Left {
		s.Player.MoveLeft(steer)
	}
	if in.Right {
		s.Player.MoveRight(steer)
	}

	// Cooldown is set on the first hit, so a second car overlapping in the
	// same tick costs nothing.
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Advance(speed, s.rng) {
			s.Score++
			ev.Dodged++
		}
		if s.HitCooldown == 0 && s.Player.Rect.Intersects(e.Rect) {
			s.hit(e)
			ev.Crashes++
		}
	}

	if s.HitCooldown > 0 {
		s.HitCooldown--
	}
	return ev
}

func (s *State) hit(e *Enemy) {
	s.Lives = max(s.Lives-1, 0)
	s.HitCooldown = HitCooldownTicks
	e.Reset(s.rng)
	if s.Lives == 0 {
		s.GameOver = true
	}
}

// PlayerVisible reports whether the player car is drawn this tick. Under a
// hit cooldown the car flickers in BlinkVisible-tick windows.
func PlayerVisible(hitCooldown int) bool {
	return hitCooldown == 0 || hitCooldown%BlinkPeriod < BlinkVisible
}
