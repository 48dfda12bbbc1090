package game

// Player is the controlled car. It only moves sideways; its row is fixed.
type Player struct {
	Rect Rect
}

func NewPlayer() Player {
	return Player{Rect: RectAround(PlayerStartX, PlayerStartY, CarWidth, CarHeight)}
}

// MoveLeft shifts the car left, stopping at the inner track edge.
func (p *Player) MoveLeft(amount int) {
	p.Rect.X = max(p.Rect.X-amount, TrackLeft)
}

// MoveRight shifts the car right, stopping at the inner track edge.
func (p *Player) MoveRight(amount int) {
	p.Rect.X = min(p.Rect.X+amount, TrackRight-p.Rect.W)
}
