package game

// Input is one tick's snapshot of the controls.
// Primary is edge-triggered: true only on the tick the click (or Enter) lands.
type Input struct {
	Left    bool
	Right   bool
	Nitro   bool
	Primary bool
	Quit    bool
}
