package game

// laneX holds the three fixed horizontal slots enemy cars drive in.
var laneX = [3]int{110, 175, 245}

// Lanes returns the lane x positions, left to right.
func Lanes() [3]int {
	return laneX
}

func randomLane(r Random) int {
	return laneX[r.Intn(len(laneX))]
}
