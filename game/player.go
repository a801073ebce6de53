package game

// PlayerData is the score sheet the game owns and the HUD shows.
type PlayerData struct {
	Points    int
	Lives     int     // -1 means game over
	Fuel      float64 // 0..max, continuous
	HighScore int
	GameID    int
	Bridge    int // 1-based checkpoint index
}

// freshPlayerData returns the sheet for the start of a game.
func freshPlayerData(gameID, lives int, fuel float64, highScore int) PlayerData {
	return PlayerData{
		Lives:     lives,
		Fuel:      fuel,
		HighScore: highScore,
		GameID:    gameID,
		Bridge:    1,
	}
}

// AwardPoints adds points and grants an extra life each time the total
// crosses a multiple of every. Reports whether a life was granted.
func (p *PlayerData) AwardPoints(points, every int) bool {
	old := p.Points
	p.Points += points
	if every > 0 && old%every > p.Points%every {
		p.Lives++
		return true
	}
	return false
}

// Refuel adds step, clamped to capacity. Reports whether the tank is full.
func (p *PlayerData) Refuel(step, capacity float64) bool {
	p.Fuel = min(capacity, p.Fuel+step)
	return p.Fuel == capacity
}

// Drain removes amount, clamped at zero.
func (p *PlayerData) Drain(amount float64) {
	p.Fuel = max(0, p.Fuel-amount)
}

// AdvanceBridge moves the checkpoint index up to the last bridge at or behind
// distance. It never moves back.
func (p *PlayerData) AdvanceBridge(distances []float64, distance float64) bool {
	bridge := p.Bridge
	for i, d := range distances {
		if d > distance {
			break
		}
		bridge = max(bridge, i+1)
	}
	if bridge == p.Bridge {
		return false
	}
	p.Bridge = bridge
	return true
}
