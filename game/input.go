package game

import (
	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/engine"
)

// Keys is the input snapshot for one frame.
type Keys = engine.Keys

// Autopilot is a heuristic InputSource for headless runs. It launches games,
// steers toward fuel when low, dodges hostiles ahead and keeps firing.
type Autopilot struct {
	g     *Game
	frame int

	// Tuning
	LookAhead float32 // how far ahead of the player to consider
	DodgeGap  float32 // horizontal clearance kept from hostiles
	FuelLow   float64 // below this, depots are targeted instead of avoided
	PressGap  int     // frames between key presses outside flight
}

// NewAutopilot binds an autopilot to a game.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{
		g:         g,
		LookAhead: 260,
		DodgeGap:  12,
		FuelLow:   60,
		PressGap:  30,
	}
}

// Poll implements InputSource.
func (a *Autopilot) Poll() Keys {
	a.frame++
	switch a.g.State() {
	case StateShowcasing, StateAwaitingLaunch, StateGameOver:
		return Keys{Any: a.frame%a.PressGap == 0}
	case StateActiveFlight:
		return a.fly()
	default:
		return Keys{}
	}
}

func (a *Autopilot) fly() Keys {
	eng := a.g.Engine()
	player, ok := eng.FindPlayer()
	if !ok || player.Destroyed {
		return Keys{}
	}
	px := player.X + player.Width/2
	nose := player.Y + player.Height
	fuel := a.g.Data().Fuel

	var (
		threat, depot       *engine.Entity
		threatDist, depotDy float32
		inLane              *engine.Entity
		laneDist            float32
	)
	data := eng.Data()
	for i := range data {
		e := &data[i]
		if e.ID == player.ID || e.Kind == components.KindPlayerBullet {
			continue
		}
		dy := e.Y - nose
		if dy < -player.Height || dy > a.LookAhead {
			continue
		}

		overlapsLane := e.X < player.X+player.Width+a.DodgeGap && e.X+e.Width > player.X-a.DodgeGap
		if overlapsLane && (inLane == nil || dy < laneDist) {
			inLane, laneDist = e, dy
		}

		switch {
		case e.Kind == components.KindFuel:
			if depot == nil || dy < depotDy {
				depot, depotDy = e, dy
			}
		case overlapsLane && (threat == nil || dy < threatDist):
			threat, threatDist = e, dy
		}
	}

	keys := Keys{}
	target := px
	switch {
	case threat != nil && threat.Kind != components.KindBridge:
		// Step to whichever side of the threat is closer
		left := threat.X - a.DodgeGap - player.Width/2
		right := threat.X + threat.Width + a.DodgeGap + player.Width/2
		if px-left < right-px && left > player.Width/2 {
			target = left
		} else {
			target = right
		}
	case depot != nil && fuel < a.FuelLow:
		target = depot.X + depot.Width/2
	}

	const deadZone = 4
	if target < px-deadZone {
		keys.Left = true
	} else if target > px+deadZone {
		keys.Right = true
	}

	// Never shoot the depot we are heading for
	keys.Fire = inLane == nil || inLane.Kind != components.KindFuel || fuel >= a.FuelLow
	return keys
}
