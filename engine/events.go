package engine

import (
	"fmt"

	"github.com/pthm-cable/riverraid/components"
)

// EventType identifies what happened during a tick.
type EventType uint8

const (
	EventKill       EventType = iota + 1 // a player bullet destroyed a target
	EventRefuel                          // the player overlapped a fuel depot this tick
	EventPlayerDied                      // the player crashed
)

func (t EventType) String() string {
	switch t {
	case EventKill:
		return "kill"
	case EventRefuel:
		return "refuel"
	case EventPlayerDied:
		return "player_died"
	default:
		return fmt.Sprintf("event(%d)", t)
	}
}

// Event is one discrete outcome of a tick for the orchestrator to fold into
// score, fuel and lives.
type Event struct {
	Type     EventType
	Kind     components.Kind // killed kind, or what the player crashed into
	EntityID uint32          // the target entity
}

// Kill returns a kill event for a destroyed target.
func Kill(kind components.Kind, id uint32) Event {
	return Event{Type: EventKill, Kind: kind, EntityID: id}
}

// Refuel returns a refuel event for a depot in contact with the player.
func Refuel(id uint32) Event {
	return Event{Type: EventRefuel, Kind: components.KindFuel, EntityID: id}
}

// PlayerDied returns a death event naming what the player hit.
func PlayerDied(cause components.Kind, id uint32) Event {
	return Event{Type: EventPlayerDied, Kind: cause, EntityID: id}
}
