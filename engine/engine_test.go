package engine

import (
	"io"
	"log/slog"
	"testing"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/level"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return New(cfg, Session{GameID: 1, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func countEvents(events []Event, typ EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func TestTankAdmittedOnceWhenScrolledIntoView(t *testing.T) {
	e := newTestEngine(t)
	e.SetDistance(-200)
	e.PutEnemiesData(level.Table{{ID: 7, Kind: "tank", X: 300, Y: 500, Direction: 1}})

	if got := e.CountKind(components.KindTank); got != 0 {
		t.Fatalf("tank admitted before entering view: %d", got)
	}

	e.SetDistance(-99) // 500 - 600 = -100 has been passed
	if got := len(e.TestNewEnemy()); got != 1 {
		t.Fatalf("TestNewEnemy = %d candidates, want 1", got)
	}

	seen := map[uint32]bool{}
	for i := 0; i < 5; i++ {
		e.Tick(1, Keys{})
		e.SpawnEnemy(e.TestNewEnemy())
		for _, ent := range e.Data() {
			seen[ent.ID] = true
		}
	}

	if got := e.CountKind(components.KindTank); got != 1 {
		t.Errorf("tanks = %d, want exactly 1", got)
	}
	if len(seen) != 1 {
		t.Errorf("ids seen = %v, want a single stable id", seen)
	}

	// Direct re-admission of the same row is a no-op
	e.SpawnEnemy(level.Table{{ID: 7, Kind: "tank", X: 300, Y: 500}})
	if got := e.CountKind(components.KindTank); got != 1 {
		t.Errorf("duplicate spawn created a second tank: %d", got)
	}
}

func TestBulletKillsPlane(t *testing.T) {
	e := newTestEngine(t)
	e.BeginGame(level.Table{{ID: 1, Kind: "plane", X: 390, Y: 260}}, 400)

	var events []Event
	events = append(events, e.Tick(1, Keys{Fire: true})...)
	for i := 0; i < 4; i++ {
		events = append(events, e.Tick(1, Keys{})...)
	}

	kills := 0
	for _, ev := range events {
		if ev.Type == EventKill {
			kills++
			if ev.Kind != components.KindPlane {
				t.Errorf("kill kind = %v, want plane", ev.Kind)
			}
		}
	}
	if kills != 1 {
		t.Fatalf("kills = %d, want 1 (events %+v)", kills, events)
	}
	if e.CountKind(components.KindPlane) != 0 {
		t.Error("plane still alive")
	}
	if e.CountKind(components.KindPlayerBullet) != 0 {
		t.Error("bullet still alive")
	}
	if !e.PlayerAlive() {
		t.Error("player should be unharmed")
	}
}

func TestRefuelEveryOverlappingTick(t *testing.T) {
	e := newTestEngine(t)
	e.BeginGame(level.Table{{ID: 1, Kind: "fuel", X: 386, Y: 190}}, 400)

	for i := 0; i < 3; i++ {
		events := e.Tick(1, Keys{})
		if got := countEvents(events, EventRefuel); got != 1 {
			t.Fatalf("tick %d: refuels = %d, want 1", i, got)
		}
		if e.CountKind(components.KindFuel) != 1 {
			t.Fatalf("tick %d: fuel depot removed", i)
		}
	}
	if !e.PlayerAlive() {
		t.Error("refuelling must not kill the player")
	}
}

func TestSingleBulletInFlight(t *testing.T) {
	e := newTestEngine(t)
	pid := e.BeginGame(nil, 400)

	first, ok := e.CreateBullet(pid)
	if !ok {
		t.Fatal("first CreateBullet failed")
	}
	if _, ok := e.CreateBullet(pid); ok {
		t.Fatal("second CreateBullet succeeded while one is in flight")
	}

	// Holding fire does not add another
	e.Tick(1, Keys{Fire: true})
	if got := e.CountKind(components.KindPlayerBullet); got != 1 {
		t.Errorf("player bullets = %d, want 1", got)
	}

	e.DestroyEntity(first.ID)
	if _, ok := e.CreateBullet(pid); !ok {
		t.Error("CreateBullet should succeed once the first bullet is gone")
	}
}

func TestBulletSlotFreedWhenBulletLeavesView(t *testing.T) {
	e := newTestEngine(t)
	pid := e.BeginGame(nil, 400)
	if _, ok := e.CreateBullet(pid); !ok {
		t.Fatal("CreateBullet failed")
	}
	for i := 0; i < 100 && e.CountKind(components.KindPlayerBullet) > 0; i++ {
		e.Tick(1, Keys{})
	}
	if e.CountKind(components.KindPlayerBullet) != 0 {
		t.Fatal("bullet never despawned")
	}
	if _, ok := e.CreateBullet(pid); !ok {
		t.Error("slot not released after despawn")
	}
}

func TestCollisionIdempotentWithinTick(t *testing.T) {
	e := newTestEngine(t)
	pid := e.BeginGame(level.Table{
		{ID: 1, Kind: "helicopter", X: 390, Y: 250},
		{ID: 2, Kind: "helicopter", X: 390, Y: 251},
	}, 400)
	if _, ok := e.CreateBullet(pid); !ok {
		t.Fatal("CreateBullet failed")
	}

	var lowest uint32
	for _, ent := range e.Data() {
		if ent.Kind == components.KindHelicopter && (lowest == 0 || ent.ID < lowest) {
			lowest = ent.ID
		}
	}

	events := e.Tick(1, Keys{})
	if got := countEvents(events, EventKill); got != 1 {
		t.Fatalf("kills = %d, want 1: one bullet cannot destroy two targets", got)
	}
	if events[0].EntityID != lowest {
		t.Errorf("killed id %d, want lowest id %d", events[0].EntityID, lowest)
	}
	if got := e.CountKind(components.KindHelicopter); got != 1 {
		t.Errorf("helicopters = %d, want 1", got)
	}
}

func TestCollisionOrderDeterministic(t *testing.T) {
	rows := level.Table{
		{ID: 1, Kind: "helicopter", X: 390, Y: 250},
		{ID: 2, Kind: "ship", X: 370, Y: 251},
		{ID: 3, Kind: "balloon", X: 392, Y: 249},
	}
	run := func() []Event {
		e := newTestEngine(t)
		pid := e.BeginGame(rows, 400)
		e.CreateBullet(pid)
		return e.Tick(1, Keys{})
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ: %+v vs %+v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("event %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCrashWrecksPlayer(t *testing.T) {
	e := newTestEngine(t)
	e.BeginGame(level.Table{{ID: 1, Kind: "helicopter", X: 390, Y: 215}}, 400)

	events := e.Tick(1, Keys{})
	if got := countEvents(events, EventPlayerDied); got != 1 {
		t.Fatalf("deaths = %d, want 1", got)
	}
	if e.PlayerAlive() {
		t.Error("PlayerAlive should be false after a crash")
	}
	p, ok := e.FindPlayer()
	if !ok || !p.Destroyed {
		t.Errorf("wreck should stay in the live set: %+v, %v", p, ok)
	}
	if e.CountKind(components.KindHelicopter) != 0 {
		t.Error("helicopter should be removed by the crash")
	}

	d := e.Distance()
	if events := e.Tick(1, Keys{Up: true}); len(events) != 0 {
		t.Errorf("wreck produced events: %+v", events)
	}
	if e.Distance() != d {
		t.Error("distance should hold while the player is dead")
	}
}

func TestCrashIntoBridgeKeepsBridge(t *testing.T) {
	e := newTestEngine(t)
	e.BeginGame(level.Table{{ID: 1, Kind: "bridge", X: 336, Y: 215}}, 400)

	events := e.Tick(1, Keys{})
	if len(events) != 1 || events[0].Type != EventPlayerDied || events[0].Kind != components.KindBridge {
		t.Fatalf("events = %+v, want one death by bridge", events)
	}
	if e.CountKind(components.KindBridge) != 1 {
		t.Error("bridge should survive a crash")
	}
}

func TestDestroyEntity(t *testing.T) {
	e := newTestEngine(t)
	pid := e.BeginGame(nil, 400)

	e.DestroyEntity(9999) // unknown: no-op
	if !e.PlayerAlive() {
		t.Fatal("unknown id destroyed the player")
	}

	e.DestroyEntity(pid)
	if e.PlayerAlive() {
		t.Error("PlayerAlive after DestroyEntity")
	}
	if _, ok := e.FindPlayer(); ok {
		t.Error("FindPlayer found a destroyed player")
	}
	e.DestroyEntity(pid) // twice: no-op
}

func TestDataIsSnapshot(t *testing.T) {
	e := newTestEngine(t)
	e.BeginGame(level.Table{
		{ID: 1, Kind: "ship", X: 100, Y: 400},
		{ID: 2, Kind: "tank", X: 200, Y: 450},
	}, 400)

	data := e.Data()
	for i := 1; i < len(data); i++ {
		if data[i].ID <= data[i-1].ID {
			t.Fatalf("snapshot not ordered by id: %+v", data)
		}
	}
	x := data[0].X
	data[0].X = -1000
	if e.Data()[0].X != x {
		t.Error("mutating the snapshot changed engine state")
	}
}

func TestPutEnemiesDataCopiesRows(t *testing.T) {
	e := newTestEngine(t)
	rows := level.Table{{ID: 1, Kind: "tank", X: 300, Y: 5000, Direction: 1}}
	e.PutEnemiesData(rows)
	rows[0].Kind = "bogus"
	rows[0].Y = 0

	e.SetDistance(4500)
	e.Tick(1, Keys{})
	if e.CountKind(components.KindTank) != 1 {
		t.Error("engine should spawn from its own copy of the rows")
	}
}

func TestDespawnBehindViewport(t *testing.T) {
	e := newTestEngine(t)
	e.PutEnemiesData(level.Table{{ID: 1, Kind: "ship", X: 100, Y: 100}})
	if e.Count() != 1 {
		t.Fatalf("count = %d, want 1", e.Count())
	}

	e.SetDistance(200)
	e.UpdateEntities(0)
	if e.Count() != 0 {
		t.Error("ship behind the trailing edge should despawn")
	}

	// Scrolled-past rows are never admitted later
	e.SetDistance(0)
	e.SpawnEnemy(e.TestNewEnemy())
	if e.Count() != 0 {
		t.Error("despawned row came back")
	}
}

func TestUpdateEntitiesShifts(t *testing.T) {
	e := newTestEngine(t)
	e.PutEnemiesData(level.Table{{ID: 1, Kind: "ship", X: 100, Y: 300}})
	e.UpdateEntities(25)
	if got := e.Data()[0].Y; got != 325 {
		t.Errorf("y = %v, want 325", got)
	}
}

func TestIDsNeverReused(t *testing.T) {
	e := newTestEngine(t)
	first := e.BeginGame(level.Table{{ID: 1, Kind: "ship", X: 100, Y: 300}}, 400)
	maxID := first
	for _, ent := range e.Data() {
		maxID = max(maxID, ent.ID)
	}

	second := e.BeginGame(level.Table{{ID: 1, Kind: "ship", X: 100, Y: 300}}, 400)
	if second <= maxID {
		t.Errorf("player id %d reused or went backwards (max before %d)", second, maxID)
	}
	for _, ent := range e.Data() {
		if ent.ID <= maxID {
			t.Errorf("entity id %d reused", ent.ID)
		}
	}
}

func TestSteeringMovesDistanceAndClamps(t *testing.T) {
	e := newTestEngine(t)
	e.BeginGame(nil, 400)

	for i := 0; i < 500; i++ {
		e.Tick(1, Keys{Right: true, Up: true})
	}
	p, _ := e.FindPlayer()
	if p.X != 800-32 {
		t.Errorf("x = %v, want clamped at right edge %v", p.X, 800-32)
	}
	if e.Distance() < 1000 {
		t.Errorf("distance = %v, want > 1000 after 500 fast ticks", e.Distance())
	}
	if d := p.Y - (e.Distance() + 202); d > 1e-3 || d < -1e-3 {
		t.Errorf("player y = %v, want distance + 202", p.Y)
	}
}

func TestShootingEnemyFiresOnce(t *testing.T) {
	e := newTestEngine(t)
	e.BeginGame(level.Table{{ID: 1, Kind: "tank", X: 100, Y: 260}}, 400)

	e.Tick(1, Keys{})
	if got := e.CountKind(components.KindEnemyBullet); got != 1 {
		t.Fatalf("enemy bullets = %d, want 1", got)
	}
	bullet := e.Data()
	var vx float32
	for _, ent := range bullet {
		if ent.Kind == components.KindEnemyBullet {
			vx = ent.VX
		}
	}
	if vx <= 0 {
		t.Errorf("bullet vx = %v, want toward the player on the right", vx)
	}

	for i := 0; i < 5; i++ {
		e.Tick(1, Keys{})
	}
	if got := e.CountKind(components.KindEnemyBullet); got != 1 {
		t.Errorf("enemy bullets = %d, want still 1", got)
	}
}

func TestShowcaseIgnoresPlayerAndCollisions(t *testing.T) {
	e := newTestEngine(t)
	e.PutEnemiesData(level.Table{{ID: 1, Kind: "helicopter", X: 390, Y: 215}})
	e.AddPlayer(400)

	if !e.Showcasing() {
		t.Fatal("new engine should start in showcase mode")
	}
	events := e.Tick(1, Keys{Fire: true})
	if len(events) != 0 {
		t.Errorf("showcase tick produced events: %+v", events)
	}
	if e.CountKind(components.KindPlayerBullet) != 0 {
		t.Error("showcase should ignore input")
	}
}

func TestUnknownKindSkipped(t *testing.T) {
	e := newTestEngine(t)
	e.PutEnemiesData(level.Table{
		{ID: 1, Kind: "submarine", X: 100, Y: 300},
		{ID: 2, Kind: "ship", X: 100, Y: 320},
	})
	if e.Count() != 1 {
		t.Errorf("count = %d, want only the ship", e.Count())
	}
}
