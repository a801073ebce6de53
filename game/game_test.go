package game

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/pthm-cable/riverraid/components"
	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/engine"
	"github.com/pthm-cable/riverraid/level"
)

type fakeRenderer struct {
	NopRenderer
	blinks    int
	blackouts int
	draws     int
	started   bool
}

func (r *fakeRenderer) Blink()                           { r.blinks++ }
func (r *fakeRenderer) Blackout()                        { r.blackouts++ }
func (r *fakeRenderer) Draw([]engine.Entity, PlayerData) { r.draws++ }
func (r *fakeRenderer) SetGameStarted(started bool)      { r.started = started }

type fakeSound struct {
	played []string
}

func (s *fakeSound) Play(name string) { s.played = append(s.played, name) }

func (s *fakeSound) count(name string) int {
	n := 0
	for _, p := range s.played {
		if p == name {
			n++
		}
	}
	return n
}

type fakeScores struct {
	best  int
	saves int
}

func (f *fakeScores) Load() (int, error) { return f.best, nil }

func (f *fakeScores) Save(score int) error {
	f.saves++
	f.best = score
	return nil
}

type fakeInput struct {
	keys Keys
}

func (in *fakeInput) Poll() Keys {
	k := in.keys
	in.keys.Any = false // a press lasts one frame
	return k
}

type harness struct {
	g      *Game
	r      *fakeRenderer
	sound  *fakeSound
	scores *fakeScores
	input  *fakeInput
	now    float64
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	h := &harness{
		r:      &fakeRenderer{},
		sound:  &fakeSound{},
		scores: &fakeScores{},
		input:  &fakeInput{},
	}
	h.g = New(Options{
		Config:   cfg,
		Level:    level.MustLoad(),
		Renderer: h.r,
		Sound:    h.sound,
		Scores:   h.scores,
		Input:    h.input,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return h
}

// step runs one frame dt milliseconds after the previous one.
func (h *harness) step(dt float64) {
	h.now += dt
	h.g.Frame(h.now)
}

func (h *harness) press(dt float64) {
	h.input.keys.Any = true
	h.step(dt)
}

// launch takes the game from attract mode into flight.
func (h *harness) launch(t *testing.T) {
	t.Helper()
	h.step(0)
	h.press(16)
	if h.g.State() != StateTransitioningIn {
		t.Fatalf("after key in showcase: state = %s", h.g.State())
	}
	h.step(1000) // boot slide covers 458 at 0.6/ms
	if h.g.State() != StateAwaitingLaunch {
		t.Fatalf("after boot slide: state = %s", h.g.State())
	}
	if !h.g.Engine().PlayerAlive() {
		t.Fatal("player should be placed at the end of the slide")
	}
	h.press(16)
	if h.g.State() != StateActiveFlight {
		t.Fatalf("after launch key: state = %s", h.g.State())
	}
	h.step(16)
}

func (h *harness) killPlayer(t *testing.T) {
	t.Helper()
	player, ok := h.g.Engine().FindPlayer()
	if !ok {
		t.Fatal("no player to kill")
	}
	h.g.Engine().DestroyEntity(player.ID)
}

func TestAwardPoints(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		points    int
		wantLives int
	}{
		{"no crossing", 9000, 500, 3},
		{"crossing 10000 by 60", 9950, 60, 4},
		{"crossing 10000 by 150", 9950, 150, 4},
		{"landing exactly on 10000", 9900, 100, 4},
		{"crossing 20000", 19990, 500, 4},
		{"already past", 10010, 60, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PlayerData{Points: tt.start, Lives: 3}
			got := p.AwardPoints(tt.points, 10000)
			if p.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", p.Lives, tt.wantLives)
			}
			if got != (tt.wantLives == 4) {
				t.Errorf("AwardPoints returned %v", got)
			}
			if p.Points != tt.start+tt.points {
				t.Errorf("points = %d, want %d", p.Points, tt.start+tt.points)
			}
		})
	}
}

func TestFuelClamped(t *testing.T) {
	p := PlayerData{Fuel: 99.9}
	if !p.Refuel(0.2, 100) {
		t.Error("refuel past capacity should report full")
	}
	if p.Fuel != 100 {
		t.Errorf("fuel = %v, want 100", p.Fuel)
	}
	p.Fuel = 0.1
	p.Drain(5)
	if p.Fuel != 0 {
		t.Errorf("fuel = %v, want 0", p.Fuel)
	}
}

func TestAdvanceBridge(t *testing.T) {
	distances := []float64{458, 3316, 6176}
	p := PlayerData{Bridge: 1}

	if p.AdvanceBridge(distances, 1000) {
		t.Error("no new bridge before 3316")
	}
	if !p.AdvanceBridge(distances, 3316) || p.Bridge != 2 {
		t.Errorf("bridge = %d, want 2", p.Bridge)
	}
	if !p.AdvanceBridge(distances, 9000) || p.Bridge != 3 {
		t.Errorf("bridge = %d, want 3", p.Bridge)
	}
	// Never moves back
	p.AdvanceBridge(distances, 0)
	if p.Bridge != 3 {
		t.Errorf("bridge = %d after going back, want 3", p.Bridge)
	}
}

func TestBridgeKillAwardsPointsAndOneBlink(t *testing.T) {
	h := newHarness(t)

	h.g.applyEvents([]engine.Event{engine.Kill(components.KindBridge, 42)})

	if h.g.Data().Points != 500 {
		t.Errorf("points = %d, want 500", h.g.Data().Points)
	}
	if h.r.blinks != 1 {
		t.Errorf("blinks = %d, want 1", h.r.blinks)
	}
	if h.sound.count(SoundEnemyDeath) != 1 {
		t.Errorf("enemyDeath played %d times, want 1", h.sound.count(SoundEnemyDeath))
	}
}

func TestKillPoints(t *testing.T) {
	tests := []struct {
		kind components.Kind
		want int
	}{
		{components.KindHelicopter, 60},
		{components.KindShootingHelicopter, 150},
		{components.KindShip, 30},
		{components.KindBalloon, 60},
		{components.KindPlane, 100},
		{components.KindTank, 250},
		{components.KindFuel, 80},
		{components.KindBridge, 500},
		{components.KindUnknown, 0},
		{components.KindPlayerBullet, 0},
		{components.KindPlayer, 0},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			h := newHarness(t)
			h.g.playerKilled(tt.kind, 1)
			if h.g.Data().Points != tt.want {
				t.Errorf("points = %d, want %d", h.g.Data().Points, tt.want)
			}
		})
	}
}

func TestKillGrantsExtraLife(t *testing.T) {
	h := newHarness(t)
	h.g.data.Points = 9950
	lives := h.g.data.Lives

	h.g.applyEvents([]engine.Event{engine.Kill(components.KindHelicopter, 7)})

	if h.g.Data().Points != 10010 {
		t.Errorf("points = %d, want 10010", h.g.Data().Points)
	}
	if h.g.Data().Lives != lives+1 {
		t.Errorf("lives = %d, want %d", h.g.Data().Lives, lives+1)
	}
}

func TestRefuelEvents(t *testing.T) {
	h := newHarness(t)
	h.g.data.Fuel = 50

	h.g.applyEvents([]engine.Event{engine.Refuel(3), engine.Refuel(3), engine.Refuel(3)})

	if math.Abs(h.g.Data().Fuel-50.6) > 1e-9 {
		t.Errorf("fuel = %v, want 50.6", h.g.Data().Fuel)
	}
	if h.sound.count(SoundTanking) != 3 {
		t.Errorf("tanking played %d times, want 3", h.sound.count(SoundTanking))
	}
	if h.g.Data().Points != 80 {
		t.Errorf("points = %d, want 80 for the first contact only", h.g.Data().Points)
	}

	h.g.data.Fuel = 99.9
	h.g.applyEvents([]engine.Event{engine.Refuel(3)})
	if h.g.Data().Fuel != 100 || h.sound.count(SoundTankingFull) != 1 {
		t.Errorf("fuel = %v, tankingFull = %d", h.g.Data().Fuel, h.sound.count(SoundTankingFull))
	}
}

func TestDepotScoresOnce(t *testing.T) {
	tests := []struct {
		name   string
		events []engine.Event
		want   int
	}{
		{"shot", []engine.Event{engine.Kill(components.KindFuel, 3)}, 80},
		{"touched then shot", []engine.Event{engine.Refuel(3), engine.Refuel(3), engine.Kill(components.KindFuel, 3)}, 80},
		{"two depots", []engine.Event{engine.Refuel(3), engine.Kill(components.KindFuel, 4)}, 160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.g.data.Fuel = 50
			h.g.applyEvents(tt.events)
			if h.g.Data().Points != tt.want {
				t.Errorf("points = %d, want %d", h.g.Data().Points, tt.want)
			}
		})
	}
}

func TestLaunchSequence(t *testing.T) {
	h := newHarness(t)
	h.launch(t)

	if h.sound.count(SoundBoot) != 1 || h.sound.count(SoundFlightStart) != 1 {
		t.Errorf("sounds = %v", h.sound.played)
	}
	if !h.r.started {
		t.Error("renderer should be told the game started")
	}
	if d := h.g.Engine().Distance(); d < 458 {
		t.Errorf("distance = %v, want at least the first bridge", d)
	}
	if h.g.Engine().Showcasing() {
		t.Error("engine still showcasing during flight")
	}
}

func TestDeathPauseFreezesPlay(t *testing.T) {
	h := newHarness(t)
	h.launch(t)

	player, ok := h.g.Engine().FindPlayer()
	if !ok {
		t.Fatal("no player after launch")
	}
	bullet, ok := h.g.Engine().CreateBullet(player.ID)
	if !ok {
		t.Fatal("player could not fire")
	}

	h.killPlayer(t)
	h.step(16)
	if h.g.State() != StatePlayerDead {
		t.Fatalf("state = %s, want player_dead", h.g.State())
	}

	// A tank right in the path of the bullet still in flight
	tanks := h.g.Engine().CountKind(components.KindTank)
	h.g.Engine().PutEnemiesData(level.Table{
		{ID: 9001, Kind: "tank", X: float64(bullet.X) - 14, Y: float64(bullet.Y) + 20},
	})
	if h.g.Engine().CountKind(components.KindTank) != tanks+1 {
		t.Fatal("tank was not admitted")
	}
	points := h.g.Data().Points
	distance := h.g.Engine().Distance()
	kills := h.sound.count(SoundEnemyDeath)

	for i := 0; i < 10; i++ {
		h.step(16)
	}

	if h.g.State() != StatePlayerDead {
		t.Fatalf("state = %s, want player_dead", h.g.State())
	}
	if h.g.Data().Points != points {
		t.Errorf("points = %d during death pause, want %d", h.g.Data().Points, points)
	}
	if h.g.Engine().CountKind(components.KindTank) != tanks+1 {
		t.Error("tank destroyed during death pause")
	}
	if h.g.Engine().Distance() != distance {
		t.Errorf("distance moved during death pause: %v -> %v", distance, h.g.Engine().Distance())
	}
	if h.sound.count(SoundEnemyDeath) != kills {
		t.Error("kill sound played during death pause")
	}
}

func TestDeathCostsOneLife(t *testing.T) {
	h := newHarness(t)
	h.launch(t)
	h.g.data.Fuel = 40

	h.killPlayer(t)
	h.step(16)

	if h.g.State() != StatePlayerDead {
		t.Fatalf("state = %s, want player_dead", h.g.State())
	}
	if h.g.Data().Lives != 2 {
		t.Errorf("lives = %d, want 2", h.g.Data().Lives)
	}
	if h.g.Data().Fuel != 100 {
		t.Errorf("fuel = %v, want 100", h.g.Data().Fuel)
	}

	// Further frames of the pause book nothing more
	h.step(16)
	h.step(16)
	if h.g.Data().Lives != 2 {
		t.Errorf("lives = %d after pause frames, want 2", h.g.Data().Lives)
	}

	h.step(1000)
	if h.g.State() != StateTransitioningIntoBridgeSegment {
		t.Fatalf("state = %s after pause, want transitioning_into_bridge_segment", h.g.State())
	}
	h.step(2000) // 458 at 0.3/ms
	if h.g.State() != StateAwaitingLaunch {
		t.Fatalf("state = %s after respawn slide, want awaiting_launch", h.g.State())
	}
	if h.scores.saves != 0 {
		t.Errorf("saves = %d, want 0 before game over", h.scores.saves)
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	h := newHarness(t)
	h.launch(t)
	h.g.data.Lives = 0
	h.g.data.Points = 1234

	h.killPlayer(t)
	h.step(16)

	if h.g.Data().Lives != -1 {
		t.Fatalf("lives = %d, want -1", h.g.Data().Lives)
	}
	if h.scores.saves != 1 || h.scores.best != 1234 {
		t.Errorf("saves = %d best = %d, want 1 save of 1234", h.scores.saves, h.scores.best)
	}

	h.step(1000)
	if h.g.State() != StateGameOver {
		t.Fatalf("state = %s, want game_over", h.g.State())
	}
	h.step(16)
	h.step(16)
	if h.scores.saves != 1 {
		t.Errorf("saves = %d after more frames, want 1", h.scores.saves)
	}
	if h.g.HallOfFame().TopPoints() != 1234 {
		t.Errorf("hall of fame top = %d, want 1234", h.g.HallOfFame().TopPoints())
	}

	// A key starts the next game
	h.press(16)
	data := h.g.Data()
	if data.GameID != 2 || data.Points != 0 || data.Lives != 3 || data.Fuel != 100 || data.Bridge != 1 {
		t.Errorf("new game sheet = %+v", data)
	}
	if data.HighScore != 1234 {
		t.Errorf("high score = %d, want 1234 carried over", data.HighScore)
	}
	if h.g.Engine().GameID() != 2 {
		t.Errorf("engine game id = %d, want 2", h.g.Engine().GameID())
	}
	if h.g.State() != StateTransitioningIn {
		t.Errorf("state = %s, want transitioning_in", h.g.State())
	}
}

func TestGameOverWithoutRecordDoesNotSave(t *testing.T) {
	h := newHarness(t)
	h.launch(t)
	h.g.data.HighScore = 5000
	h.g.data.Lives = 0
	h.g.data.Points = 100

	h.killPlayer(t)
	h.step(16)

	if h.scores.saves != 0 {
		t.Errorf("saves = %d, want 0", h.scores.saves)
	}
	if h.g.Data().HighScore != 5000 {
		t.Errorf("high score = %d, want 5000", h.g.Data().HighScore)
	}
}

func TestEmptyTankKillsPlayer(t *testing.T) {
	h := newHarness(t)
	h.launch(t)
	h.g.data.Fuel = 0.01

	h.step(100) // drains 0.2
	if h.g.Engine().PlayerAlive() {
		t.Fatal("player should be destroyed when the tank runs dry")
	}
	h.step(16)
	if h.g.State() != StatePlayerDead || h.g.Data().Lives != 2 {
		t.Errorf("state = %s lives = %d, want player_dead with 2", h.g.State(), h.g.Data().Lives)
	}
}

func TestLowFuelWarning(t *testing.T) {
	h := newHarness(t)
	h.launch(t)
	h.g.data.Fuel = 20
	before := h.sound.count(SoundLowFuel)

	h.step(16)
	if h.sound.count(SoundLowFuel) != before+1 {
		t.Errorf("lowFuel played %d times, want %d", h.sound.count(SoundLowFuel), before+1)
	}
}

func TestShowcaseLoops(t *testing.T) {
	h := newHarness(t)
	h.step(0)
	h.step(10000) // distance 1000
	if d := h.g.Engine().Distance(); math.Abs(float64(d)-1000) > 1e-3 {
		t.Errorf("distance = %v, want 1000", d)
	}
	h.step(300000) // past the world end
	if d := h.g.Engine().Distance(); d != 0 {
		t.Errorf("distance = %v after the end, want 0", d)
	}
	if h.g.State() != StateShowcasing {
		t.Errorf("state = %s, want showcasing", h.g.State())
	}
}

func TestAutopilotPlays(t *testing.T) {
	h := newHarness(t)
	h.g.SetInput(NewAutopilot(h.g))

	for i := 0; i < 3000; i++ {
		h.step(16)
	}
	if h.g.Data().GameID == 1 && h.g.State() == StateShowcasing {
		t.Error("autopilot never left attract mode")
	}
	if h.g.Engine().PlayerShots() == 0 && h.g.HallOfFame().Size() == 0 {
		t.Error("autopilot never fired")
	}
}
