package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/riverraid/audio"
	"github.com/pthm-cable/riverraid/config"
	"github.com/pthm-cable/riverraid/game"
	"github.com/pthm-cable/riverraid/input"
	"github.com/pthm-cable/riverraid/level"
	"github.com/pthm-cable/riverraid/renderer"
	"github.com/pthm-cable/riverraid/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, driven by the autopilot")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot fly in windowed mode")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	snapshots := flag.Bool("snapshots", false, "Save a snapshot with each bookmark (needs -output-dir)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	scoreFile := flag.String("score-file", "", "High score file (empty = config value or user config dir)")
	soundDir := flag.String("sounds", "assets/sounds", "Directory holding the sound effects")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	table, err := level.Load()
	if err != nil {
		slog.Error("failed to load level", "error", err)
		os.Exit(1)
	}

	scorePath := *scoreFile
	if scorePath == "" {
		scorePath = cfg.Persistence.HighscoreFile
	}
	scores, err := telemetry.NewScoreFile(scorePath)
	if err != nil {
		slog.Error("failed to open score file", "error", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	opts := game.Options{
		Config:    cfg,
		Level:     table,
		Scores:    scores,
		Logger:    logger,
		Output:    output,
		LogStats:  *logStats,
		Snapshots: *snapshots,
	}

	if *headless {
		// Headless mode - simulated clock, no raylib needed
		g := game.New(opts)
		g.SetInput(game.NewAutopilot(g))
		defer g.LogSummary()

		slog.Info("starting headless run",
			"max_frames", *maxFrames,
			"score_file", scores.Path(),
			"output_dir", *outputDir,
		)

		frameMs := 1000 / float64(max(cfg.Screen.TargetFPS, 1))
		var nowMs float64
		for {
			g.Frame(nowMs)
			nowMs += frameMs

			if *maxFrames > 0 && g.Frames() >= *maxFrames {
				slog.Info("max frames reached", "frames", g.Frames())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	sound := audio.NewPlayer(*soundDir, logger)
	defer sound.Unload()

	opts.Renderer = renderer.NewFrameRenderer(cfg)
	opts.Sound = sound
	opts.Input = input.NewKeyboard()

	g := game.New(opts)
	if *autopilot {
		g.SetInput(game.NewAutopilot(g))
	}
	defer g.LogSummary()

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		g.Frame(rl.GetTime() * 1000)
		rl.EndDrawing()

		if *maxFrames > 0 && g.Frames() >= *maxFrames {
			break
		}
	}
}
