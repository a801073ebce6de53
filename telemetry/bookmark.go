package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkKillStreak    BookmarkType = "kill_streak"
	BookmarkBridgeReached BookmarkType = "bridge_reached"
	BookmarkFuelCrisis    BookmarkType = "fuel_crisis"
	BookmarkDeathCluster  BookmarkType = "death_cluster"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" yaml:"type"`
	WindowEndMs float64      `csv:"window_end_ms" yaml:"window_end_ms"`
	GameID      int          `csv:"game_id" yaml:"game_id"`
	Description string       `csv:"description" yaml:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"window_end_ms", b.WindowEndMs,
		"game_id", b.GameID,
		"description", b.Description,
	)
}

const (
	fuelCrisisLevel  = 10.0
	deathClusterSpan = 3
	deathClusterMin  = 2
)

// BookmarkDetector detects interesting moments in a run.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking, reset when a new game starts
	gameID     int
	bestBridge int
	inCrisis   bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < deathClusterSpan {
		historySize = deathClusterSpan
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		gameID:      -1,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	if stats.GameID != bd.gameID {
		bd.resetGame(stats.GameID)
	}

	var bookmarks []Bookmark

	// Kill streak: kills > 2x rolling average
	if b := bd.checkKillStreak(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// New furthest checkpoint in this game
	if b := bd.checkBridgeReached(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Fuel crisis: nearly ran dry and lived
	if b := bd.checkFuelCrisis(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Death cluster: several deaths in consecutive windows
	if b := bd.checkDeathCluster(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) resetGame(gameID int) {
	bd.gameID = gameID
	bd.bestBridge = 0
	bd.inCrisis = false
	bd.historyIdx = 0
	bd.historyFull = false
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// recent returns up to n of the latest windows, oldest first.
func (bd *BookmarkDetector) recent(n int) []WindowStats {
	history := bd.getHistory()
	if n > len(history) {
		n = len(history)
	}
	out := make([]WindowStats, 0, n)
	for i := n; i > 0; i-- {
		idx := (bd.historyIdx - i + bd.historySize) % bd.historySize
		out = append(out, bd.history[idx])
	}
	return out
}

func (bd *BookmarkDetector) checkKillStreak(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Kills
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Kills) > avg*2.0 && stats.Kills >= 5 {
		return &Bookmark{
			Type:        BookmarkKillStreak,
			WindowEndMs: stats.WindowEndMs,
			GameID:      stats.GameID,
			Description: fmt.Sprintf("%d kills is %.1fx average (%.1f)", stats.Kills, float64(stats.Kills)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkBridgeReached(stats WindowStats) *Bookmark {
	if stats.Bridge <= bd.bestBridge {
		return nil
	}
	first := bd.bestBridge == 0
	bd.bestBridge = stats.Bridge
	// The starting checkpoint is not an achievement
	if first && stats.Bridge <= 1 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkBridgeReached,
		WindowEndMs: stats.WindowEndMs,
		GameID:      stats.GameID,
		Description: fmt.Sprintf("Reached bridge %d at distance %.0f", stats.Bridge, stats.Distance),
	}
}

func (bd *BookmarkDetector) checkFuelCrisis(stats WindowStats) *Bookmark {
	low := stats.MinFuel < fuelCrisisLevel && stats.Deaths == 0
	if !low {
		bd.inCrisis = false
		return nil
	}
	// Trigger once per crisis
	if bd.inCrisis {
		return nil
	}
	bd.inCrisis = true
	return &Bookmark{
		Type:        BookmarkFuelCrisis,
		WindowEndMs: stats.WindowEndMs,
		GameID:      stats.GameID,
		Description: fmt.Sprintf("Fuel dropped to %.1f and recovered to %.1f", stats.MinFuel, stats.Fuel),
	}
}

func (bd *BookmarkDetector) checkDeathCluster(stats WindowStats) *Bookmark {
	if stats.Deaths == 0 {
		return nil
	}
	deaths := stats.Deaths
	for _, h := range bd.recent(deathClusterSpan - 1) {
		deaths += h.Deaths
	}
	if deaths < deathClusterMin {
		return nil
	}
	// Only the window that completes the cluster reports it
	if deaths-stats.Deaths >= deathClusterMin {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkDeathCluster,
		WindowEndMs: stats.WindowEndMs,
		GameID:      stats.GameID,
		Description: fmt.Sprintf("%d deaths within %d windows", deaths, deathClusterSpan),
	}
}
