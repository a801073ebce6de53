// Package level holds the opponent table: the static layout of enemies, fuel depots
// and bridges keyed by world position.
package level

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/riverraid/components"
)

//go:embed opponents.csv
var opponentsCSV []byte

// ErrEmptyTable is returned when a table has no rows.
var ErrEmptyTable = errors.New("opponent table is empty")

// Opponent is one row of the table. It holds only values, so copying an
// Opponent never shares state with the template.
type Opponent struct {
	ID        int     `csv:"id"`        // stable row id, used for spawn idempotence
	Kind      string  `csv:"kind"`      // components.Kind name
	X         float64 `csv:"x"`         // left edge
	Y         float64 `csv:"y"`         // world position where the row appears
	Direction int     `csv:"direction"` // initial heading for patrolling kinds: -1, 0, 1
}

// KindOf returns the parsed kind of a row.
func (o Opponent) KindOf() (components.Kind, bool) {
	return components.ParseKind(o.Kind)
}

// Table is an ordered opponent sequence, sorted by Y then ID.
type Table []Opponent

// Load parses the embedded level.
func Load() (Table, error) {
	return Parse(bytes.NewReader(opponentsCSV))
}

// MustLoad is like Load but panics on error.
func MustLoad() Table {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("level: failed to load embedded table: %v", err))
	}
	return t
}

// Parse reads a CSV table, validates kinds and ids, and sorts it.
func Parse(r io.Reader) (Table, error) {
	var rows []Opponent
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parsing opponent table: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	seen := make(map[int]bool, len(rows))
	for i, row := range rows {
		kind, ok := row.KindOf()
		if !ok || kind.IsBullet() || kind == components.KindPlayer {
			return nil, fmt.Errorf("row %d: unsupported kind %q", i+1, row.Kind)
		}
		if seen[row.ID] {
			return nil, fmt.Errorf("row %d: duplicate id %d", i+1, row.ID)
		}
		seen[row.ID] = true
	}

	t := Table(rows)
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Y != t[j].Y {
			return t[i].Y < t[j].Y
		}
		return t[i].ID < t[j].ID
	})
	return t, nil
}

// Write encodes a table as CSV.
func (t Table) Write(w io.Writer) error {
	if err := gocsv.Marshal([]Opponent(t), w); err != nil {
		return fmt.Errorf("writing opponent table: %w", err)
	}
	return nil
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	copy(out, t)
	return out
}

// Filter returns a new table holding the rows that satisfy keep.
func (t Table) Filter(keep func(Opponent) bool) Table {
	out := make(Table, 0, len(t))
	for _, o := range t {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

// AheadOf keeps rows lying beyond a checkpoint: y - offset > distance.
func (t Table) AheadOf(distance, offset float64) Table {
	return t.Filter(func(o Opponent) bool {
		return o.Y-offset > distance
	})
}

// Window keeps rows in the first screen past a checkpoint:
// distance < y - offset < distance + height.
func (t Table) Window(distance, offset, height float64) Table {
	return t.Filter(func(o Opponent) bool {
		y := o.Y - offset
		return y > distance && y < distance+height
	})
}

// CountKind returns how many rows have the given kind.
func (t Table) CountKind(kind components.Kind) int {
	n := 0
	name := kind.String()
	for _, o := range t {
		if o.Kind == name {
			n++
		}
	}
	return n
}
