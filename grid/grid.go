package grid

import (
	"fmt"
	"strings"
)

// Grid is a Height×Width board of Cells. Topology (cell types) is fixed
// after construction; exploration annotations (cell states and labels)
// are mutated in place by at most one active search at a time.
type Grid struct {
	Height, Width int
	cells         [][]Cell
}

// New constructs an all-Space blank grid of the given dimensions.
// Generators carve topology into it via SetType before any search runs.
// Returns ErrEmptyGrid if either dimension is < 1.
// Complexity: O(W×H) time and memory.
func New(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, height, width)
	}
	cells := make([][]Cell, height)
	for r := 0; r < height; r++ {
		cells[r] = make([]Cell, width)
	}

	return &Grid{Height: height, Width: width, cells: cells}, nil
}

// Parse constructs a Grid from its text template encoding:
// '#'=Wall, 'A'=Start, 'B'=Goal, ' '=Space, one line per row.
// Policy decisions (strict, fail-fast):
//   - ErrEmptyTemplate if the template has no rows or no columns.
//   - ErrNonRectangular if any row length differs from the first.
//   - ErrMalformedTemplate (with rune and position) for any other character.
//   - ErrMultipleStart / ErrMultipleGoal on a second 'A' / 'B'.
//   - ErrNoStart / ErrNoGoal if either marker is absent.
//
// Complexity: O(W×H) time and memory.
func Parse(template string) (*Grid, error) {
	template = strings.ReplaceAll(template, "\r\n", "\n")
	template = strings.TrimRight(template, "\n")
	if template == "" {
		return nil, ErrEmptyTemplate
	}
	rows := strings.Split(template, "\n")
	w := len([]rune(rows[0]))
	if w == 0 {
		return nil, ErrEmptyTemplate
	}

	g, err := New(len(rows), w)
	if err != nil {
		return nil, err
	}
	starts, goals := 0, 0
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(runes), w)
		}
		for c, ch := range runes {
			switch ch {
			case runeWall:
				g.cells[r][c] = Cell{Type: Wall, State: Unreachable}
			case runeStart:
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second 'A' at (%d,%d)", ErrMultipleStart, r, c)
				}
				g.cells[r][c] = Cell{Type: Start}
			case runeGoal:
				goals++
				if goals > 1 {
					return nil, fmt.Errorf("%w: second 'B' at (%d,%d)", ErrMultipleGoal, r, c)
				}
				g.cells[r][c] = Cell{Type: Goal}
			case runeSpace:
				g.cells[r][c] = Cell{Type: Space}
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrMalformedTemplate, ch, r, c)
			}
		}
	}
	if starts == 0 {
		return nil, ErrNoStart
	}
	if goals == 0 {
		return nil, ErrNoGoal
	}

	return g, nil
}

// InBounds reports whether s lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(s State) bool {
	return s.Row >= 0 && s.Row < g.Height && s.Col >= 0 && s.Col < g.Width
}

// moveOffsets lists the four orthogonal moves in the fixed expansion
// order Up, Down, Left, Right. This order is the deterministic tie-break
// for uninformed strategies: of several equal-priority neighbors, the one
// listed first here is discovered first.
var moveOffsets = [4]struct {
	action Action
	dr, dc int
}{
	{Up, -1, 0},
	{Down, 1, 0},
	{Left, 0, -1},
	{Right, 0, 1},
}

// Neighbors returns up to four walkable moves from s, in fixed
// Up/Down/Left/Right order, filtered to in-bounds, non-Wall targets.
// Complexity: O(1).
func (g *Grid) Neighbors(s State) []Move {
	moves := make([]Move, 0, len(moveOffsets))
	for _, d := range moveOffsets {
		t := State{Row: s.Row + d.dr, Col: s.Col + d.dc}
		if !g.InBounds(t) || g.cells[t.Row][t.Col].Type == Wall {
			continue
		}
		moves = append(moves, Move{Action: d.action, To: t})
	}

	return moves
}

// Cell returns a copy of the cell at s.
// Precondition: s is in bounds (guaranteed by Neighbors for search use).
func (g *Grid) Cell(s State) Cell {
	return g.cells[s.Row][s.Col]
}

// TypeAt returns the fixed topology of the cell at s.
func (g *Grid) TypeAt(s State) CellType {
	return g.cells[s.Row][s.Col].Type
}

// SetType replaces the topology of the cell at s. Turning a cell into a
// Wall pins its state to Unreachable; turning a Wall back into a
// walkable type clears it to Unexplored. Intended for generators and
// external editors, not for the search engine.
func (g *Grid) SetType(s State, t CellType) {
	c := &g.cells[s.Row][s.Col]
	c.Type = t
	if t == Wall {
		c.State = Unreachable
		c.Label = ""
	} else if c.State == Unreachable {
		c.State = Unexplored
	}
}

// StateAt returns the exploration annotation of the cell at s.
func (g *Grid) StateAt(s State) CellState {
	return g.cells[s.Row][s.Col].State
}

// SetState replaces the exploration annotation of the cell at s.
// Wall cells are permanently Unreachable; attempts to re-annotate them
// are ignored rather than corrupting the invariant.
func (g *Grid) SetState(s State, cs CellState) {
	if g.cells[s.Row][s.Col].Type == Wall {
		return
	}
	g.cells[s.Row][s.Col].State = cs
}

// LabelAt returns the display label of the cell at s.
func (g *Grid) LabelAt(s State) string {
	return g.cells[s.Row][s.Col].Label
}

// SetLabel attaches a display label (e.g. a frontier priority) to the
// cell at s.
func (g *Grid) SetLabel(s State, label string) {
	g.cells[s.Row][s.Col].Label = label
}

// Start scans for the unique Start cell.
// Returns ErrNoStart or ErrMultipleStart when the invariant is violated.
// Complexity: O(W×H).
func (g *Grid) Start() (State, error) {
	return g.unique(Start, ErrNoStart, ErrMultipleStart)
}

// Goal scans for the unique Goal cell.
// Returns ErrNoGoal or ErrMultipleGoal when the invariant is violated.
// Complexity: O(W×H).
func (g *Grid) Goal() (State, error) {
	return g.unique(Goal, ErrNoGoal, ErrMultipleGoal)
}

// Validate checks the exactly-one-Start / exactly-one-Goal invariant.
// Complexity: O(W×H).
func (g *Grid) Validate() error {
	if _, err := g.Start(); err != nil {
		return err
	}
	if _, err := g.Goal(); err != nil {
		return err
	}

	return nil
}

// unique scans for exactly one cell of type t, returning the paired
// sentinel errors on zero or multiple occurrences.
func (g *Grid) unique(t CellType, errNone, errMulti error) (State, error) {
	var found State
	count := 0
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.cells[r][c].Type != t {
				continue
			}
			if count++; count > 1 {
				return State{}, fmt.Errorf("%w: at (%d,%d) and (%d,%d)", errMulti, found.Row, found.Col, r, c)
			}
			found = State{Row: r, Col: c}
		}
	}
	if count == 0 {
		return State{}, errNone
	}

	return found, nil
}

// Reset clears every cell's exploration annotation back to Unexplored
// (Unreachable for walls) and removes labels, leaving topology intact.
// Idempotent; safe to call after any number of search steps.
// Complexity: O(W×H).
func (g *Grid) Reset() {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := &g.cells[r][c]
			if cell.Type == Wall {
				cell.State = Unreachable
			} else {
				cell.State = Unexplored
			}
			cell.Label = ""
		}
	}
}

// String serializes the grid's topology back to the template encoding,
// the inverse of Parse: Wall→'#', Start→'A', Goal→'B', Space→' ', rows
// joined by newlines. States and labels are not part of the format.
// Complexity: O(W×H).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Width; c++ {
			switch g.cells[r][c].Type {
			case Wall:
				b.WriteRune(runeWall)
			case Start:
				b.WriteRune(runeStart)
			case Goal:
				b.WriteRune(runeGoal)
			default:
				b.WriteRune(runeSpace)
			}
		}
	}

	return b.String()
}

// Manhattan returns |a.Row−b.Row| + |a.Col−b.Col|, the L1 distance
// between two states. With diagonal movement disallowed it never
// overestimates the true path length, making it an admissible heuristic.
// Complexity: O(1).
func Manhattan(a, b State) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
