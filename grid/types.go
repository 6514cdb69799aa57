// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/gridsearch.
package grid

import (
	"errors"
)

// Sentinel errors for grid construction and validation.
var (
	// ErrEmptyGrid indicates requested dimensions below one row or column.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrEmptyTemplate indicates the template has no rows or no columns.
	ErrEmptyTemplate = errors.New("grid: template must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMalformedTemplate indicates an unrecognized template character.
	ErrMalformedTemplate = errors.New("grid: unrecognized template character")
	// ErrNoStart indicates the grid contains no Start cell.
	ErrNoStart = errors.New("grid: no start cell")
	// ErrMultipleStart indicates the grid contains more than one Start cell.
	ErrMultipleStart = errors.New("grid: multiple start cells")
	// ErrNoGoal indicates the grid contains no Goal cell.
	ErrNoGoal = errors.New("grid: no goal cell")
	// ErrMultipleGoal indicates the grid contains more than one Goal cell.
	ErrMultipleGoal = errors.New("grid: multiple goal cells")
)

// State identifies a single cell by its coordinates. States are value
// types: two States are equal iff both components match.
type State struct {
	Row, Col int
}

// Action records how a state was reached from its predecessor.
// ActionNone is reserved for root states, which have no predecessor.
type Action uint8

const (
	// ActionNone marks the absence of an action (root states only).
	ActionNone Action = iota
	// Up moves one row toward row 0.
	Up
	// Down moves one row away from row 0.
	Down
	// Left moves one column toward column 0.
	Left
	// Right moves one column away from column 0.
	Right
)

// String returns the human-readable action name.
func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "None"
	}
}

// CellType is the fixed topology of a cell. It is set at construction or
// by an external editor, never by the search engine.
type CellType uint8

const (
	// Space is a walkable empty cell.
	Space CellType = iota
	// Wall is an impassable cell.
	Wall
	// Start is the unique search origin.
	Start
	// Goal is the unique search target.
	Goal
)

// CellState is the mutable exploration annotation of a cell. It is
// mutated only by the search stepper and by Reset.
type CellState uint8

const (
	// Unexplored marks a cell not yet touched by the current search.
	Unexplored CellState = iota
	// Explored marks a cell whose node has been expanded.
	Explored
	// Frontier marks a cell discovered but not yet expanded.
	Frontier
	// SolutionPath marks a cell on the reconstructed solution path.
	SolutionPath
	// Unreachable marks a Wall cell; walls never transition.
	Unreachable
)

// Cell pairs a fixed CellType with a mutable CellState and an optional
// display Label (e.g. a priority annotation such as "g+h" for frontier
// cells of informed strategies).
type Cell struct {
	Type  CellType
	State CellState
	Label string
}

// Move pairs the Action taken with the State it leads to, as emitted by
// Grid.Neighbors in fixed Up/Down/Left/Right order.
type Move struct {
	Action Action
	To     State
}

// Template characters for the text encoding (one line per row).
const (
	runeWall  = '#'
	runeStart = 'A'
	runeGoal  = 'B'
	runeSpace = ' '
)
