// Package gridsearch is an observable, step-driven search engine for 2D
// grids with obstacles — solve mazes one expansion at a time, watching the
// frontier grow.
//
// 🚀 What is gridsearch?
//
//	A small, focused library that brings together:
//		• Grid model: cell topology (Space/Wall/Start/Goal) plus per-cell
//		  exploration annotations, with a text template codec
//		• Frontier strategies: Stack (DFS), Queue (BFS), Greedy and A*,
//		  all behind one interface
//		• Priority queue: a generic comparator-ordered binary heap backing
//		  the informed strategies
//		• Search stepper: a passive state machine advanced one node
//		  expansion per call, so a host loop can render every step
//		• Maze generation: a seeded recursive-backtracking carver that
//		  always produces a solvable grid
//
// ✨ Why choose gridsearch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fully observable – every expansion is a discrete, inspectable step
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed neighbor order, seedable generation
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/     — Grid, Cell, State, Action, template parse/serialize, Reset
//	pqueue/   — generic binary heap over an injected "comes before" comparator
//	frontier/ — Node records and the four removal strategies
//	search/   — the Stepper state machine and a run-to-completion driver
//	maze/     — randomized maze generation
//
// Quick ASCII example:
//
//	    A #
//	      #
//	    # B
//
//	represents a 3×3 grid where A must route around a wall to reach B.
//
// Dive into examples/ for full walkthroughs: BFS vs DFS on one maze, and
// an animated A* solve driven from a host loop.
//
//	go get github.com/katalvlaran/gridsearch
package gridsearch
