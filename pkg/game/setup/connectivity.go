// Package setup validates a carved layout and furnishes it: spawn-to-exit
// connectivity with repair, decoration placement and ceiling lights.
package setup

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"backrooms/pkg/engine/world"
	"backrooms/pkg/game/generator"
	"backrooms/pkg/game/state"
)

// DefaultMaxRepairs bounds how many times the path carver is re-run for one layout
const DefaultMaxRepairs = 3

// FloodFill returns the mask of walkable cells reachable from start via N/E/S/W.
// Uses an explicit stack so large open grids cannot exhaust the call stack.
// The mask is empty if start is a wall.
func FloodFill(grid *world.Grid, start world.Point) *world.Mask {
	visited := world.NewMaskFor(grid)
	if grid.IsWall(start.X, start.Z) {
		return visited
	}

	frontier := stack.New[world.Point]()
	visited.MarkPoint(start)
	frontier.Push(start)

	for frontier.Size() > 0 {
		current := frontier.Pop()
		for _, n := range current.Neighbors() {
			if visited.HasPoint(n) || grid.IsWall(n.X, n.Z) {
				continue
			}
			visited.MarkPoint(n)
			frontier.Push(n)
		}
	}

	return visited
}

// Reachable returns true if to can be walked to from from
func Reachable(grid *world.Grid, from, to world.Point) bool {
	return FloodFill(grid, from).HasPoint(to)
}

// PathLength returns the number of steps on a shortest walkable route from
// from to to, or -1 if to is unreachable.
func PathLength(grid *world.Grid, from, to world.Point) int {
	if grid.IsWall(from.X, from.Z) || grid.IsWall(to.X, to.Z) {
		return -1
	}

	dist := make([]int, grid.Area())
	for i := range dist {
		dist[i] = -1
	}
	index := func(p world.Point) int { return p.Z*grid.Width() + p.X }

	q := queue.New[world.Point]()
	dist[index(from)] = 0
	q.Enqueue(from)

	for !q.Empty() {
		current := q.Dequeue()
		if current == to {
			return dist[index(current)]
		}
		for _, n := range current.Neighbors() {
			if grid.IsWall(n.X, n.Z) || dist[index(n)] >= 0 {
				continue
			}
			dist[index(n)] = dist[index(current)] + 1
			q.Enqueue(n)
		}
	}

	return -1
}

// EnsureExitReachable checks that the exit border cell is reachable from the
// spawn center. If it is not, the path carver is re-run between spawn and the
// exit's inner notch cell, up to maxRepairs times. Each repair is logged and
// counted on the layout. Returns true if the exit is reachable afterwards.
func EnsureExitReachable(l *state.Layout, carver generator.PathCarver, rng *rand.Rand, maxRepairs int) bool {
	if Reachable(l.Grid, l.Spawn, l.Exit.Cell) {
		return true
	}

	for attempt := 1; attempt <= maxRepairs; attempt++ {
		l.Repairs++
		l.AddMessage(fmt.Sprintf("Exit unreachable from spawn, re-carving path (repair %d/%d)", attempt, maxRepairs))

		// The notch itself may have been filled; reopen it before re-carving.
		for _, p := range l.Exit.Notch {
			l.Grid.Set(p.X, p.Z, world.Empty)
			l.Protected.MarkPoint(p)
		}
		carver.Carve(l.Grid, l.Spawn, l.Exit.Inner, rng, l.Protected)

		if Reachable(l.Grid, l.Spawn, l.Exit.Cell) {
			return true
		}
	}

	l.AddMessage("Exit still unreachable after repairs")
	return false
}
