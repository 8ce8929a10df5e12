// Package spanning reduces candidate corridors to a minimum spanning tree
// with Prim's algorithm.
package spanning

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Selection is the outcome of Select
type Selection struct {
	// Corridors in the order they were selected
	Corridors []dungeon.Corridor
	// Pruned counts candidates dropped because both endpoints were already connected
	Pruned int
	// Unreached lists room ids the tree could not reach, ascending
	Unreached []int
}

// Select grows a spanning tree from room 0. Ties on weight go to the
// candidate discovered first. When the candidates do not connect every room
// the partial selection is returned together with an IncompletePartition error.
func Select(roomCount int, candidates []dungeon.CandidateEdge) (*Selection, error) {
	if roomCount < 0 {
		return nil, errors.InvalidArgumentf("room count must not be negative, got %d", roomCount)
	}
	selection := &Selection{}
	if roomCount == 0 {
		return selection, nil
	}

	live := make([]dungeon.CandidateEdge, 0, len(candidates))
	for _, e := range candidates {
		if e.A < 0 || e.B < 0 || e.A >= roomCount || e.B >= roomCount || e.A == e.B {
			return nil, errors.InvalidArgumentf("candidate %d-%d outside %d rooms", e.A, e.B, roomCount)
		}
		live = append(live, e)
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].Seq < live[j].Seq })

	connected := make([]bool, roomCount)
	connected[0] = true
	remaining := roomCount - 1

	for remaining > 0 {
		best := -1
		for i, e := range live {
			if connected[e.A] == connected[e.B] {
				continue
			}
			if best < 0 || e.Length < live[best].Length {
				best = i
			}
		}
		if best < 0 {
			break
		}

		chosen := live[best]
		from, to := chosen.A, chosen.B
		if connected[to] {
			from, to = to, from
		}
		connected[to] = true
		remaining--
		selection.Corridors = append(selection.Corridors, dungeon.Corridor{
			From:   from,
			To:     to,
			Weight: chosen.Length,
		})

		kept := live[:0:0]
		for i, e := range live {
			if i == best {
				continue
			}
			if connected[e.A] && connected[e.B] {
				selection.Pruned++
				continue
			}
			kept = append(kept, e)
		}
		live = kept
	}

	if remaining == 0 {
		return selection, nil
	}

	for id, ok := range connected {
		if !ok {
			selection.Unreached = append(selection.Unreached, id)
		}
	}
	return selection, errors.IncompletePartitionf("%d of %d rooms unreachable", len(selection.Unreached), roomCount).
		WithMeta("unreached", len(selection.Unreached))
}

// Components counts connected groups of rooms joined by corridors
func Components(roomCount int, corridors []dungeon.Corridor) int {
	adjacency := make([][]int, roomCount)
	for _, c := range corridors {
		if c.From < 0 || c.To < 0 || c.From >= roomCount || c.To >= roomCount {
			continue
		}
		adjacency[c.From] = append(adjacency[c.From], c.To)
		adjacency[c.To] = append(adjacency[c.To], c.From)
	}

	visited := mapset.New[int]()
	components := 0
	for start := 0; start < roomCount; start++ {
		if visited.Has(start) {
			continue
		}
		components++
		queue := []int{start}
		visited.Put(start)
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, n := range adjacency[current] {
				if !visited.Has(n) {
					visited.Put(n)
					queue = append(queue, n)
				}
			}
		}
	}
	return components
}
