package game

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/boardgame-go/internal/geom"
)

// Move is the constraint satisfied by every rule set's move type.
type Move interface {
	comparable
	Origin() geom.Point
	Destination() geom.Point
}

// MoveSet is a set of moves. Membership uses full move equality, so two
// moves that share a destination but differ in origin or kind are distinct.
type MoveSet[M Move] map[M]struct{}

// NewMoveSet returns a set holding moves.
func NewMoveSet[M Move](moves ...M) MoveSet[M] {
	s := make(MoveSet[M], len(moves))
	for _, m := range moves {
		s.Add(m)
	}
	return s
}

// Add inserts m.
func (s MoveSet[M]) Add(m M) {
	s[m] = struct{}{}
}

// Contains reports whether m is a member.
func (s MoveSet[M]) Contains(m M) bool {
	_, ok := s[m]
	return ok
}

func (s MoveSet[M]) Len() int    { return len(s) }
func (s MoveSet[M]) Empty() bool { return len(s) == 0 }

// Moves returns the members ordered by destination, then origin, in board
// storage order.
func (s MoveSet[M]) Moves() []M {
	moves := maps.Keys(s)
	sort.SliceStable(moves, func(i, j int) bool {
		di, dj := moves[i].Destination().Hash(), moves[j].Destination().Hash()
		if di != dj {
			return di < dj
		}
		return moves[i].Origin().Hash() < moves[j].Origin().Hash()
	})
	return moves
}

// EndingOn returns the members whose destination is p.
func (s MoveSet[M]) EndingOn(p geom.Point) []M {
	var out []M
	for _, m := range s.Moves() {
		if m.Destination() == p {
			out = append(out, m)
		}
	}
	return out
}

// Destinations returns the distinct destinations in storage order.
func (s MoveSet[M]) Destinations() []geom.Point {
	var out []geom.Point
	for _, m := range s.Moves() {
		d := m.Destination()
		if len(out) == 0 || out[len(out)-1] != d {
			out = append(out, d)
		}
	}
	return out
}

// PlayerMoveSet maps the origin of each of a player's movable pieces to its
// non-empty legal-move set.
type PlayerMoveSet[M Move] map[geom.Point]MoveSet[M]

// Origins returns the keys in board storage order.
func (s PlayerMoveSet[M]) Origins() []geom.Point {
	origins := maps.Keys(s)
	sort.Slice(origins, func(i, j int) bool {
		return origins[i].Hash() < origins[j].Hash()
	})
	return origins
}

// Count returns the total number of moves across all origins.
func (s PlayerMoveSet[M]) Count() int {
	n := 0
	for _, moves := range s {
		n += moves.Len()
	}
	return n
}
