package models

import (
	"errors"
	"sort"
)

// RollSize is the number of dice in a roll
const RollSize = 5

const (
	// MinFace is the lowest legal die face
	MinFace = 1

	// MaxFace is the highest legal die face
	MaxFace = 6
)

// ErrInvalidRoll is returned when a roll is not exactly five faces in 1-6
var ErrInvalidRoll = errors.New("invalid roll: requires exactly five faces in 1-6")

// Roll is an immutable snapshot of five die faces.
//
// Faces are stored sorted, so two rolls with the same face multiset compare
// equal with == regardless of the order the dice were rolled or held.
type Roll struct {
	faces [RollSize]int
}

// NewRoll constructs a Roll from exactly five faces in 1-6.
// A reroll produces a new Roll value; there is no in-place mutation.
func NewRoll(faces ...int) (Roll, error) {
	if len(faces) != RollSize {
		return Roll{}, ErrInvalidRoll
	}

	var r Roll
	for i, face := range faces {
		if face < MinFace || face > MaxFace {
			return Roll{}, ErrInvalidRoll
		}
		r.faces[i] = face
	}

	sort.Ints(r.faces[:])

	return r, nil
}

// Faces returns the five faces in ascending order
func (r Roll) Faces() [RollSize]int {
	return r.faces
}

// Counts returns a histogram of face value to occurrence count.
// Indexes 1-6 are meaningful; index 0 is always zero.
func (r Roll) Counts() [MaxFace + 1]int {
	var counts [MaxFace + 1]int
	for _, face := range r.faces {
		counts[face]++
	}
	return counts
}

// CountOf returns how many dice show the given face value
func (r Roll) CountOf(face int) int {
	count := 0
	for _, f := range r.faces {
		if f == face {
			count++
		}
	}
	return count
}

// Sum returns the total of all five faces
func (r Roll) Sum() int {
	total := 0
	for _, face := range r.faces {
		total += face
	}
	return total
}

// SumOf returns the total of the dice showing the given face value
func (r Roll) SumOf(face int) int {
	return face * r.CountOf(face)
}

// AllSame reports whether all five faces are identical
func (r Roll) AllSame() bool {
	return r.Valid() && r.faces[0] == r.faces[RollSize-1]
}

// Valid reports whether the roll was built through NewRoll.
// The zero Roll is not valid; callers receiving rolls from outside the
// package should treat an invalid roll as ErrInvalidRoll.
func (r Roll) Valid() bool {
	for _, face := range r.faces {
		if face < MinFace || face > MaxFace {
			return false
		}
	}
	return true
}
