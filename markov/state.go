// SPDX-License-Identifier: MIT

package markov

import "fmt"

// State is the occupancy of the two patches in a given year.
// Values map 1:1 onto transition-matrix indices; use Index and
// StateFromIndex at the matrix boundary instead of raw integers.
type State int

// The four mutually exclusive occupancy states.
const (
	Both      State = iota // both patches occupied
	SmallOnly              // only the small patch occupied
	LargeOnly              // only the large patch occupied
	None                   // both patches empty; absorbing
)

// NumStates is the size of the state space and of the transition matrix.
const NumStates = 4

// States lists every state in matrix-index order.
var States = [NumStates]State{Both, SmallOnly, LargeOnly, None}

var stateNames = [NumStates]string{"Both", "SmallOnly", "LargeOnly", "None"}

// String returns the state's name, or State(n) for out-of-range values.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Valid reports whether s is one of the four defined states.
func (s State) Valid() bool { return s >= Both && s <= None }

// Index returns the transition-matrix index of s.
func (s State) Index() int { return int(s) }

// Absorbing reports whether s is never left once entered.
func (s State) Absorbing() bool { return s == None }

// StateFromIndex maps a matrix index back to its State.
func StateFromIndex(i int) (State, error) {
	s := State(i)
	if !s.Valid() {
		return 0, &ParameterError{Name: "state index", Value: float64(i), Reason: "must be within [0,3]"}
	}

	return s, nil
}
