// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Record, Node and Graph declarations plus sentinel and typed errors.
// Policy:
//   - Graph fields are written only by Build; every accessor is read-only.
//   - Typed errors carry names for diagnostics and match their sentinel via Is.

package core

import (
	"errors"
	"fmt"
)

// MaxRewardNodes bounds the number of nodes with a positive rate.
// The activated set of a search state is a 64-bit mask indexed by reward index.
const MaxRewardNodes = 64

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyName indicates a record without a name.
	ErrEmptyName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates two records with the same name.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNegativeRate indicates a record whose rate is below zero.
	ErrNegativeRate = errors.New("core: negative rate")

	// ErrUndefinedReference indicates a neighbor name that no record defines.
	ErrUndefinedReference = errors.New("core: undefined neighbor reference")

	// ErrTooManyRewardNodes indicates more than MaxRewardNodes nodes with Rate > 0.
	ErrTooManyRewardNodes = errors.New("core: too many reward nodes")

	// ErrNodeNotFound indicates a lookup of a name absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Record is the parsed description of one node, as handed over by a parser.
// Neighbor order is preserved and determines move enumeration order.
type Record struct {
	Name      string   `json:"name" yaml:"name"`
	Rate      int      `json:"rate" yaml:"rate"`
	Neighbors []string `json:"neighbors" yaml:"neighbors"`
}

// Node is the arena representation of a Record.
type Node struct {
	// Name is the unique identifier of the node.
	Name string

	// Rate is the per-step reward earned once the node is activated.
	Rate int

	// Neighbors holds arena indices of nodes reachable in one move.
	Neighbors []int
}

// Graph is an immutable arena of nodes built by Build.
type Graph struct {
	nodes  []Node
	index  map[string]int // name → arena index
	rank   []int          // arena index → position in sorted name order
	reward []int          // arena index → reward index, -1 when Rate == 0
	byBit  []int          // reward index → arena index
}

// ReferenceError reports a neighbor name that does not resolve to a node.
type ReferenceError struct {
	Node     string // record that holds the reference
	Neighbor string // unresolved neighbor name
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("core: node %q references undefined neighbor %q", e.Node, e.Neighbor)
}

// Is reports whether target is ErrUndefinedReference.
func (e *ReferenceError) Is(target error) bool { return target == ErrUndefinedReference }

// DuplicateError reports a name defined by more than one record.
type DuplicateError struct {
	Name  string
	First int // arena index of the first definition
	Again int // record position of the repeated definition
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("core: node %q defined at records %d and %d", e.Name, e.First, e.Again)
}

// Is reports whether target is ErrDuplicateNode.
func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicateNode }

// LookupError reports a lookup by a name the graph does not contain.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("core: node %q not found", e.Name)
}

// Is reports whether target is ErrNodeNotFound.
func (e *LookupError) Is(target error) bool { return target == ErrNodeNotFound }
