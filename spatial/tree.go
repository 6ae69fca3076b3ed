// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package spatial

import (
	"fmt"

	"github.com/born-ml/ndarray"
)

// MaxDepth bounds the subdivision of a Tree. Leaves at this depth grow
// past their capacity instead of splitting.
const MaxDepth = 16

// Tree is a 2^d-way subdivision tree storing objects at d-dimensional
// positions. A leaf holding capacity objects splits into the children of
// its boundary on the next insert.
type Tree[O any, T ndarray.Number] struct {
	boundary *Rect[T]
	capacity int
	depth    int
	items    []entry[O, T]
	children []*Tree[O, T]
	size     int
}

type entry[O any, T ndarray.Number] struct {
	obj O
	pos *ndarray.Array[T]
}

// NewTree creates an empty tree covering boundary.
func NewTree[O any, T ndarray.Number](boundary *Rect[T], capacity int) (*Tree[O, T], error) {
	if capacity < 1 {
		return nil, &ndarray.Error{
			Op:      "newTree",
			Kind:    ndarray.ErrInvalidShape,
			Details: fmt.Sprintf("capacity %d must be at least 1", capacity),
		}
	}
	return newNode[O](boundary, capacity, 0), nil
}

func newNode[O any, T ndarray.Number](boundary *Rect[T], capacity, depth int) *Tree[O, T] {
	return &Tree[O, T]{boundary: boundary, capacity: capacity, depth: depth}
}

// Boundary returns the box covered by the tree.
func (t *Tree[O, T]) Boundary() *Rect[T] {
	return t.boundary
}

// Len returns the number of stored objects.
func (t *Tree[O, T]) Len() int {
	return t.size
}

// Insert stores obj at pos. It returns false when pos lies outside the
// tree's boundary.
func (t *Tree[O, T]) Insert(obj O, pos *ndarray.Array[T]) (bool, error) {
	inside, err := t.boundary.Contains(pos)
	if err != nil || !inside {
		return false, err
	}
	if err := t.insert(entry[O, T]{obj: obj, pos: pos.Clone()}); err != nil {
		return false, err
	}
	return true, nil
}

// insert places e, which lies inside t's boundary.
func (t *Tree[O, T]) insert(e entry[O, T]) error {
	t.size++
	if t.children == nil {
		if len(t.items) < t.capacity || t.depth >= MaxDepth {
			t.items = append(t.items, e)
			return nil
		}
		if err := t.split(); err != nil {
			return err
		}
	}
	return t.descend(e)
}

// split creates the children and moves the leaf's objects into them.
func (t *Tree[O, T]) split() error {
	boxes, err := t.boundary.Subdivide()
	if err != nil {
		return err
	}
	t.children = make([]*Tree[O, T], len(boxes))
	for i, box := range boxes {
		t.children[i] = newNode[O](box, t.capacity, t.depth+1)
	}
	items := t.items
	t.items = nil
	for _, e := range items {
		if err := t.descend(e); err != nil {
			return err
		}
	}
	return nil
}

// descend hands e to the first child containing it.
func (t *Tree[O, T]) descend(e entry[O, T]) error {
	for _, child := range t.children {
		inside, err := child.boundary.Contains(e.pos)
		if err != nil {
			return err
		}
		if inside {
			return child.insert(e)
		}
	}
	// Keep e here if no child claims it.
	t.items = append(t.items, e)
	return nil
}

// Query returns the objects whose positions lie inside r. Objects held by
// a node come before those of its children, children in Subdivide order.
func (t *Tree[O, T]) Query(r *Rect[T]) ([]O, error) {
	var out []O
	if err := t.query(r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tree[O, T]) query(r *Rect[T], out *[]O) error {
	overlap, err := t.boundary.Overlaps(r)
	if err != nil || !overlap {
		return err
	}
	for _, e := range t.items {
		inside, err := r.Contains(e.pos)
		if err != nil {
			return err
		}
		if inside {
			*out = append(*out, e.obj)
		}
	}
	for _, child := range t.children {
		if err := child.query(r, out); err != nil {
			return err
		}
	}
	return nil
}
