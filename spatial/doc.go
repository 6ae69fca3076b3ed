// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package spatial provides an axis-aligned bounding box and a 2^d-way
// subdivision tree over d-dimensional points, both built on ndarray.
//
// Example:
//
//	bounds, _ := spatial.NewRect(ndarray.FromValues(0.0, 0.0), ndarray.FromValues(10.0, 10.0))
//	tree, _ := spatial.NewTree[string](bounds, 4)
//	_, _ = tree.Insert("a", ndarray.FromValues(1.0, 2.0))
//	hits, _ := tree.Query(bounds)
package spatial
