// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// Node holds the identity and 3D position of a mesh vertex. Nodes are owned
// by the mesh; elements only reference them. Unknowns are not stored here:
// they live in the caller-owned Solution snapshot and are addressed through
// each element's equation map.
type Node struct {
	Id int       // node id
	X  []float64 // position (3D)
}

// NewNode returns a new node at (x,y,z)
func NewNode(id int, x, y, z float64) *Node {
	return &Node{id, []float64{x, y, z}}
}
