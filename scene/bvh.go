package scene

import "github.com/lumenray/core/types"

// BvhNode is a fixed-size, contiguous BVH record. Offset is overloaded: for
// a leaf (Count > 0) it indexes the first primitive in the leaf; for an
// internal node (Count == 0) it indexes the left child, with the right
// child always at Offset+1.
type BvhNode struct {
	Bounds types.AABB
	Offset uint32
	Count  uint32
}

// IsLeaf reports whether this node references primitives directly.
func (n BvhNode) IsLeaf() bool {
	return n.Count > 0
}

// LeftChild returns the index of the left child of an internal node. The
// right child is always LeftChild()+1.
func (n BvhNode) LeftChild() uint32 {
	return n.Offset
}

// RightChild returns the index of the right child of an internal node.
func (n BvhNode) RightChild() uint32 {
	return n.Offset + 1
}
