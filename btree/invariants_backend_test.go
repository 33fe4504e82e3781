package btree

import (
	"errors"
	"strings"
	"testing"
)

func expectInvariantError(t *testing.T, tree *Tree[string], fragment string) {
	t.Helper()
	err := tree.Check()
	if err == nil {
		t.Fatalf("expected invariant error containing %q", fragment)
	}
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckDetectsValueOccupancyDrift(t *testing.T) {
	tree := makeTree(t, 3)
	insertKeys(t, tree, 1, 2, 3)
	leaf := tree.root.(*leafNode[string])
	leaf.values = leaf.values[:2] // corrupt logical length on purpose
	expectInvariantError(t, tree, "key/value occupancy mismatch")
}

func TestCheckDetectsReallocatedStorage(t *testing.T) {
	tree := makeTree(t, 3)
	insertKeys(t, tree, 1, 2, 3)
	leaf := tree.root.(*leafNode[string])
	// break fixed-storage backing invariant intentionally
	leaf.keys = append([]int64(nil), leaf.keys...)
	expectInvariantError(t, tree, "key storage cap mismatch")
}

func TestCheckDetectsChildStorageDrift(t *testing.T) {
	tree := makeTree(t, 2)
	insertKeys(t, tree, keyRangeOf(1, 10)...)
	root := tree.root.(*innerNode[string])
	root.children = append([]treeNode[string](nil), root.children...)
	expectInvariantError(t, tree, "child storage cap mismatch")
}

func TestCheckDetectsUnorderedKeys(t *testing.T) {
	tree := makeTree(t, 3)
	insertKeys(t, tree, 1, 2, 3)
	leaf := tree.root.(*leafNode[string])
	leaf.keys[0], leaf.keys[1] = leaf.keys[1], leaf.keys[0]
	expectInvariantError(t, tree, "keys not ascending")
}

func TestCheckDetectsSeparatorViolation(t *testing.T) {
	tree := makeTree(t, 3)
	insertKeys(t, tree, keyRangeOf(1, 6)...)
	root := tree.root.(*innerNode[string])
	root.keys[0] = 100
	expectInvariantError(t, tree, "outside of separator range")
}

func TestCheckDetectsUnderflow(t *testing.T) {
	tree := makeTree(t, 3)
	insertKeys(t, tree, keyRangeOf(1, 6)...)
	root := tree.root.(*innerNode[string])
	root.children[0].removeAt(0)
	tree.count--
	expectInvariantError(t, tree, "below minimum")
}

func TestCheckDetectsCountDrift(t *testing.T) {
	tree := makeTree(t, 3)
	insertKeys(t, tree, 1, 2, 3)
	tree.count = 4
	expectInvariantError(t, tree, "count mismatch")
}

func TestCheckDetectsHeightDrift(t *testing.T) {
	tree := makeTree(t, 3)
	insertKeys(t, tree, keyRangeOf(1, 6)...)
	tree.height = 3
	expectInvariantError(t, tree, "height mismatch")
}

func TestCheckDetectsUnevenLeafDepth(t *testing.T) {
	tree := makeTree(t, 2)
	l0 := leafOf(tree, 1)
	inner := tree.makeInternal([]int64{4}, vals([]int64{4}), leafOf(tree, 3), leafOf(tree, 5))
	tree.root = tree.makeInternal([]int64{2}, vals([]int64{2}), l0, inner)
	tree.height, tree.count = 3, 5
	expectInvariantError(t, tree, "different depths")
}
