package difftest

import (
	"fmt"
	"math/rand"
)

// OpKind is the type of an index operation.
type OpKind int

// Kinds of operations to replay.
const (
	Insert OpKind = iota
	Remove
	Find
	Checkpoint // record a full traversal
)

func (k OpKind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Find:
		return "find"
	case Checkpoint:
		return "checkpoint"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is a single operation. Value is used by Insert only.
type Op[V any] struct {
	Kind  OpKind
	Key   int64
	Value V
}

func (op Op[V]) String() string {
	if op.Kind == Checkpoint {
		return op.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", op.Kind, op.Key)
}

// Generate creates a deterministic random stream of n operations on keys in
// [0, keySpace), terminated by a checkpoint. valueOf provides the value for
// the insert at position i.
func Generate[V any](seed int64, n int, keySpace int64, valueOf func(i int) V) []Op[V] {
	if keySpace <= 0 {
		keySpace = 1
	}
	r := rand.New(rand.NewSource(seed))
	ops := make([]Op[V], 0, n+1)
	for i := 0; i < n; i++ {
		op := Op[V]{Key: r.Int63n(keySpace)}
		switch p := r.Intn(100); {
		case p < 45:
			op.Kind = Insert
			op.Value = valueOf(i)
		case p < 70:
			op.Kind = Remove
		case p < 95:
			op.Kind = Find
		default:
			op.Kind = Checkpoint
		}
		ops = append(ops, op)
	}
	return append(ops, Op[V]{Kind: Checkpoint})
}
