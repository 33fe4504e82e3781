package difftest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/btindex"
)

// ErrDivergence is flagged if backends disagree on the outcome of an operation
// or on a traversal.
var ErrDivergence = errors.New("difftest: backends diverge")

// subscriberBuffer is the channel capacity of every backend subscription.
const subscriberBuffer = 64

// Outcome is what a backend reported for one operation.
type Outcome[V any] struct {
	OK    bool // success of insert/remove, presence for find
	Value V    // value found, for find only
}

// Snapshot is a full traversal taken at a checkpoint.
type Snapshot[V any] struct {
	Keys   []int64
	Values []V
	Size   int
}

// Record holds everything a single backend reported during a replay.
type Record[V any] struct {
	Outcomes    []Outcome[V]
	Checkpoints []Snapshot[V]
}

// Report collects the records of all backends of a replay.
type Report[V comparable] struct {
	Ops     []Op[V]
	Records map[string]*Record[V]
}

// Replay applies ops to every backend and records the outcomes. Backends are
// driven concurrently, but every backend sees all operations in order from a
// single goroutine.
func Replay[V comparable](ctx context.Context, ops []Op[V], backends map[string]btindex.Storage[V]) (*Report[V], error) {
	if len(backends) == 0 {
		return nil, fmt.Errorf("%w: no backends to replay against", btindex.ErrIllegalArguments)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cast := caster.New(ctx)
	defer cast.Close()
	report := &Report[V]{
		Ops:     ops,
		Records: make(map[string]*Record[V], len(backends)),
	}
	var wg sync.WaitGroup
	for name, s := range backends {
		sub, ok := cast.Sub(ctx, subscriberBuffer)
		if !ok {
			return nil, fmt.Errorf("difftest: cannot subscribe backend %q", name)
		}
		rec := &Record[V]{Outcomes: make([]Outcome[V], 0, len(ops))}
		report.Records[name] = rec
		wg.Add(1)
		go func(s btindex.Storage[V], sub <-chan interface{}, rec *Record[V]) {
			defer wg.Done()
			for range ops {
				msg, ok := <-sub
				if !ok {
					return
				}
				rec.apply(s, msg.(Op[V]))
			}
		}(s, sub, rec)
	}
	for _, op := range ops {
		if !cast.Pub(op) {
			break
		}
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for name, rec := range report.Records {
		if len(rec.Outcomes) != len(ops) {
			return nil, fmt.Errorf("difftest: backend %q received %d of %d operations", name, len(rec.Outcomes), len(ops))
		}
	}
	return report, nil
}

func (rec *Record[V]) apply(s btindex.Storage[V], op Op[V]) {
	var out Outcome[V]
	switch op.Kind {
	case Insert:
		out.OK = s.Insert(op.Key, op.Value)
	case Remove:
		out.OK = s.Remove(op.Key)
	case Find:
		out.Value, out.OK = s.Find(op.Key)
	case Checkpoint:
		keys, values := s.Resort(nil, nil)
		rec.Checkpoints = append(rec.Checkpoints, Snapshot[V]{Keys: keys, Values: values, Size: s.Size()})
		out.OK = true
	default:
		panic(fmt.Sprintf("difftest: unknown operation kind %v", op.Kind))
	}
	rec.Outcomes = append(rec.Outcomes, out)
}

// Names returns the backend names of the report in sorted order.
func (r *Report[V]) Names() []string {
	names := make([]string, 0, len(r.Records))
	for name := range r.Records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compare checks all records against the record of the first backend (by
// name) and returns an error wrapping ErrDivergence for the first difference.
func (r *Report[V]) Compare() error {
	names := r.Names()
	if len(names) < 2 {
		return nil
	}
	base := r.Records[names[0]]
	for _, name := range names[1:] {
		rec := r.Records[name]
		for i, out := range rec.Outcomes {
			if out != base.Outcomes[i] {
				tracer().Debugf("difftest: %s and %s diverge at op #%d", names[0], name, i)
				return fmt.Errorf("%w: op #%d %s: %s=%+v, %s=%+v", ErrDivergence,
					i, r.Ops[i], names[0], base.Outcomes[i], name, out)
			}
		}
		if len(rec.Checkpoints) != len(base.Checkpoints) {
			return fmt.Errorf("%w: %s has %d checkpoints, %s has %d", ErrDivergence,
				names[0], len(base.Checkpoints), name, len(rec.Checkpoints))
		}
		for i, snap := range rec.Checkpoints {
			want := base.Checkpoints[i]
			if snap.Size != want.Size || !slices.Equal(snap.Keys, want.Keys) || !slices.Equal(snap.Values, want.Values) {
				return fmt.Errorf("%w: checkpoint #%d: %s and %s traverse differently", ErrDivergence,
					i, names[0], name)
			}
			if snap.Size != len(snap.Keys) {
				return fmt.Errorf("%w: checkpoint #%d: %s reports size %d for %d entries", ErrDivergence,
					i, name, snap.Size, len(snap.Keys))
			}
		}
	}
	return nil
}

// Check replays ops against all backends and compares the results.
func Check[V comparable](ctx context.Context, ops []Op[V], backends map[string]btindex.Storage[V]) error {
	report, err := Replay(ctx, ops, backends)
	if err != nil {
		return err
	}
	return report.Compare()
}
