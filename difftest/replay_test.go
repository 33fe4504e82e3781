package difftest_test

import (
	"context"
	"io"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/npillmayer/btindex"
	"github.com/npillmayer/btindex/difftest"
	"github.com/npillmayer/btindex/mapindex"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]btindex.Storage[string] {
	t.Helper()
	b := make(map[string]btindex.Storage[string])
	for name, degree := range map[string]int{"btree-2": 2, "btree-3": 3, "btree-16": 16} {
		s, err := btindex.NewBTreeStorage[string](degree)
		require.NoError(t, err)
		b[name] = s
	}
	m, err := mapindex.New[string](mapindex.DefaultDegree)
	require.NoError(t, err)
	b["reference"] = m
	return b
}

func words(i int) string {
	return faker.Word()
}

func TestGenerateIsDeterministic(t *testing.T) {
	value := func(i int) int { return i }
	a := difftest.Generate(42, 500, 100, value)
	b := difftest.Generate(42, 500, 100, value)
	assert.Equal(t, a, b)
	require.Len(t, a, 501)
	assert.Equal(t, difftest.Checkpoint, a[len(a)-1].Kind)
	for _, op := range a {
		assert.True(t, op.Key >= 0 && op.Key < 100, "key %d out of key space", op.Key)
	}
}

func TestReplayBackendsAgree(t *testing.T) {
	ops := difftest.Generate(7, 4000, 300, words)
	report, err := difftest.Replay(context.Background(), ops, backends(t))
	require.NoError(t, err)
	assert.NoError(t, report.Compare())
	assert.Equal(t, []string{"btree-16", "btree-2", "btree-3", "reference"}, report.Names())
	for name, rec := range report.Records {
		assert.Len(t, rec.Outcomes, len(ops), "backend %s", name)
		assert.NotEmpty(t, rec.Checkpoints, "backend %s", name)
	}
}

func TestReplayRecordsOutcomes(t *testing.T) {
	ops := []difftest.Op[string]{
		{Kind: difftest.Insert, Key: 5, Value: "five"},
		{Kind: difftest.Insert, Key: 5, Value: "again"},
		{Kind: difftest.Find, Key: 5},
		{Kind: difftest.Remove, Key: 5},
		{Kind: difftest.Remove, Key: 5},
		{Kind: difftest.Find, Key: 5},
		{Kind: difftest.Insert, Key: 1, Value: "one"},
		{Kind: difftest.Checkpoint},
	}
	report, err := difftest.Replay(context.Background(), ops, backends(t))
	require.NoError(t, err)
	require.NoError(t, report.Compare())
	rec := report.Records["btree-3"]
	want := []difftest.Outcome[string]{
		{OK: true},
		{OK: false},
		{OK: true, Value: "five"},
		{OK: true},
		{OK: false},
		{OK: false},
		{OK: true},
		{OK: true},
	}
	assert.Equal(t, want, rec.Outcomes)
	require.Len(t, rec.Checkpoints, 1)
	assert.Equal(t, []int64{1}, rec.Checkpoints[0].Keys)
	assert.Equal(t, []string{"one"}, rec.Checkpoints[0].Values)
	assert.Equal(t, 1, rec.Checkpoints[0].Size)
}

// lossy drops every third successful insert while still reporting success.
type lossy struct {
	btindex.Storage[string]
	inserts int
}

func (l *lossy) Insert(key int64, value string) bool {
	l.inserts++
	if l.inserts%3 == 0 {
		return true
	}
	return l.Storage.Insert(key, value)
}

func TestReplayDetectsDivergence(t *testing.T) {
	b := backends(t)
	b["btree-3"] = &lossy{Storage: b["btree-3"]}
	ops := difftest.Generate(11, 1000, 50, words)
	err := difftest.Check(context.Background(), ops, b)
	assert.ErrorIs(t, err, difftest.ErrDivergence)
}

// Replay drives backends from several goroutines, so tracing has to go to a
// tracer which is safe for concurrent use. gotestingadapter is not.
func TestReplayTracesConcurrently(t *testing.T) {
	tracer := gologadapter.New()
	tracer.SetOutput(io.Discard)
	tracer.SetTraceLevel(tracing.LevelDebug)
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tracer }))
	defer tracing.SetTraceSelector(nil)
	b := make(map[string]btindex.Storage[string])
	for _, name := range []string{"a", "b", "c"} {
		s, err := btindex.NewBTreeStorage[string](2)
		require.NoError(t, err)
		b[name] = s
	}
	m, err := mapindex.New[string](2)
	require.NoError(t, err)
	b["reference"] = m
	// a small key space at degree 2 splits and collapses roots over and over
	ops := difftest.Generate(2000, 2000, 40, words)
	assert.NoError(t, difftest.Check(context.Background(), ops, b))
}

func TestReplayRejectsMissingBackends(t *testing.T) {
	_, err := difftest.Replay[string](context.Background(), nil, nil)
	assert.ErrorIs(t, err, btindex.ErrIllegalArguments)
}

func TestReplayHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := difftest.Replay(ctx, difftest.Generate(1, 10, 10, words), backends(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "insert(3)", difftest.Op[int]{Kind: difftest.Insert, Key: 3}.String())
	assert.Equal(t, "checkpoint", difftest.Op[int]{Kind: difftest.Checkpoint}.String())
	assert.Equal(t, "OpKind(9)", difftest.OpKind(9).String())
}
