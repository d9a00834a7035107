package judgment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestResolver(store CriteriaStore, negative bool) (*Resolver, *testclock.Clock) {
	clk := testclock.NewClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	return NewResolver(store, clk, 5*time.Minute, negative, discardLogger()), clk
}

func TestResolveByTripleCachesHits(t *testing.T) {
	store := testutil.NewCriteriaStore()
	store.AddPipelineCriterion("PC", "PR", "PL", &models.Criterion{ID: "c1", ItemID: "i1", PipelineID: "PL", Type: models.JudgmentBinary, Spec: models.BinarySpec{ExpectedValue: true}})
	r, _ := newTestResolver(store, false)

	for i := 0; i < 3; i++ {
		c, err := r.Resolve(context.Background(), Lookup{ProductCode: "PC", ProcessCode: "PR", PipelineID: "PL"})
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "c1", c.ID)
	}
	assert.EqualValues(t, 1, store.PipelineCalls())
}

func TestResolveByItemTakesPrecedence(t *testing.T) {
	store := testutil.NewCriteriaStore()
	store.AddItemCriterion("i9", &models.Criterion{ID: "c9", ItemID: "i9", Type: models.JudgmentBinary, Spec: models.BinarySpec{}})
	store.AddPipelineCriterion("PC", "PR", "PL", &models.Criterion{ID: "c1", ItemID: "i1"})
	r, _ := newTestResolver(store, false)

	c, err := r.Resolve(context.Background(), Lookup{ItemID: "i9", ProductCode: "PC", ProcessCode: "PR", PipelineID: "PL"})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "c9", c.ID)
	assert.EqualValues(t, 0, store.PipelineCalls())
}

func TestResolveIncompleteTripleSkipsStore(t *testing.T) {
	store := testutil.NewCriteriaStore()
	r, _ := newTestResolver(store, false)

	c, err := r.Resolve(context.Background(), Lookup{ProductCode: "PC", PipelineID: "PL"})
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.EqualValues(t, 0, store.PipelineCalls())
}

func TestResolveMissesArePositiveOnlyByDefault(t *testing.T) {
	store := testutil.NewCriteriaStore()
	r, _ := newTestResolver(store, false)
	l := Lookup{ItemID: "missing"}

	for i := 0; i < 3; i++ {
		c, err := r.Resolve(context.Background(), l)
		require.NoError(t, err)
		assert.Nil(t, c)
	}
	assert.EqualValues(t, 3, store.ItemCalls())
}

func TestResolveNegativeCacheFlag(t *testing.T) {
	store := testutil.NewCriteriaStore()
	r, clk := newTestResolver(store, true)
	l := Lookup{ItemID: "missing"}

	for i := 0; i < 3; i++ {
		_, err := r.Resolve(context.Background(), l)
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, store.ItemCalls())

	clk.Advance(5 * time.Minute)
	_, err := r.Resolve(context.Background(), l)
	require.NoError(t, err)
	assert.EqualValues(t, 2, store.ItemCalls())
}

func TestResolveTTLExpiry(t *testing.T) {
	store := testutil.NewCriteriaStore()
	store.AddItemCriterion("i1", &models.Criterion{ID: "c1", ItemID: "i1"})
	r, clk := newTestResolver(store, false)

	_, err := r.Resolve(context.Background(), Lookup{ItemID: "i1"})
	require.NoError(t, err)
	clk.Advance(4 * time.Minute)
	_, err = r.Resolve(context.Background(), Lookup{ItemID: "i1"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, store.ItemCalls())

	clk.Advance(time.Minute)
	_, err = r.Resolve(context.Background(), Lookup{ItemID: "i1"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, store.ItemCalls())
}

func TestResolveStoreErrorNotCached(t *testing.T) {
	store := testutil.NewCriteriaStore()
	store.FailWith(errors.New("connection refused"))
	r, _ := newTestResolver(store, true)

	_, err := r.Resolve(context.Background(), Lookup{ItemID: "i1"})
	require.Error(t, err)

	store.FailWith(nil)
	store.AddItemCriterion("i1", &models.Criterion{ID: "c1", ItemID: "i1"})
	c, err := r.Resolve(context.Background(), Lookup{ItemID: "i1"})
	require.NoError(t, err)
	require.NotNil(t, c)
}
