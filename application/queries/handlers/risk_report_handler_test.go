package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mentcare/application/queries"
	"mentcare/domain/core/aggregates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCache struct {
	values map[string]interface{}
}

func newStubCache() *stubCache {
	return &stubCache{values: make(map[string]interface{})}
}

func (c *stubCache) Get(ctx context.Context, key string) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *stubCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.values[key] = value
	return nil
}

func (c *stubCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}

// jsonCache mimics the Redis adapter: values survive only as JSON, so Get
// hands back untyped decoded data instead of the original Go value.
type jsonCache struct {
	values map[string][]byte
}

func newJSONCache() *jsonCache {
	return &jsonCache{values: make(map[string][]byte)}
}

func (c *jsonCache) Get(ctx context.Context, key string) (interface{}, bool) {
	data, ok := c.values[key]
	if !ok {
		return nil, false
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return v, true
}

func (c *jsonCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *jsonCache) Delete(ctx context.Context, key string) error {
	delete(c.values, key)
	return nil
}

func TestRiskReportHandler_ComputesCensus(t *testing.T) {
	handler := NewRiskReportHandler(seededRepo(t), nil, zap.NewNop())

	census, err := handler.Handle(context.Background(), queries.RiskReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, aggregates.RiskCensus{Count: 2, High: 1, Medium: 0, Low: 1}, census)
}

func TestRiskReportHandler_EmptyPopulation(t *testing.T) {
	handler := NewRiskReportHandler(&stubPatientRepo{}, nil, zap.NewNop())

	census, err := handler.Handle(context.Background(), queries.RiskReportQuery{})
	require.NoError(t, err)

	assert.True(t, census.IsEmpty())
}

func TestRiskReportHandler_CachesResult(t *testing.T) {
	repo := seededRepo(t)
	cache := newStubCache()
	handler := NewRiskReportHandler(repo, cache, zap.NewNop())
	ctx := context.Background()

	first, err := handler.Handle(ctx, queries.RiskReportQuery{})
	require.NoError(t, err)
	second, err := handler.Handle(ctx, queries.RiskReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.allCalls, "second call must come from the cache")
}

func TestRiskReportHandler_CacheHitsSurviveJSONRoundTrip(t *testing.T) {
	repo := seededRepo(t)
	handler := NewRiskReportHandler(repo, newJSONCache(), zap.NewNop())
	ctx := context.Background()

	first, err := handler.Handle(ctx, queries.RiskReportQuery{})
	require.NoError(t, err)
	second, err := handler.Handle(ctx, queries.RiskReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.allCalls, "second call must come from the cache")
}
