package metrics

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeStats struct {
	total, idle, acquired int32
}

func (s fakeStats) TotalConns() int32    { return s.total }
func (s fakeStats) IdleConns() int32     { return s.idle }
func (s fakeStats) AcquiredConns() int32 { return s.acquired }

type fakeProvider struct {
	calls atomic.Int32
	stats fakeStats
}

func (p *fakeProvider) Stat() PoolStats {
	p.calls.Add(1)
	return p.stats
}

func TestPoolStatsCollector(t *testing.T) {
	provider := &fakeProvider{stats: fakeStats{total: 5, idle: 3, acquired: 2}}
	c := NewPoolStatsCollectorWithProvider(provider)

	c.Start(time.Hour)
	assert.Eventually(t, func() bool { return provider.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	c.Stop()

	assert.Equal(t, float64(5), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(2), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestPoolStatsCollector_CollectsOnTick(t *testing.T) {
	provider := &fakeProvider{}
	c := NewPoolStatsCollectorWithProvider(provider)

	c.Start(10 * time.Millisecond)
	assert.Eventually(t, func() bool { return provider.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	c.Stop()

	after := provider.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, provider.calls.Load(), "collector should not run after Stop")
}

func TestKeywordMetrics(t *testing.T) {
	before := testutil.ToFloat64(StatusTransitionsTotal.WithLabelValues("Active", "Paused"))
	StatusTransitionsTotal.WithLabelValues("Active", "Paused").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(StatusTransitionsTotal.WithLabelValues("Active", "Paused")))

	KeywordsCreatedTotal.WithLabelValues("Exact", "Draft").Inc()
	assert.GreaterOrEqual(t, testutil.CollectAndCount(KeywordsCreatedTotal), 1)
}
