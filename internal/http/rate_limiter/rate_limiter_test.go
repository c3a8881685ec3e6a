package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLimiter_GetVisitorReusesBucket(t *testing.T) {
	l := NewLimiter(rate.Limit(1), 3)

	a := l.GetVisitor("10.0.0.1")
	b := l.GetVisitor("10.0.0.1")
	c := l.GetVisitor("10.0.0.2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 3, a.Burst())
}

func TestLimiter_Cleanup(t *testing.T) {
	l := NewLimiter(rate.Limit(1), 3)
	l.GetVisitor("10.0.0.1")
	l.visitors["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)
	l.GetVisitor("10.0.0.2")

	l.cleanup(5 * time.Minute)

	assert.NotContains(t, l.visitors, "10.0.0.1")
	assert.Contains(t, l.visitors, "10.0.0.2")

	l.CleanupAllVisitors()
	assert.Empty(t, l.visitors)
}

func TestLimiter_CleanupLoopStopsWithContext(t *testing.T) {
	l := NewLimiter(rate.Limit(1), 3)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.StartVisitorCleanupLoop(ctx, time.Millisecond, time.Minute)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
