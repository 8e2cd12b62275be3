package timer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitTimesOut(t *testing.T) {
	tm := New()

	start := time.Now()
	assert.True(t, tm.Wait(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestResetCutsWaitShort(t *testing.T) {
	tm := New()

	go func() {
		time.Sleep(10 * time.Millisecond)
		tm.Reset()
	}()

	start := time.Now()
	assert.False(t, tm.Wait(context.Background(), 5*time.Second))
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestResetsCoalesce(t *testing.T) {
	tm := New()
	tm.Reset()
	tm.Reset()
	tm.Reset()

	// Only one pending reset survives
	assert.False(t, tm.Wait(context.Background(), time.Second))
	assert.True(t, tm.Wait(context.Background(), 10*time.Millisecond))
}

func TestWaitCancelled(t *testing.T) {
	tm := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, tm.Wait(ctx, 5*time.Second))
}
