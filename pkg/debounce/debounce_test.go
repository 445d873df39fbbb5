package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_OnlyLastTriggerRuns(t *testing.T) {
	d := New(30 * time.Millisecond)

	var calls atomic.Int32
	var last atomic.Int32
	done := make(chan struct{}, 1)

	for i := 1; i <= 5; i++ {
		value := int32(i)
		d.Trigger(func() {
			calls.Add(1)
			last.Store(value)
			done <- struct{}{}
		})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced function did not run")
	}

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(5), last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_WaitsForQuiescence(t *testing.T) {
	d := New(50 * time.Millisecond)

	ran := make(chan time.Time, 1)
	start := time.Now()
	d.Trigger(func() { ran <- time.Now() })

	select {
	case at := <-ran:
		assert.GreaterOrEqual(t, at.Sub(start), 50*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("debounced function did not run")
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := New(20 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })

	assert.True(t, d.Pending())
	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_TriggerAfterRun(t *testing.T) {
	d := New(10 * time.Millisecond)

	var calls atomic.Int32
	ran := make(chan struct{}, 2)
	fn := func() {
		calls.Add(1)
		ran <- struct{}{}
	}

	d.Trigger(fn)
	<-ran
	d.Trigger(fn)
	<-ran

	assert.Equal(t, int32(2), calls.Load())
}
