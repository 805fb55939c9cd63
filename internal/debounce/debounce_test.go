package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncer_SingleCall(t *testing.T) {
	var called int32
	d := New(20*time.Millisecond, func(string) {
		atomic.AddInt32(&called, 1)
	})

	d.Call("octo")
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&called); got != 1 {
		t.Errorf("expected 1 call, got %d", got)
	}
	if d.Pending() {
		t.Error("expected nothing pending after the call ran")
	}
}

func TestDebouncer_RapidCallsUseLastArgument(t *testing.T) {
	var mu sync.Mutex
	var calls []string
	d := New(40*time.Millisecond, func(q string) {
		mu.Lock()
		calls = append(calls, q)
		mu.Unlock()
	})

	for _, q := range []string{"o", "oc", "oct", "octo"} {
		d.Call(q)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call for rapid succession, got %d: %v", len(calls), calls)
	}
	if calls[0] != "octo" {
		t.Errorf("expected last argument %q, got %q", "octo", calls[0])
	}
}

func TestDebouncer_SeparatedCallsBothRun(t *testing.T) {
	var called int32
	d := New(10*time.Millisecond, func(int) {
		atomic.AddInt32(&called, 1)
	})

	d.Call(1)
	time.Sleep(60 * time.Millisecond)
	d.Call(2)
	time.Sleep(60 * time.Millisecond)

	if got := atomic.LoadInt32(&called); got != 2 {
		t.Errorf("expected 2 calls, got %d", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	var called int32
	d := New(30*time.Millisecond, func(string) {
		atomic.AddInt32(&called, 1)
	})

	d.Call("x")
	if !d.Pending() {
		t.Fatal("expected a pending call")
	}
	if !d.Cancel() {
		t.Error("Cancel should report a pending call")
	}
	if d.Cancel() {
		t.Error("second Cancel should report nothing pending")
	}
	time.Sleep(80 * time.Millisecond)

	if got := atomic.LoadInt32(&called); got != 0 {
		t.Errorf("expected 0 calls after cancel, got %d", got)
	}
}

func TestDebouncer_StaleGenerationDropped(t *testing.T) {
	var called int32
	d := New(time.Hour, func(int) {
		atomic.AddInt32(&called, 1)
	})

	d.Call(1)
	d.mu.Lock()
	stale := d.gen
	d.mu.Unlock()
	d.Call(2)

	// Simulate the first timer firing after it was superseded.
	d.fire(stale, 1)
	if got := atomic.LoadInt32(&called); got != 0 {
		t.Errorf("superseded call ran %d times", got)
	}
	d.Cancel()
}

func TestDebouncer_Delay(t *testing.T) {
	d := New(400*time.Millisecond, func(string) {})
	if d.Delay() != 400*time.Millisecond {
		t.Errorf("Delay() = %v, want 400ms", d.Delay())
	}
}
