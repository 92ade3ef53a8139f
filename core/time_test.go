package core_test

import (
	"testing"
	"time"

	"github.com/devblok/prism/core"
)

func TestTimeFps(t *testing.T) {
	clock := core.NewTime(core.TimeConfiguration{FramesPerSecond: 60})
	defer clock.Stop()

	if clock.Fps() != 60 {
		t.Errorf("unexpected fps %d", clock.Fps())
	}
	if clock.FpsTicker() == nil || clock.EventTicker() == nil {
		t.Fatal("tickers not initialized")
	}
}

func TestTimeZeroConfiguration(t *testing.T) {
	// Uncapped fps and a defaulted poll delay must still tick.
	clock := core.NewTime(core.TimeConfiguration{})
	defer clock.Stop()

	select {
	case <-clock.FpsTicker().C:
	case <-time.After(time.Second):
		t.Fatal("uncapped fps ticker did not tick")
	}
	select {
	case <-clock.EventTicker().C:
	case <-time.After(time.Second):
		t.Fatal("event ticker did not tick")
	}
}

func TestTimeFpsInterval(t *testing.T) {
	clock := core.NewTime(core.TimeConfiguration{FramesPerSecond: 100})
	defer clock.Stop()

	<-clock.FpsTicker().C
	start := time.Now()
	<-clock.FpsTicker().C
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("a 100 fps tick took %s", elapsed)
	}
}
