package parallax

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and paint metrics.
// Only populated when Engine.debug is true.
type frameStats struct {
	advanceTime  time.Duration
	sortTime     time.Duration
	paintTime    time.Duration
	entityCount  int
	commandCount int
}

// debugLog prints timing and paint stats to stderr.
func (e *Engine) debugLog(stats frameStats) {
	if !e.debug {
		return
	}
	total := stats.advanceTime + stats.sortTime + stats.paintTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[parallax] frame %d | advance: %v | sort: %v | paint: %v | total: %v\n",
		e.frames, stats.advanceTime, stats.sortTime, stats.paintTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[parallax] entities: %d | painted: %d | offset: (%.1f, %.1f)\n",
		stats.entityCount, stats.commandCount, e.offsetX.Value, e.offsetY.Value)
}

// debugCheckLeak reports a frame callback that fired on an unmounted driver.
// In debug mode it panics; otherwise the frame is dropped after a warning.
func debugCheckLeak(e *Engine, handle FrameHandle) {
	msg := fmt.Sprintf("frame callback %d fired after unmount; the scheduler kept a cancelled callback", handle)
	if e.debug {
		panic("parallax debug: " + msg)
	}
	_, _ = fmt.Fprintf(os.Stderr, "[parallax] warning: %s\n", msg)
}
