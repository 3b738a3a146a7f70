package parallax

// FrameHandle identifies a scheduled frame callback.
type FrameHandle uint64

// Scheduler delivers one callback per display refresh, like a browser's
// requestAnimationFrame. A callback requested during a frame runs on the
// next one. CancelFrame on a handle that already ran is a no-op.
type Scheduler interface {
	RequestFrame(fn func(dt float32)) FrameHandle
	CancelFrame(h FrameHandle)
}

// DriverState is the frame driver's lifecycle state.
type DriverState uint8

const (
	DriverIdle    DriverState = iota // no frame scheduled
	DriverRunning                    // exactly one frame callback pending
)

func (s DriverState) String() string {
	if s == DriverRunning {
		return "running"
	}
	return "idle"
}

// Driver runs an Engine's tick once per scheduled frame between Mount and
// Unmount. Every Mount must be paired with an Unmount; Unmount cancels the
// pending callback so nothing keeps the surface or entities alive.
type Driver struct {
	engine  *Engine
	sched   Scheduler
	surface Surface

	state   DriverState
	pending FrameHandle
	frame   uint64
	leaks   int
}

// NewDriver creates an idle driver painting engine onto surface on frames
// delivered by sched.
func NewDriver(engine *Engine, sched Scheduler, surface Surface) *Driver {
	return &Driver{engine: engine, sched: sched, surface: surface}
}

// State returns the driver's lifecycle state.
func (d *Driver) State() DriverState {
	return d.state
}

// Leaks returns how many callbacks fired after Unmount.
func (d *Driver) Leaks() int {
	return d.leaks
}

// Mount transitions Idle→Running and schedules the first frame. Mounting a
// running driver is a no-op.
func (d *Driver) Mount() {
	if d.state == DriverRunning {
		return
	}
	d.engine.mount()
	d.state = DriverRunning
	d.schedule()
}

// Unmount transitions Running→Idle and cancels the pending frame.
func (d *Driver) Unmount() {
	if d.state == DriverIdle {
		return
	}
	d.state = DriverIdle
	d.sched.CancelFrame(d.pending)
	d.pending = 0
}

func (d *Driver) schedule() {
	var handle FrameHandle
	handle = d.sched.RequestFrame(func(dt float32) {
		d.tick(handle, dt)
	})
	d.pending = handle
}

func (d *Driver) tick(handle FrameHandle, dt float32) {
	if d.state != DriverRunning || handle != d.pending {
		d.leaks++
		debugCheckLeak(d.engine, handle)
		return
	}
	d.frame++
	d.engine.Tick(Frame{Surface: d.surface, DT: dt, Number: d.frame})
	// Unmount may have run from inside the tick (e.g. a click callback).
	if d.state == DriverRunning {
		d.schedule()
	}
}

// ManualScheduler is a Scheduler stepped explicitly, for tests and headless
// rendering.
type ManualScheduler struct {
	// DT is passed to every callback. Zero means 1/60.
	DT float32

	next    FrameHandle
	pending []scheduledFrame
}

type scheduledFrame struct {
	handle FrameHandle
	fn     func(dt float32)
}

// RequestFrame queues fn for the next Step.
func (s *ManualScheduler) RequestFrame(fn func(dt float32)) FrameHandle {
	s.next++
	s.pending = append(s.pending, scheduledFrame{handle: s.next, fn: fn})
	return s.next
}

// CancelFrame removes a queued callback.
func (s *ManualScheduler) CancelFrame(h FrameHandle) {
	s.pending = removeFrame(s.pending, h)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.pending)
}

// Step runs the callbacks queued before the call and returns how many ran.
// Callbacks requested while stepping wait for the next Step.
func (s *ManualScheduler) Step() int {
	due := s.pending
	s.pending = nil
	dt := s.DT
	if dt == 0 {
		dt = 1.0 / 60
	}
	for _, f := range due {
		f.fn(dt)
	}
	return len(due)
}

// Run steps n frames.
func (s *ManualScheduler) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func removeFrame(s []scheduledFrame, h FrameHandle) []scheduledFrame {
	for i := range s {
		if s[i].handle == h {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = scheduledFrame{}
			return s[:len(s)-1]
		}
	}
	return s
}
