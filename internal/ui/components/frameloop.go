package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"landing/internal/platform/clock"
)

// FrameMsg is one animation tick. Gen identifies the run of the loop that
// scheduled it.
type FrameMsg struct {
	LoopID string
	Gen    uint64
	At     time.Time
}

// FrameLoop schedules ticks at a fixed period while running. Elapsed time is
// measured from Start, so a slow or dropped frame never accumulates drift.
type FrameLoop struct {
	id      string
	period  time.Duration
	clock   clock.Clock
	gen     uint64
	start   time.Time
	running bool
}

func NewFrameLoop(id string, period time.Duration, c clock.Clock) *FrameLoop {
	if c == nil {
		c = clock.SystemClock{}
	}
	return &FrameLoop{id: id, period: period, clock: c}
}

// Start begins a new run and returns the command for its first tick. Ticks
// from earlier runs are ignored from now on.
func (l *FrameLoop) Start() tea.Cmd {
	l.gen++
	l.start = l.clock.Now()
	l.running = true
	return l.tick()
}

// Stop cancels the loop. In-flight ticks are dropped when they arrive.
func (l *FrameLoop) Stop() {
	l.gen++
	l.running = false
}

func (l *FrameLoop) Running() bool { return l.running }

// Handle accepts a tick for the current run. It returns the elapsed
// milliseconds and the command for the next tick; ok is false for stale or
// foreign ticks, which never schedule another.
func (l *FrameLoop) Handle(msg FrameMsg) (elapsedMs float64, next tea.Cmd, ok bool) {
	if !l.running || msg.LoopID != l.id || msg.Gen != l.gen {
		return 0, nil, false
	}
	d := msg.At.Sub(l.start)
	if d < 0 {
		d = 0
	}
	return float64(d.Milliseconds()), l.tick(), true
}

func (l *FrameLoop) tick() tea.Cmd {
	id, gen := l.id, l.gen
	return tea.Tick(l.period, func(t time.Time) tea.Msg {
		return FrameMsg{LoopID: id, Gen: gen, At: t}
	})
}
