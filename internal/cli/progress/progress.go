package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"patchverk/internal/core/domain"

	"golang.org/x/term"
)

// Status represents the state of a patch operation
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
)

// Item is one tracked patch operation
type Item struct {
	Name     string
	Variant  string
	Status   Status
	Duration time.Duration
	Error    error
}

// Tracker renders the progress of sequential patch calls. On a TTY it animates a
// spinner for the running item; otherwise it prints one timestamped line per event.
// It implements core.ApplyObserver.
type Tracker struct {
	mu           sync.Mutex
	wg           sync.WaitGroup
	out          io.Writer
	items        []Item
	current      int
	startTime    time.Time
	isTTY        bool
	useColor     bool
	caps         terminalCapabilities
	stopChan     chan struct{}
	stopOnce     sync.Once
	spinnerFrame int
}

var spinnerFrames = []string{"✦", "✸", "✹", "❋", "✹", "✸"}

// NewTracker creates a tracker for the given operations writing to stdout.
func NewTracker(operations []domain.PatchOperation) *Tracker {
	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	caps := detectCapabilities()

	tracker := newTracker(os.Stdout, operations, isTTY)
	tracker.useColor = !noColor && isTTY && caps.supportsANSI
	tracker.caps = caps
	return tracker
}

func newTracker(out io.Writer, operations []domain.PatchOperation, isTTY bool) *Tracker {
	items := make([]Item, len(operations))
	for i, operation := range operations {
		items[i] = Item{Name: operation.ID(), Variant: operation.Variant, Status: StatusPending}
	}

	return &Tracker{
		out:      out,
		items:    items,
		current:  -1,
		isTTY:    isTTY,
		caps:     terminalCapabilities{terminalWidth: 80},
		stopChan: make(chan struct{}),
	}
}

// Start starts the spinner animation in TTY mode
func (t *Tracker) Start() {
	if t.isTTY {
		t.wg.Add(1)
		go t.animate()
	}
}

// Stop ends the animation and clears the spinner line
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()

	if t.isTTY {
		t.mu.Lock()
		if t.useColor {
			fmt.Fprint(t.out, "\033[0m")
		}
		fmt.Fprint(t.out, clearLine(t.caps))
		t.mu.Unlock()
	}
}

func (t *Tracker) OperationStarted(index int, _ domain.PatchOperation) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = index
	t.items[index].Status = StatusRunning
	t.startTime = time.Now()

	if !t.isTTY {
		fmt.Fprintf(t.out, "[%s] %s Patching %s...\n", time.Now().Format("15:04:05"), t.counter(index), t.displayName(t.items[index]))
	}
}

func (t *Tracker) OperationCompleted(index int, _ domain.PatchOperation, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item := &t.items[index]
	item.Duration = time.Since(t.startTime)
	item.Status = StatusSuccess
	if err != nil {
		item.Status = StatusFailed
		item.Error = err
	}

	if !t.isTTY {
		sym, status := "+", "patched"
		if err != nil {
			sym, status = "x", "FAILED"
		}
		fmt.Fprintf(t.out, "[%s] %s %s %s (%s)\n", time.Now().Format("15:04:05"), sym, item.Name, status, formatDuration(item.Duration))
		return
	}

	fmt.Fprint(t.out, clearLine(t.caps))
	sym := t.colorize("+", "\033[32m")
	suffix := fmt.Sprintf("(%s)", formatDuration(item.Duration))
	if err != nil {
		sym = t.colorize("x", "\033[31m")
		suffix += " FAILED"
	}
	fmt.Fprintf(t.out, "  %s %s  %s  %s\n", sym, t.colorize(t.counter(index), "\033[2m"), t.displayName(*item), t.colorize(suffix, "\033[2m"))
}

// Items returns a snapshot of the tracked items
func (t *Tracker) Items() []Item {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := make([]Item, len(t.items))
	copy(items, t.items)
	return items
}

// Summary returns e.g. "3 patched, 1 failed in 2s"
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total time.Duration
	patched, failed := 0, 0
	for _, item := range t.items {
		total += item.Duration
		switch item.Status {
		case StatusSuccess:
			patched++
		case StatusFailed:
			failed++
		}
	}

	parts := []string{fmt.Sprintf("%d patched", patched)}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), formatDuration(total))
}

func (t *Tracker) animate() {
	defer t.wg.Done()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.current >= 0 && t.items[t.current].Status == StatusRunning {
				t.spinnerFrame++
				spinner := spinnerFrames[t.spinnerFrame%len(spinnerFrames)]
				item := t.items[t.current]
				line := fmt.Sprintf(
					"  %s %s  %s  %s",
					t.colorize(spinner, "\033[1m"),
					t.counter(t.current),
					t.displayName(item),
					t.colorize(formatDuration(time.Since(t.startTime)), "\033[2m"),
				)
				fmt.Fprint(t.out, clearLine(t.caps)+truncateToWidth(line, t.caps.terminalWidth))
			}
			t.mu.Unlock()
		}
	}
}

func (t *Tracker) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, len(t.items))
}

func (t *Tracker) displayName(item Item) string {
	if item.Variant == "" {
		return item.Name
	}
	return fmt.Sprintf("%s %s", item.Name, t.colorize("("+item.Variant+")", "\033[2m"))
}

func (t *Tracker) colorize(text string, code string) string {
	if !t.useColor {
		return text
	}
	return code + text + "\033[0m"
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second

	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
