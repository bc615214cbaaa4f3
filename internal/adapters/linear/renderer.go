// Package linear provides a line-buffered renderer for logs and CI.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"github.com/juspay/omnix-sub000/internal/ui/output"
	"github.com/juspay/omnix-sub000/internal/ui/style"
	"github.com/muesli/termenv"
)

// Renderer implements ports.Renderer with chronological, prefixed lines.
// Units are top-level spans; steps are their children. Step output is
// prefixed with "[unit/step]", or folded into log groups when grouping
// is enabled.
type Renderer struct {
	w        io.Writer
	output   *termenv.Output
	grouping bool

	mu    sync.Mutex
	spans map[string]*span
}

type span struct {
	label     string
	isStep    bool
	startTime time.Time
	partial   bytes.Buffer
}

// NewRenderer creates a new Renderer writing to w. With grouping, every
// step is wrapped in GitHub Actions ::group:: markers.
func NewRenderer(w io.Writer, grouping bool) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:        w,
		output:   output.NewWithProfile(w, output.ColorProfileANSI),
		grouping: grouping,
		spans:    make(map[string]*span),
	}
}

// WithProfile replaces the color profile selector used for styling.
func (r *Renderer) WithProfile(profileFn func() termenv.Profile) *Renderer {
	r.output = output.NewWithProfile(r.w, profileFn)
	return r
}

// Start is a no-op; the renderer writes synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes partial lines of spans that never completed.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.spans {
		r.flushLocked(s)
	}
	return nil
}

// Wait is a no-op; the renderer writes synchronously.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the units about to run.
func (r *Renderer) OnPlanEmit(units []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(units) == 0 {
		r.println(r.faint("Nothing to build"))
		return
	}
	r.println(r.faint(fmt.Sprintf("Building %d subflake(s): %s", len(units), strings.Join(units, ", "))))
}

// OnTaskStart announces a unit or a step.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &span{label: name, startTime: startTime}
	if parent, ok := r.spans[parentID]; ok && parentID != "" {
		s.label = parent.label + "/" + name
		s.isStep = true
	}
	r.spans[spanID] = s

	switch {
	case !s.isStep:
		r.println(r.colored(style.Dot+" "+name, style.Blue))
	case r.grouping:
		r.println("::group::" + s.label)
	default:
		r.println(r.prefix(s) + " " + r.faint("Starting..."))
	}
}

// OnTaskLog prints complete lines of data; partial lines are buffered.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}

	s.partial.Write(data)
	for {
		line, err := s.partial.ReadBytes('\n')
		if err != nil {
			// Keep the incomplete tail for the next write.
			rest := append([]byte(nil), line...)
			s.partial.Reset()
			s.partial.Write(rest)
			return
		}
		r.printLineLocked(s, line)
	}
}

// OnTaskComplete flushes the span and prints its status.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}
	r.flushLocked(s)
	delete(r.spans, spanID)

	if s.isStep && r.grouping {
		r.println("::endgroup::")
	}

	elapsed := endTime.Sub(s.startTime).Round(time.Millisecond)
	head := s.label
	if s.isStep {
		head = r.prefix(s)
	}

	if err != nil {
		r.println(fmt.Sprintf("%s %s failed after %v: %v", head, r.colored(style.Cross, style.Red), elapsed, err))
		return
	}
	r.println(fmt.Sprintf("%s %s done in %v", head, r.colored(style.Check, style.Green), elapsed))
}

func (r *Renderer) flushLocked(s *span) {
	if s.partial.Len() > 0 {
		r.printLineLocked(s, s.partial.Bytes())
		s.partial.Reset()
	}
}

func (r *Renderer) printLineLocked(s *span, line []byte) {
	line = bytes.TrimRight(line, "\r\n")
	if len(line) == 0 {
		return
	}
	if r.grouping || !s.isStep {
		r.println(string(line))
		return
	}
	r.println(r.prefix(s) + " " + string(line))
}

func (r *Renderer) prefix(s *span) string {
	return r.faint("[" + s.label + "]")
}

func (r *Renderer) faint(s string) string {
	return r.output.String(s).Faint().String()
}

func (r *Renderer) colored(s string, color lipgloss.Color) string {
	return r.output.String(s).Foreground(r.output.Color(string(color))).String()
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

var _ ports.Renderer = (*Renderer)(nil)
