package app

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

type stage struct {
	name    string
	elapsed time.Duration
}

// profile records how long startup stages take, measured from process start.
// A disabled profile records nothing.
type profile struct {
	enabled bool
	start   time.Time

	mu     sync.Mutex
	stages []stage
	now    func() time.Time
}

func newProfile(enabled bool, start time.Time) *profile {
	return &profile{enabled: enabled, start: start, now: time.Now}
}

// mark records name once. Later marks with the same name are ignored.
func (p *profile) mark(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.stages {
		if s.name == name {
			return
		}
	}
	p.stages = append(p.stages, stage{name: name, elapsed: p.now().Sub(p.start)})
}

func (p *profile) snapshot() []stage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]stage(nil), p.stages...)
}

// report writes the recorded stages to the log, or to w when nothing is
// being logged.
func (p *profile) report(log logr.Logger, logging bool, w io.Writer) {
	if !p.enabled {
		return
	}
	for _, s := range p.snapshot() {
		if logging {
			log.Info("startup timing", "stage", s.name, "elapsed", s.elapsed.String())
			continue
		}
		_, _ = fmt.Fprintf(w, "nebula-keybind-menu: %s after %s\n", s.name, s.elapsed.Round(time.Microsecond))
	}
}
