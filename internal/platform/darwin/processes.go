//go:build darwin

package darwin

import (
	"context"
	"fmt"

	"github.com/mj1618/macos-computer/internal/platform"
	"github.com/shirou/gopsutil/v4/process"
)

// DarwinProcessLister implements platform.ProcessLister with gopsutil.
type DarwinProcessLister struct{}

// NewProcessLister creates a new process lister.
func NewProcessLister() *DarwinProcessLister {
	return &DarwinProcessLister{}
}

func (l *DarwinProcessLister) Processes(ctx context.Context) ([]platform.Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	out := make([]platform.Process, len(procs))
	for i, p := range procs {
		out[i] = darwinProcess{p}
	}
	return out, nil
}

type darwinProcess struct {
	p *process.Process
}

// Name fails when the process has exited or access is denied.
func (d darwinProcess) Name(ctx context.Context) (string, error) {
	return d.p.NameWithContext(ctx)
}
