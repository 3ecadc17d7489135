// Package parallel provides the chunked parallel-for primitive used to
// drive per-row kernel phases.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled bool // Whether parallel execution is enabled.
	Workers int  // Number of worker goroutines to use.
	MinRows int  // Minimum rows before fanning out to goroutines.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled: n > 1,
		Workers: n,
		MinRows: 256, // Fan-out below this is all scheduling overhead.
	}
}

// For executes f(i) for i in [0, n). Rows are split into contiguous
// chunks across workers; f must not depend on any other row's result.
// Falls back to a sequential loop when parallelism is disabled or n is
// too small to amortize goroutine startup.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.Workers <= 1 || n < cfg.MinRows {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + cfg.Workers - 1) / cfg.Workers
	if chunk < cfg.MinRows {
		chunk = cfg.MinRows
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
