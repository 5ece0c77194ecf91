package engine

import (
	"runtime"
	"sync"

	"github.com/cxd309/sweptpath-engine/internal/geometry"
	"github.com/cxd309/sweptpath-engine/internal/vehicle"
)

// Job is one independent simulation request.
type Job struct {
	Path    geometry.Path
	Vehicle vehicle.Config
	Options Options
}

// JobResult pairs a Job's Result with its error.
type JobResult struct {
	Result Result
	Err    error
}

// SimulateAll runs jobs on up to workers goroutines and returns the results
// in job order. workers <= 0 uses GOMAXPROCS. Runs share no state.
func SimulateAll(jobs []Job, workers int) []JobResult {
	results := make([]JobResult, len(jobs))
	if len(jobs) == 0 {
		return results
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(jobs))

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				res, err := Simulate(jobs[i].Path, jobs[i].Vehicle, jobs[i].Options)
				results[i] = JobResult{Result: res, Err: err}
			}
		}()
	}
	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()
	return results
}
