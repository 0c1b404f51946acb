package solver

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudoku_solver_go/internal/types"
)

// ProgressReport carries batch progress updates for callers that want them.
type ProgressReport struct {
	Done    int
	Total   int
	Message string
}

// Result is the outcome of solving one puzzle in a batch.
type Result struct {
	Index    int
	Input    string
	Grid     *types.Grid
	Solved   bool
	Err      error
	Nodes    int
	Duration time.Duration
}

// SolveAll solves the given puzzle strings concurrently. Each worker owns
// its own Solver and each grid is touched by exactly one goroutine, so the
// per-puzzle search stays strictly sequential. Results are ordered like
// the input. progress may be nil; when set it receives one report per
// finished puzzle and must be drained by the caller.
func SolveAll(puzzles []string, workers int, progress chan<- ProgressReport) []Result {
	if workers <= 0 || workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers > len(puzzles) {
		workers = len(puzzles)
	}

	jobs := make(chan int, len(puzzles))
	results := make([]Result, len(puzzles))
	var done int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := New()
			for i := range jobs {
				results[i] = solveOne(s, i, puzzles[i])
				n := atomic.AddInt64(&done, 1)
				if progress != nil {
					progress <- ProgressReport{
						Done:    int(n),
						Total:   len(puzzles),
						Message: fmt.Sprintf("finished puzzle %d/%d", n, len(puzzles)),
					}
				}
			}
		}()
	}

	for i := range puzzles {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func solveOne(s *Solver, i int, puzzle string) Result {
	res := Result{Index: i, Input: puzzle}
	g, err := types.FromString(puzzle)
	if err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	res.Solved = s.Solve(g)
	res.Duration = time.Since(start)
	res.Nodes = s.Nodes()
	if res.Solved {
		res.Grid = g
	}
	return res
}
