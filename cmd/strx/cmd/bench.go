package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/msto63/strx/foundation/core/log"
	"github.com/msto63/strx/foundation/utils/stringx"
)

var (
	benchWorkers int
	benchJobs    int
	benchOps     int
	benchSize    int
	benchChunk   int
	benchReserve bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Concurrent allocation benchmark",
	Long: `Runs --workers goroutines (at most --jobs at a time). Each builds
--ops strings of --size bytes by appending --chunk sized pieces and counts
heap allocations through a shared counting allocator.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntVarP(&benchWorkers, "workers", "w", 4, "number of workers")
	f.IntVarP(&benchJobs, "jobs", "j", 0, "parallel workers (default: all)")
	f.IntVar(&benchOps, "ops", 10000, "strings per worker")
	f.IntVar(&benchSize, "size", 64, "final string length")
	f.IntVar(&benchChunk, "chunk", 8, "bytes per append")
	f.BoolVar(&benchReserve, "reserve", false, "reserve the final size up front")
	rootCmd.AddCommand(benchCmd)
}

type benchResult struct {
	worker   int
	ops      int
	heap     int
	duration time.Duration
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchWorkers <= 0 || benchOps <= 0 || benchChunk <= 0 || benchSize < 0 {
		return fmt.Errorf("workers, ops and chunk must be positive, size must not be negative")
	}
	extra, err := toUint32(int64(benchSize))
	if err != nil {
		return err
	}

	counter := &stringx.CountingAllocator{}
	if limit := appConfig.Strings.MaxCapacity; limit > 0 {
		counter.Next = stringx.LimitAllocator{Max: limit}
	}
	opts := stringOptions(stringx.WithAllocator(counter))
	chunk := strings.Repeat("x", benchChunk)

	timer := logger.StartTimer("bench").
		WithLevel(log.LevelInfo).
		WithField("workers", benchWorkers).
		WithField("ops", benchOps)

	var failures atomic.Int64
	results := make([]benchResult, benchWorkers)

	g, gctx := errgroup.WithContext(cmd.Context())
	jobs := benchJobs
	if jobs <= 0 {
		jobs = benchWorkers
	}
	g.SetLimit(jobs)

	for w := range results {
		w := w
		g.Go(func() error {
			started := time.Now()
			r := benchResult{worker: w + 1}
			for i := 0; i < benchOps; i++ {
				if i%256 == 0 {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
				}

				s, err := stringx.New("", opts...)
				if err != nil {
					return err
				}
				if benchReserve {
					if err := s.Reserve(extra); err != nil {
						failures.Add(1)
						continue
					}
				}
				for int(s.Len()) < benchSize {
					if err := s.AppendString(chunk); err != nil {
						failures.Add(1)
						break
					}
				}
				if s.IsHeap() {
					r.heap++
				}
				r.ops++
				if err := s.Release(); err != nil {
					return err
				}
			}
			r.duration = time.Since(started)
			results[w] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		timer.StopWithError(err)
		return err
	}
	elapsed := timer.Stop()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderHeader(" Bench "))
	table := tablewriter.NewWriter(out)
	table.Header("Worker", "Strings", "Heap", "Duration", "ns/string")
	for _, r := range results {
		perOp := int64(0)
		if r.ops > 0 {
			perOp = r.duration.Nanoseconds() / int64(r.ops)
		}
		table.Append(
			strconv.Itoa(r.worker),
			strconv.Itoa(r.ops),
			strconv.Itoa(r.heap),
			r.duration.Round(time.Microsecond).String(),
			strconv.FormatInt(perOp, 10),
		)
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(out, renderLabel("allocs", strconv.FormatInt(counter.Calls(), 10)))
	fmt.Fprintln(out, renderLabel("bytes", strconv.FormatUint(counter.Bytes(), 10)))
	fmt.Fprintln(out, renderLabel("failures", strconv.FormatInt(failures.Load(), 10)))
	fmt.Fprintln(out, renderLabel("elapsed", elapsed.Round(time.Microsecond).String()))
	return nil
}
