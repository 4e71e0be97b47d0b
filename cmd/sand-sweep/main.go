package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"
)

func main() {
	width := flag.Int("w", 120, "world width")
	height := flag.Int("h", 90, "world height")
	frames := flag.Int("frames", 2000, "frame limit per scenario")
	pour := flag.Int("pour", 120, "frames during which sand is poured")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	sets := buildSets(baseMap(*width, *height, *seed, overrides))
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d frames)\n", len(sets), *workers, *frames)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(1, *workers); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(params, *pour, *frames)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if !res.settled {
			fmt.Printf("Did not settle within %d frames: %s\n", *frames, res.params)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].settleFrame != all[j].settleFrame {
			return all[i].settleFrame < all[j].settleFrame
		}
		return all[i].params.String() < all[j].params.String()
	})

	fmt.Printf("\nResults by settle frame (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for i, res := range all {
		fmt.Printf("%2d) settle=%d changed=%d sand=%d pile=%d %s\n",
			i+1, res.settleFrame, res.changed, res.sand, res.pileHeight, res.params)
	}
}
