package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"

	"lifegrid/internal/patterns"
	"lifegrid/internal/sims/life"
)

func main() {
	runs := flag.Int("runs", 32, "number of random boards to evolve")
	steps := flag.Int("steps", 500, "generations to simulate per board")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	width := flag.Int("w", 100, "grid width in cells")
	height := flag.Int("h", 100, "grid height in cells")
	density := flag.Float64("density", 0.2, "initial probability of a live cell")
	seed := flag.Int64("seed", 1, "seed of the first run; later runs use consecutive seeds")
	rule := flag.String("rule", "Conway", "rule name or B/S notation")
	wrap := flag.Bool("wrap", false, "connect opposite edges (torus)")
	verbose := flag.Bool("v", false, "print one line per run")
	flag.Parse()

	if _, err := life.LookupRule(*rule); err != nil {
		log.Fatalf("life-census: %v", err)
	}
	if *runs <= 0 {
		log.Fatalf("life-census: -runs must be positive")
	}

	cfg := life.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Density = *density
	cfg.Rule = *rule
	cfg.Wrap = *wrap

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := life.Survey(ctx, cfg, *steps, seeds, *workers, patterns.DefaultCatalog())
	if err != nil {
		log.Fatalf("life-census: %v", err)
	}

	if *verbose {
		for _, r := range results {
			fmt.Printf("seed %d: population %d after %d generations, %d patterns\n",
				r.Seed, r.Population, r.Generations, total(r.Census))
		}
		fmt.Println()
	}

	population := 0
	for _, r := range results {
		population += r.Population
	}
	fmt.Printf("%d runs of %dx%d, %d generations, density %.2f\n", len(results), cfg.Width, cfg.Height, *steps, cfg.Density)
	fmt.Printf("Mean final population: %.1f\n", float64(population)/float64(len(results)))

	census := life.MergeCensus(results)
	if len(census) == 0 {
		fmt.Println("No known patterns found.")
		return
	}
	names := make([]string, 0, len(census))
	for name := range census {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if census[names[i]] != census[names[j]] {
			return census[names[i]] > census[names[j]]
		}
		return names[i] < names[j]
	})

	catalog := patterns.DefaultCatalog()
	fmt.Println("\nPatterns:")
	for _, name := range names {
		category := ""
		if def, ok := catalog.Lookup(name); ok {
			category = string(def.Category)
		}
		fmt.Printf("  %-24s %-12s %6d  (%.2f per run)\n", name, category, census[name], float64(census[name])/float64(len(results)))
	}
}

func total(census map[string]int) int {
	n := 0
	for _, v := range census {
		n += v
	}
	return n
}
