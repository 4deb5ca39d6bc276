// Command petricore loads a YAML net document, compiles it, and drives it
// by repeatedly firing every automatic transition until none remain
// enabled — a small demo harness, not a scheduler: it never blocks waiting
// for a transition to become enabled, it just sweeps once per pass.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arcflow/petricore/core/petrinet"
	"github.com/arcflow/petricore/factory"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func main() {
	netPath := flag.String("net", "", "path to a YAML net document to load and run")
	verbose := flag.Bool("verbose", false, "emit structured fire/guard diagnostics to stderr")
	maxPasses := flag.Int("max-passes", 1000, "stop sweeping after this many passes even if transitions are still firing")
	flag.Parse()

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	if *netPath == "" {
		runInteractive(log)
		return
	}

	if err := runFile(*netPath, log, *maxPasses); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runInteractive(log zerolog.Logger) {
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║            PETRICORE — PETRI NET MONITOR DEMO              ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()

	entries, err := os.ReadDir("workflows")
	if err != nil {
		fmt.Printf("no workflows/ directory found: %v\n", err)
		return
	}

	var docs []string
	for _, e := range entries {
		if !e.IsDir() {
			docs = append(docs, e.Name())
		}
	}
	if len(docs) == 0 {
		fmt.Println("no net documents found under workflows/")
		return
	}

	for i, name := range docs {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	fmt.Print("\nSelect a net document (number) or 'q' to quit: ")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	choice := scanner.Text()
	if choice == "q" || choice == "Q" {
		fmt.Println("Goodbye!")
		return
	}

	idx := -1
	fmt.Sscanf(choice, "%d", &idx)
	if idx < 1 || idx > len(docs) {
		fmt.Println("invalid choice")
		return
	}

	if err := runFile(filepath.Join("workflows", docs[idx-1]), log, 1000); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func runFile(path string, log zerolog.Logger, maxPasses int) error {
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	n, err := factory.ParseFile(path, petrinet.WithLogger(log))
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	n.Initialize()

	fmt.Printf("✅ loaded %s (run %s)\n", path, runID)
	fmt.Printf("   places:      %d\n", len(n.GetPlaces()))
	fmt.Printf("   transitions: %d\n", len(n.GetTransitions()))
	fmt.Println()

	start := time.Now()
	totalFires, settled := sweep(n, log, maxPasses)
	if settled {
		fmt.Printf("\n✨ settled after %d fires in %v — no automatic transition remains enabled\n", totalFires, time.Since(start))
	} else {
		fmt.Printf("\n⏸  stopped after %d fires in %v — hit max-passes (%d) with transitions still firing\n", totalFires, time.Since(start), maxPasses)
	}

	for _, p := range n.GetPlaces() {
		fmt.Printf("   %-20s %d tokens\n", p.Name, p.TokenCount())
	}
	return nil
}

// sweep repeatedly scans every automatic transition in index order, firing
// each one that is enabled when its turn comes, until a full pass fires
// nothing or maxPasses is exhausted. It returns the number of successful fires and whether the net
// actually quiesced (false means maxPasses was hit first).
func sweep(n *petrinet.Net, log zerolog.Logger, maxPasses int) (int, bool) {
	automatic := n.GetAutomaticTransitions()
	total := 0
	for pass := 0; pass < maxPasses; pass++ {
		firedThisPass := false
		for t, isAutomatic := range automatic {
			if !isAutomatic {
				continue
			}
			outcome, err := n.Fire(t)
			if err != nil {
				log.Error().Err(err).Int("transition", t).Msg("fire failed")
				continue
			}
			if outcome == petrinet.Success {
				firedThisPass = true
				total++
			}
		}
		if !firedThisPass {
			return total, true
		}
	}
	return total, false
}
