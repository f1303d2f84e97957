// Command demo runs ownership scenarios against the sharedref handle
// machinery and reports what the trace registry observed. It can serve
// the registry as Prometheus metrics and has an interactive mode that
// steps through a scenario live.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/sharedref/metrics"
	"github.com/wippyai/sharedref/rc"
	"github.com/wippyai/sharedref/trace"
)

func main() {
	var (
		scenarioFile = flag.String("scenario", "", "Path to YAML scenario file (built-in default if empty)")
		metricsAddr  = flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g. :9090)")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", false, "Log every block event")
	)
	flag.Parse()

	if err := run(*scenarioFile, *metricsAddr, *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenarioFile, metricsAddr string, interactive, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		rc.SetLogger(logger)
		defer rc.SetLogger(nil)
	}

	sc, err := LoadScenario(scenarioFile)
	if err != nil {
		return err
	}

	registry := trace.NewRegistry(logger)
	rc.SetObserver(registry)
	defer rc.SetObserver(nil)

	if metricsAddr != "" {
		promReg := prometheus.NewRegistry()
		if err := promReg.Register(metrics.NewCollector(registry)); err != nil {
			return fmt.Errorf("register collector: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.Error("metrics server", zap.Error(err))
			}
		}()
		fmt.Printf("Serving metrics on %s/metrics\n", metricsAddr)
	}

	var counter trace.Counter

	if interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(sc, registry, &counter)
	}

	fmt.Printf("Scenario: %s\n\n", sc.Name)

	p := newPlayer(sc, &counter)
	for {
		desc, done, err := p.Step()
		if err != nil {
			return fmt.Errorf("%s: %w", desc, err)
		}
		if desc != "" {
			st := registry.Stats()
			fmt.Printf("  %-40s blocks=%d values=%d\n", desc, st.LiveBlocks, st.LiveValues)
		}
		if done {
			break
		}
	}

	st := registry.Stats()
	fmt.Printf("\nAcquired: %d  Disposed: %d  Freed: %d\n", st.Acquired, st.Disposed, st.Freed)

	if err := registry.Verify(); err != nil {
		return err
	}
	fmt.Println("All blocks disposed and freed.")
	return nil
}
