// Package main implements a load generator for exercising the tracking
// package with configurable write rates and realistic mutation scenarios,
// useful for profiling snapshot and recording overhead.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/attrhist/attribute-tracking-go/tracking"
)

type Config struct {
	Rate     int
	Duration time.Duration
	Verbose  bool
}

func parseFlags() Config {
	cfg := Config{}

	flag.IntVar(&cfg.Rate, "rate", 1000, "writes per second")
	flag.DurationVar(&cfg.Duration, "duration", 10*time.Second, "how long to generate load")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "log every recorded change")
	flag.Parse()

	if cfg.Rate < 1 {
		log.Fatalf("rate must be at least 1, got %d", cfg.Rate)
	}

	return cfg
}

// slogLogger adapts a *slog.Logger to the tracking.Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

func (l slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func main() {
	cfg := parseFlags()

	var opts []tracking.Option
	if cfg.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, tracking.WithLogger(slogLogger{logger: slog.New(handler)}))
	}

	tracked, err := tracking.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create tracked instance: %v", err)
	}

	tracked.Set("counter", 0)
	tracked.Set("items", []any{})
	tracked.Set("data", map[string]any{})

	items, _ := tracked.Get("items")
	data, _ := tracked.Get("data")

	list := items.(*tracking.List)
	dict := data.(*tracking.Dict)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Rate))
	defer ticker.Stop()

	deadline := time.After(cfg.Duration)
	started := time.Now()
	writes := 0

loop:
	for {
		select {
		case <-deadline:
			break loop
		case <-ticker.C:
			switch rand.Intn(3) {
			case 0:
				tracked.Set("counter", writes)
			case 1:
				list.Append(rand.Intn(100))
				if list.Len() > 100 {
					if _, popErr := list.Pop(); popErr != nil {
						log.Fatalf("Failed to pop: %v", popErr)
					}
				}
			case 2:
				dict.Set(fmt.Sprintf("key-%d", rand.Intn(50)), rand.Intn(100))
			}

			writes++
		}
	}

	elapsed := time.Since(started)

	fmt.Printf("Generated %d writes in %s (%.1f writes/sec)\n",
		writes, elapsed.Round(time.Millisecond), float64(writes)/elapsed.Seconds())
	fmt.Printf("History size: %d records (instance %s)\n",
		tracked.History().Len(), tracked.History().InstanceID())

	for _, attr := range []string{"counter", "items", "data"} {
		view, viewErr := tracked.GetChangeHistory(tracking.ForAttribute(attr))
		if viewErr != nil {
			log.Fatalf("Failed to query history: %v", viewErr)
		}

		fmt.Printf("  %s: %d records\n", attr, len(view.Records()))
	}
}
