package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"mini-fortress/internal/profiling"
	"mini-fortress/internal/settings"

	"github.com/xlab/closer"
)

const (
	tickRate      = 20
	slowTickLimit = 2 * time.Millisecond
)

func main() {
	settingsPath := flag.String("settings", "", "path to the agent settings YAML file")
	ticks := flag.Int("ticks", 200, "number of ticks to simulate")
	seed := flag.Int64("seed", 1, "random seed")
	watch := flag.Bool("watch", false, "reload the settings file when it changes")
	realtime := flag.Bool("realtime", false, "pace ticks at 20 per second")
	flag.Parse()

	logger := log.New(os.Stdout, "[agentsim] ", log.LstdFlags|log.Lmicroseconds)

	cfg := settings.Defaults()
	cfg.AllowInventory = true
	if *settingsPath != "" {
		loaded, err := settings.Load(*settingsPath)
		if err != nil {
			logger.Fatalf("load settings: %v", err)
		}
		cfg = loaded
	}
	store := settings.NewStore(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	closer.Bind(func() {
		cancel()
		logger.Printf("shutting down")
	})

	if *watch && *settingsPath != "" {
		if err := settings.Watch(ctx, *settingsPath, store, logger); err != nil {
			logger.Fatalf("watch settings: %v", err)
		}
	}

	sim, err := newSimulation(store, rand.New(rand.NewSource(*seed)), logger)
	if err != nil {
		logger.Fatalf("build simulation: %v", err)
	}

	go func() {
		defer closer.Close()
		var ticker *time.Ticker
		if *realtime {
			ticker = time.NewTicker(time.Second / tickRate)
			defer ticker.Stop()
		}
		for tick := range *ticks {
			if ctx.Err() != nil {
				return
			}
			profiling.ResetTick()
			start := time.Now()
			done := sim.Tick(tick)
			if d := time.Since(start); d > slowTickLimit {
				logger.Printf("slow tick %d: %v (tracked %v, %d clicks). Top tasks: %s",
					tick, d, profiling.Total(), profiling.Calls("placer.Tick"), profiling.TopN(3))
			}
			if done {
				logger.Printf("all goals finished after %d ticks", tick+1)
				break
			}
			if ticker != nil {
				<-ticker.C
			}
		}
		sim.Report()
	}()

	closer.Hold()
}
