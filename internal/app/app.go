// Package app assembles the dashboard from its services and runs it until
// the operator quits or the context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"weighbridge/internal/catalog"
	"weighbridge/internal/config"
	"weighbridge/internal/domain"
	"weighbridge/internal/eventbus"
	"weighbridge/internal/logging"
	"weighbridge/internal/logic"
	"weighbridge/internal/recent"
	"weighbridge/internal/scale"
	"weighbridge/internal/search"
	"weighbridge/internal/ticket"
	"weighbridge/internal/ui"
	"weighbridge/internal/ui/adapters"
)

// Options come from the command line and override the config file
type Options struct {
	ConfigPath string
	DataDir    string
	LogPath    string
	Debug      bool
}

// forwarded are the domain events the UI reacts to
var forwarded = []eventbus.EventType{
	eventbus.EventReadingUpdated,
	eventbus.EventReadingTriggered,
	eventbus.EventTicketPrinted,
	eventbus.EventError,
	eventbus.EventConfigSaved,
}

// Run starts the dashboard and blocks until it exits
func Run(ctx context.Context, opts Options, teaOpts ...tea.ProgramOption) error {
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(opts.ConfigPath, bus)
	cfg := LoadOrCreateConfig(configSvc)
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = filepath.Join(cfg.DataDir, "weighbridge.log")
	}
	closer, err := logging.Setup(logPath, opts.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Info("starting", "config", configSvc.Path(), "data", cfg.DataDir)

	var store adapters.RecentStore
	if err := os.MkdirAll(filepath.Dir(cfg.RecentDBPath()), 0755); err != nil {
		log.Warn("could not create data directory", "err", err)
	}
	rs, err := recent.Open(cfg.RecentDBPath(), cfg.Recent.Limit)
	if err != nil {
		// The dashboard still works without history
		log.Error("could not open recent activity", "path", cfg.RecentDBPath(), "err", err)
	} else {
		defer rs.Close()
		store = rs
	}

	feed := scale.NewFeed(bus, ScaleOptions(cfg))
	model := ui.NewModel(ui.Deps{
		Config:    cfg,
		Bus:       bus,
		Providers: Providers(cfg),
		Recent:    store,
		Printer:   ticket.NewPrinter(cfg.TicketDir()),
		Scale:     feed,
	})
	defer model.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	teaOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(gctx)}, teaOpts...)
	p := tea.NewProgram(model, teaOpts...)
	model.SetProgram(p)

	// Forward domain events to the UI without blocking the bus
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range forwarded {
		unsubscribe := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				log.Warn("event channel full, dropping event", "type", e.Type())
			}
		})
		defer unsubscribe()
	}

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			}
		}
	})

	g.Go(func() error {
		if err := feed.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scale feed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("interrupted")
			return nil
		}
		return err
	})

	err = g.Wait()
	log.Info("stopped", "err", err)
	return err
}

// LoadOrCreateConfig loads the config file. A missing file is created with
// the defaults; a broken one is logged and replaced by defaults in memory.
func LoadOrCreateConfig(svc config.ConfigService) *config.Config {
	_, statErr := os.Stat(svc.Path())

	cfg, err := svc.Load()
	if err != nil {
		log.Error("error loading config, using defaults", "path", svc.Path(), "err", err)
		return config.DefaultConfig()
	}

	if errors.Is(statErr, os.ErrNotExist) {
		if err := svc.Save(cfg); err != nil {
			log.Warn("failed to save default config", "path", svc.Path(), "err", err)
		}
	}
	return cfg
}

// Providers builds one search provider per slot, in form order. Trucks go
// through the simulated remote API; everything else is searched in memory.
func Providers(cfg *config.Config) []search.Provider {
	out := make([]search.Provider, 0, len(domain.Slots))
	for _, slot := range domain.Slots {
		c := catalog.Config(slot)
		records := logic.NewMemoryRecordStore(c.ValueField, catalog.Records(slot)...)

		if slot != domain.SlotTruck {
			out = append(out, search.NewStatic(c, records, cfg.Search.Threshold))
			continue
		}

		searchMin, searchMax := cfg.SearchLatency()
		detailMin, detailMax := cfg.DetailLatency()
		out = append(out, search.NewRemote(c, records,
			search.WithSearchLatency(search.Latency{Min: searchMin, Max: searchMax}),
			search.WithDetailLatency(search.Latency{Min: detailMin, Max: detailMax}),
			search.WithCacheTTL(cfg.CacheTTL()),
			search.WithThreshold(cfg.Search.Threshold),
			search.WithEnricher(search.TruckLoads(catalog.FieldLoads)),
		))
	}
	return out
}

// ScaleOptions maps the scale section of cfg onto feed options
func ScaleOptions(cfg *config.Config) scale.Options {
	opts := scale.DefaultOptions()
	opts.PollMin, opts.PollMax = cfg.PollWindow()
	opts.StabilizeMin, opts.StabilizeMax = cfg.StabilizeWindow()
	opts.ReadingChance = cfg.Scale.ReadingChance
	if cfg.Scale.InitialGross > 0 {
		opts.InitialGross = cfg.Scale.InitialGross
	}
	if cfg.Scale.InitialTare > 0 {
		opts.InitialTare = cfg.Scale.InitialTare
	}
	return opts
}
