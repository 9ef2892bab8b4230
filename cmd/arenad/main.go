package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/arenago/internal/arena"
	"github.com/udisondev/arenago/internal/config"
	"github.com/udisondev/arenago/internal/data"
	"github.com/udisondev/arenago/internal/db"
	"github.com/udisondev/arenago/internal/feed"
	"github.com/udisondev/arenago/internal/game/weapon"
	"github.com/udisondev/arenago/internal/geom"
	"github.com/udisondev/arenago/internal/world"
)

const ConfigPath = "config/arenad.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("ARENAGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadArena(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("arenago starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tick_rate", cfg.TickRate,
		"map_source", cfg.MapSource)

	tpl, err := loadMap(ctx, cfg)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	weapons, err := arena.WeaponsFromConfig(cfg.Weapons, weapon.Options{
		Rand:           rand.New(rand.NewPCG(seed, seed>>1|1)),
		CriticalChance: cfg.CriticalChance,
	})
	if err != nil {
		return err
	}
	slog.Info("weapons registered", "items", weapons.Items())

	var meter metric.Meter
	if cfg.MetricsEnabled {
		shutdown, err := setupMetrics()
		if err != nil {
			return err
		}
		defer shutdown()
		meter = arena.DefaultMeter()
		slog.Info("metrics enabled", "interval", metricsInterval)
	}

	var hub *feed.Hub
	opts := arena.Options{
		Origin:  geom.P(cfg.Origin[0], cfg.Origin[1], cfg.Origin[2]),
		Teams:   arena.TeamsFromConfig(cfg.Teams),
		Weapons: weapons,
		Meter:   meter,
	}
	if cfg.Feed.Enabled {
		hub = feed.NewHub(cfg.Feed)
		opts.Sink = hub
	}

	w := world.New(world.DefaultConfig())
	session, err := arena.NewSession(w, opts)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	if _, err := session.LoadDoors(tpl); err != nil {
		return fmt.Errorf("loading doors: %w", err)
	}

	tickMgr := arena.NewTickManager(cfg.TickInterval())
	tickMgr.Register("session", session)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := tickMgr.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("tick manager: %w", err)
		}
		return nil
	})

	if hub != nil {
		g.Go(func() error {
			slog.Info("starting spectator feed", "addr", cfg.Feed.Addr(), "path", feed.Path)
			return hub.Run(gctx, cfg.Feed.Addr())
		})
	}

	if cfg.WatchMaps && cfg.MapSource == config.MapSourceFile {
		watcher, err := data.NewWatcher(filepath.Dir(cfg.MapPath))
		if err != nil {
			return fmt.Errorf("watching maps: %w", err)
		}
		g.Go(func() error {
			return watchMap(gctx, watcher, cfg.MapPath, session)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		session.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("arenago stopped", "ticks", session.CurrentTick())
	return nil
}

// loadMap reads the arena template from the configured source.
func loadMap(ctx context.Context, cfg config.Arena) (*data.Template, error) {
	if cfg.MapSource != config.MapSourceDB {
		tpl, err := data.LoadTemplate(cfg.MapPath)
		if err != nil {
			return nil, fmt.Errorf("loading map: %w", err)
		}
		return tpl, nil
	}

	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	tpl, err := database.Maps().Load(ctx, cfg.MapName)
	if err != nil {
		return nil, fmt.Errorf("loading map: %w", err)
	}
	slog.Info("loaded map template", "name", tpl.Name, "source", "db", "regions", len(tpl.Regions))
	return tpl, nil
}

// watchMap reloads the session's doors whenever the map file changes.
func watchMap(ctx context.Context, watcher *data.Watcher, mapPath string, session *arena.Session) error {
	defer watcher.Close()
	target := filepath.Clean(mapPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("map watcher error", "err", err)
		case path, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(path) != target {
				continue
			}
			tpl, err := data.LoadTemplate(path)
			if err != nil {
				slog.Warn("map reload skipped", "path", path, "err", err)
				continue
			}
			if err := session.ReloadDoors(tpl); err != nil {
				return nil
			}
			slog.Info("map reload scheduled", "name", tpl.Name)
		}
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
