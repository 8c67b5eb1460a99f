package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/biomecraft/server/internal/server"
	"github.com/biomecraft/server/internal/server/config"
	_ "github.com/biomecraft/server/pkg/gamedata/versions/pc_1_21"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "server port")
	flag.StringVar(&cfg.MOTD, "motd", cfg.MOTD, "server description")
	flag.IntVar(&cfg.MaxPlayers, "max-players", cfg.MaxPlayers, "maximum concurrent players")
	flag.IntVar(&cfg.ViewDistance, "view-distance", cfg.ViewDistance, "view distance in chunks")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed for fresh worlds")
	flag.StringVar(&cfg.GeneratorType, "generator", cfg.GeneratorType, "terrain generator (default or flat)")
	flag.IntVar(&cfg.WorldRadius, "world-radius", cfg.WorldRadius, "chunk radius pre-generated around spawn")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "world database directory, empty disables persistence")
	flag.StringVar(&cfg.ObserverAddr, "observer-addr", cfg.ObserverAddr, "observer feed listen address, empty disables it")
	flag.IntVar(&cfg.CompressionThreshold, "compression", cfg.CompressionThreshold, "packet compression threshold in bytes, negative disables")
	flag.IntVar(&cfg.LocateRadius, "locate-radius", cfg.LocateRadius, "default /locatebiome search radius in blocks")
	flag.IntVar(&cfg.LocateStep, "locate-step", cfg.LocateStep, "default /locatebiome sampling step in blocks")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// File values fill in whatever the command line left untouched.
	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("initialize server", "error", err)
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
