package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"path/filepath"
	"time"

	"github.com/biomecraft/server/internal/server/biome"
	"github.com/biomecraft/server/internal/server/config"
	"github.com/biomecraft/server/internal/server/conn"
	"github.com/biomecraft/server/internal/server/observer"
	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/player"
	"github.com/biomecraft/server/internal/server/storage"
	"github.com/biomecraft/server/internal/server/world"
	"github.com/biomecraft/server/internal/server/world/gen"
	"github.com/biomecraft/server/pkg/gamedata"
)

// gameVersion names the registry the server runs on. The matching
// versions package must be blank-imported by the binary.
const gameVersion = "pc-1.21"

const autosaveInterval = 5 * time.Minute

// Server owns the world, the player roster and the listeners.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	gd      *gamedata.GameData
	world   *world.World
	players *player.Manager
	locator *biome.Locator
	store   *storage.Store
	hub     *observer.Hub
}

// fanout delivers biome updates to game clients and the observer feed.
type fanout struct {
	players *player.Manager
	hub     *observer.Hub
}

func (f fanout) BroadcastBiomeChange(pos world.BlockPos, b gamedata.Biome) {
	f.players.BroadcastBiomeChange(pos, b)
	if f.hub != nil {
		f.hub.BroadcastBiomeChange(pos, b)
	}
}

// New builds a Server from cfg: it opens storage when data_dir is set,
// restores the stored world, and pre-generates terrain around spawn.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	gd, err := gamedata.Load(gameVersion)
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}

	var store *storage.Store
	if cfg.DataDir != "" {
		store, err = storage.Open(filepath.Join(cfg.DataDir, "world.db"), log)
		if err != nil {
			return nil, err
		}
	}

	// A stored world keeps its original seed; the config seed only
	// applies to fresh databases.
	seed := cfg.Seed
	if store != nil {
		stored, ok, err := store.Seed()
		switch {
		case err != nil:
			_ = store.Close()
			return nil, err
		case ok:
			if stored != cfg.Seed {
				log.Warn("using stored world seed", "stored", stored, "config", cfg.Seed)
			}
			seed = stored
		default:
			if err := store.SetSeed(seed); err != nil {
				_ = store.Close()
				return nil, err
			}
		}
	}

	var generator gen.Generator
	switch cfg.GeneratorType {
	case "flat":
		generator = gen.NewFlatGenerator(gen.OverworldRange, seed)
	default:
		generator = gen.NewDefaultGenerator(gen.OverworldRange, seed)
	}

	w := world.New(world.Config{
		Seed:          seed,
		Generator:     generator,
		Registry:      gd.Biomes,
		Authoritative: true,
	})

	if store != nil {
		n, err := store.LoadWorld(w)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("restore world: %w", err)
		}
		if n > 0 {
			log.Info("restored world from storage", "chunks", n)
		}
	}

	if cfg.WorldRadius > 0 {
		n := w.PreGenerateRadius(cfg.WorldRadius)
		log.Info("pre-generated spawn area", "radius", cfg.WorldRadius, "chunks", n)
	}

	players := player.NewManager()
	var hub *observer.Hub
	if cfg.ObserverAddr != "" {
		hub = observer.NewHub(log)
	}

	return &Server{
		cfg:     cfg,
		log:     log,
		gd:      gd,
		world:   w,
		players: players,
		locator: biome.NewLocator(log, fanout{players: players, hub: hub}, nil),
		store:   store,
		hub:     hub,
	}, nil
}

// Start begins listening for connections and blocks until the context
// is cancelled. On shutdown it saves the world a final time.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	lc := net.ListenConfig{}

	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	defer listener.Close()

	s.log.Info("server started",
		"port", s.cfg.Port,
		"version", s.gd.Version.MinecraftVersion,
		"motd", s.cfg.MOTD,
		"generator", s.cfg.GeneratorType,
		"seed", s.world.Seed(),
	)

	if s.hub != nil {
		go func() {
			if err := s.hub.Serve(ctx, s.cfg.ObserverAddr); err != nil {
				s.log.Error("observer feed", "error", err)
			}
		}()
	}
	go s.tickLoop(ctx)
	if s.store != nil {
		go s.autosaveLoop(ctx)
	}

	// Close listener when context is cancelled.
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		c, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.shutdown()
				return nil
			}
			s.log.Error("accept connection", "error", err)
			continue
		}
		go s.serve(ctx, c)
	}
}

func (s *Server) serve(ctx context.Context, c net.Conn) {
	connection := conn.NewConnection(ctx, c, s.cfg, s.log, s.world, s.gd, s.players, s.locator)
	if s.store != nil {
		connection.Store = s.store
		connection.SaveAll = s.SaveAll
	}
	if s.hub != nil {
		connection.OnJoin = s.hub.PlayerJoined
		connection.OnLeave = s.hub.PlayerLeft
	}
	connection.Handle()
}

// tickLoop advances the world clock at 20 ticks per second and
// broadcasts the time once per second.
func (s *Server) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			age, timeOfDay := s.world.Tick()
			n++
			if n%20 == 0 {
				s.players.Broadcast(&packet.UpdateTime{
					WorldAge:  age,
					TimeOfDay: timeOfDay,
				})
			}
		}
	}
}

func (s *Server) autosaveLoop(ctx context.Context) {
	ticker := time.NewTicker(autosaveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SaveAll(); err != nil {
				s.log.Error("autosave", "error", err)
			}
		}
	}
}

// SaveAll writes the world's dirty chunks and every online player. It
// is a no-op without storage.
func (s *Server) SaveAll() error {
	if s.store == nil {
		return nil
	}

	n, err := s.store.SaveWorld(s.world)
	if err != nil {
		return fmt.Errorf("save world: %w", err)
	}

	var firstErr error
	s.players.ForEach(func(p *player.Player) {
		if err := s.store.SavePlayer(p); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	if firstErr != nil {
		return fmt.Errorf("save players: %w", firstErr)
	}

	s.log.Info("world saved", "chunks", n, "players", s.players.PlayerCount())
	return nil
}

func (s *Server) shutdown() {
	s.log.Info("server shutting down")
	if s.store == nil {
		return
	}
	if err := s.SaveAll(); err != nil {
		s.log.Error("save on shutdown", "error", err)
	}
	if err := s.store.Close(); err != nil {
		s.log.Error("close storage", "error", err)
	}
}
