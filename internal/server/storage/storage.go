package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/biomecraft/server/internal/server/player"
	"github.com/biomecraft/server/internal/server/world"
)

// Store persists world chunks, player records and world metadata in a
// single sqlite database.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens (or creates) the database at path and prepares the schema.
func Open(path string, log *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	// modernc sqlite allows one writer; a single connection avoids
	// SQLITE_BUSY churn entirely.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %s: %w", p, err)
		}
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS chunks (
			cx   INTEGER NOT NULL,
			cz   INTEGER NOT NULL,
			data BLOB NOT NULL,
			PRIMARY KEY (cx, cz)
		);`,
		`CREATE TABLE IF NOT EXISTS players (
			uuid TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	log.Info("storage opened", "path", path)
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveWorld writes every dirty chunk plus the world clock in one
// transaction and returns how many chunks were written. Dirty flags are
// lowered only after the transaction commits.
func (s *Store) SaveWorld(w *world.World) (int, error) {
	unsaved := w.UnsavedChunks()
	age, timeOfDay := w.GetTime()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for pos, data := range unsaved {
		blob := encodeChunk(data)
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO chunks (cx, cz, data) VALUES (?, ?, ?)`,
			pos.X, pos.Z, blob,
		); err != nil {
			return 0, fmt.Errorf("write chunk %d,%d: %w", pos.X, pos.Z, err)
		}
	}

	metas := map[string]string{
		"seed":        strconv.FormatInt(w.Seed(), 10),
		"age":         strconv.FormatInt(age, 10),
		"time_of_day": strconv.FormatInt(timeOfDay, 10),
	}
	for k, v := range metas {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`,
			k, v,
		); err != nil {
			return 0, fmt.Errorf("write meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit save: %w", err)
	}

	for pos := range unsaved {
		w.MarkSaved(pos)
	}
	return len(unsaved), nil
}

// LoadWorld restores every stored chunk and the world clock into w and
// returns how many chunks were restored.
func (s *Store) LoadWorld(w *world.World) (int, error) {
	rows, err := s.db.Query(`SELECT cx, cz, data FROM chunks`)
	if err != nil {
		return 0, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var cx, cz int
		var blob []byte
		if err := rows.Scan(&cx, &cz, &blob); err != nil {
			return count, fmt.Errorf("scan chunk row: %w", err)
		}
		data, err := decodeChunk(blob)
		if err != nil {
			return count, fmt.Errorf("decode chunk %d,%d: %w", cx, cz, err)
		}
		w.PutChunk(cx, cz, data)
		count++
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("iterate chunks: %w", err)
	}

	age, ageOK, err := s.metaInt("age")
	if err != nil {
		return count, err
	}
	timeOfDay, todOK, err := s.metaInt("time_of_day")
	if err != nil {
		return count, err
	}
	if ageOK && todOK {
		w.SetTime(age, timeOfDay)
	}
	return count, nil
}

// Seed returns the stored world seed. ok is false when the database has
// never been saved.
func (s *Store) Seed() (seed int64, ok bool, err error) {
	return s.metaInt("seed")
}

// SetSeed records the world seed. Called once when a fresh database is
// paired with a fresh world.
func (s *Store) SetSeed(seed int64) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('seed', ?)`,
		strconv.FormatInt(seed, 10),
	)
	if err != nil {
		return fmt.Errorf("write seed: %w", err)
	}
	return nil
}

// SavePlayer persists the current state of a player.
func (s *Store) SavePlayer(p *player.Player) error {
	pd := PlayerDataFromPlayer(p)
	data, err := json.Marshal(pd)
	if err != nil {
		return fmt.Errorf("marshal player %s: %w", p.Username, err)
	}
	if _, err := s.db.Exec(
		`INSERT OR REPLACE INTO players (uuid, data) VALUES (?, ?)`,
		pd.UUID, string(data),
	); err != nil {
		return fmt.Errorf("write player %s: %w", p.Username, err)
	}
	return nil
}

// LoadPlayer returns the stored record for a player, or nil if the
// player has never been saved.
func (s *Store) LoadPlayer(id uuid.UUID) (*PlayerData, error) {
	var data string
	err := s.db.QueryRow(
		`SELECT data FROM players WHERE uuid = ?`, id.String(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read player %s: %w", id, err)
	}

	var pd PlayerData
	if err := json.Unmarshal([]byte(data), &pd); err != nil {
		return nil, fmt.Errorf("parse player %s: %w", id, err)
	}
	return &pd, nil
}

func (s *Store) metaInt(key string) (int64, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read meta %s: %w", key, err)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse meta %s: %w", key, err)
	}
	return n, true, nil
}
