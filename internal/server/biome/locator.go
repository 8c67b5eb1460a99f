// Package biome reads and writes per-block biome assignments in a
// loaded world and finds the nearest occurrence of a target biome.
// Writes land in the 4×4×4 biome cell owning the coordinate, flag the
// chunk for the next save pass and are announced to every connected
// client.
package biome

import (
	"log/slog"

	"github.com/biomecraft/server/internal/server/world"
	"github.com/biomecraft/server/internal/server/world/gen"
	"github.com/biomecraft/server/pkg/gamedata"
)

// Level is the world surface the locator operates on.
type Level interface {
	Registry() gamedata.BiomeRegistry
	Range() gen.Range
	// Authoritative reports whether this process owns the world.
	// Client-side replicas return false and must not originate biome
	// changes.
	Authoritative() bool
	// SetBiomeAt writes id into the biome cell owning pos and marks
	// the owning chunk for the next save pass. It reports whether a
	// cell was written; pos outside the world's vertical range is a
	// no-op.
	SetBiomeAt(pos world.BlockPos, id uint16) bool
	FindNearestBiome(origin world.BlockPos, radius, step int, match func(uint16) bool) (world.BlockPos, bool)
	// PossibleBiomes lists every biome the world's generator can
	// place.
	PossibleBiomes() []uint16
}

// Broadcaster delivers a biome update to every connected client.
// Sends are fire-and-forget: no acknowledgment, no retry, no ordering
// guarantee relative to other traffic.
type Broadcaster interface {
	BroadcastBiomeChange(pos world.BlockPos, b gamedata.Biome)
}

// Locator is the entry point for biome reads, writes and searches.
type Locator struct {
	log     *slog.Logger
	bc      Broadcaster
	resolve Resolver
}

// NewLocator creates a Locator. A nil resolve falls back to
// ResolveByName; a nil bc drops announcements, which is only
// appropriate for worlds without connected clients.
func NewLocator(log *slog.Logger, bc Broadcaster, resolve Resolver) *Locator {
	if resolve == nil {
		resolve = ResolveByName
	}
	return &Locator{log: log, bc: bc, resolve: resolve}
}

// SetAt resolves key and writes the result into the biome cell owning
// pos, then announces the change once to every connected client. The
// announcement carries pos itself, not the cell origin. It returns
// the resolved biome (the zero value when key did not resolve) and
// reports whether the write was applied.
//
// The call is dropped without an announcement when pos lies outside
// the world's vertical range, when key does not resolve, or when lvl
// is a non-authoritative replica.
func (l *Locator) SetAt(lvl Level, pos world.BlockPos, key string) (gamedata.Biome, bool) {
	b, ok := l.resolve(lvl.Registry(), key)
	if pos.Y < lvl.Range().Min() {
		return b, false
	}
	if !ok {
		l.log.Debug("biome key did not resolve", "key", key)
		return b, false
	}
	if !lvl.Authoritative() {
		return b, false
	}
	if !l.SetResolved(lvl, pos, b) {
		return b, false
	}
	if l.bc != nil {
		l.bc.BroadcastBiomeChange(pos, b)
	}
	return b, true
}

// SetResolved writes b into the biome cell owning pos and marks the
// chunk unsaved. It reports whether a cell was written.
//
// SetResolved is not network-aware. A caller that needs clients to see
// the change must go through SetAt; writing through SetResolved alone
// leaves client views out of sync until the chunk is resent.
func (l *Locator) SetResolved(lvl Level, pos world.BlockPos, b gamedata.Biome) bool {
	if pos.Y < lvl.Range().Min() {
		return false
	}
	return lvl.SetBiomeAt(pos, uint16(b.ID))
}
