package biome

import (
	"errors"
	"fmt"

	"github.com/biomecraft/server/internal/server/world"
)

// Search defaults: an 800-ring scan at 8-block resolution covers 6400
// blocks on each horizontal axis.
const (
	DefaultSearchRadius = 6400
	DefaultSearchStep   = 8
)

var (
	// ErrUnknownBiome reports a key that is not in the registry at
	// all.
	ErrUnknownBiome = errors.New("unknown biome")
	// ErrBiomeNotFound reports a valid biome that has no occurrence
	// within reach.
	ErrBiomeNotFound = errors.New("biome not found")
)

// Nearest finds the closest position whose biome matches key, scanning
// outward from origin on a step-sized grid at origin's height. The
// origin itself is checked first and the first match wins. radius and
// step fall back to the package defaults when <= 0.
//
// A key missing from the registry is the caller's mistake and fails
// with ErrUnknownBiome. A biome the world's generator can never place
// returns ErrBiomeNotFound without scanning: exhausting the full
// radius on a guaranteed miss would stall the server for seconds.
// Matching is by biome identity, so the scan also finds cells written
// by SetAt and SetResolved.
func (l *Locator) Nearest(lvl Level, origin world.BlockPos, key string, radius, step int) (world.BlockPos, error) {
	if radius <= 0 {
		radius = DefaultSearchRadius
	}
	if step <= 0 {
		step = DefaultSearchStep
	}

	b, ok := l.resolve(lvl.Registry(), key)
	if !ok {
		return world.BlockPos{}, fmt.Errorf("%w: %q", ErrUnknownBiome, key)
	}

	id := uint16(b.ID)
	if !reachable(lvl.PossibleBiomes(), id) {
		l.log.Error("biome cannot generate in this world", "biome", b.Name)
		return world.BlockPos{}, fmt.Errorf("%w: %q cannot generate in this world", ErrBiomeNotFound, b.Name)
	}

	pos, found := lvl.FindNearestBiome(origin, radius, step, func(cell uint16) bool {
		return cell == id
	})
	if !found {
		l.log.Error("no biome within search radius", "biome", b.Name, "radius", radius)
		return world.BlockPos{}, fmt.Errorf("%w: no %q within %d blocks", ErrBiomeNotFound, b.Name, radius)
	}
	return pos, nil
}

func reachable(possible []uint16, id uint16) bool {
	for _, p := range possible {
		if p == id {
			return true
		}
	}
	return false
}
