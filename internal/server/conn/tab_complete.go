package conn

import (
	"fmt"
	"strings"

	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/player"
	"github.com/biomecraft/server/pkg/gamedata"
	"github.com/biomecraft/server/pkg/protocol"
)

// handleTabComplete answers a TabComplete request with matches for the
// token under the cursor.
func (c *Connection) handleTabComplete(data []byte) error {
	var req packet.TabCompleteSB
	if err := protocol.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("unmarshal tab complete: %w", err)
	}

	matches := computeCompletions(req.Text, c.players, c.world.Registry())

	// The completed span is the partial token after the last space.
	start := strings.LastIndex(req.Text, " ") + 1
	return c.writePacket(&packet.TabCompleteCB{
		TransactionID: req.TransactionID,
		Start:         int32(start),
		Length:        int32(len(req.Text) - start),
		Matches:       matches,
	})
}

// computeCompletions returns tab-completion matches for the given input text.
func computeCompletions(text string, players *player.Manager, reg gamedata.BiomeRegistry) []string {
	if strings.HasPrefix(text, "/") {
		return completeCommand(text, players, reg)
	}
	// No "/" prefix: complete player names for chat mentions.
	parts := strings.Fields(text)
	var partial string
	if len(parts) > 0 && !strings.HasSuffix(text, " ") {
		partial = parts[len(parts)-1]
	}
	return matchPlayerNames(partial, players)
}

func completeCommand(text string, players *player.Manager, reg gamedata.BiomeRegistry) []string {
	parts := strings.Fields(text)
	// If text ends with space, we're completing the next argument.
	trailingSpace := strings.HasSuffix(text, " ")

	if len(parts) == 1 && !trailingSpace {
		// Completing the command name itself: "/loc" → "/locatebiome", etc.
		partial := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
		var matches []string
		for _, cmd := range commands {
			if strings.HasPrefix(cmd.name, partial) {
				matches = append(matches, "/"+cmd.name)
			}
		}
		return matches
	}

	// Completing arguments for a known command.
	if len(parts) == 0 {
		return nil
	}
	cmdName := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	var argPartial string
	if !trailingSpace && len(parts) > 1 {
		argPartial = parts[len(parts)-1]
	}
	argIndex := len(parts) - 1
	if trailingSpace {
		argIndex = len(parts)
	}

	switch cmdName {
	case "setbiome", "locatebiome":
		if argIndex == 1 {
			return matchBiomeNames(argPartial, reg)
		}
	case "tp":
		if argIndex == 1 {
			return matchPlayerNames(argPartial, players)
		}
	case "time":
		if argIndex == 1 {
			return filterStrings(argPartial, []string{"set"})
		}
		if argIndex == 2 {
			return filterStrings(argPartial, []string{"day", "night", "noon", "midnight"})
		}
	case "help", "list", "seed", "save", "biome", "biomes":
		// No names to complete.
	case "say", "me":
		// Free-form text, complete player names.
		return matchPlayerNames(argPartial, players)
	}

	return nil
}

func matchPlayerNames(partial string, players *player.Manager) []string {
	partial = strings.ToLower(partial)
	var matches []string
	players.ForEach(func(p *player.Player) {
		if partial == "" || strings.HasPrefix(strings.ToLower(p.Username), partial) {
			matches = append(matches, p.Username)
		}
	})
	return matches
}

func matchBiomeNames(partial string, reg gamedata.BiomeRegistry) []string {
	partial = strings.ToLower(strings.TrimPrefix(partial, "minecraft:"))
	var matches []string
	for _, b := range reg.All() {
		if partial == "" || strings.HasPrefix(b.Name, partial) {
			matches = append(matches, b.Name)
		}
	}
	return matches
}

func filterStrings(partial string, options []string) []string {
	partial = strings.ToLower(partial)
	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(opt, partial) {
			matches = append(matches, opt)
		}
	}
	return matches
}
