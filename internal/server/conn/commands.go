package conn

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/biomecraft/server/internal/server/biome"
	"github.com/biomecraft/server/internal/server/packet"
	"github.com/biomecraft/server/internal/server/player"
	"github.com/biomecraft/server/internal/server/world"
	"github.com/biomecraft/server/pkg/protocol"
)

type command struct {
	name    string
	usage   string
	desc    string
	handler func(c *Connection, args []string)
}

var commands []command

func init() {
	commands = []command{
		{name: "help", usage: "/help", desc: "Show available commands", handler: cmdHelp},
		{name: "list", usage: "/list", desc: "Show online players", handler: cmdList},
		{name: "biome", usage: "/biome [x y z]", desc: "Show the biome at your feet or a coordinate", handler: cmdBiome},
		{name: "biomes", usage: "/biomes", desc: "List the biomes this world can generate", handler: cmdBiomes},
		{name: "setbiome", usage: "/setbiome <biome> [x y z]", desc: "Rewrite the biome cell at a coordinate", handler: cmdSetBiome},
		{name: "setblock", usage: "/setblock <block> [x y z]", desc: "Place a block state at a coordinate", handler: cmdSetBlock},
		{name: "locatebiome", usage: "/locatebiome <biome> [radius [step]]", desc: "Find the nearest occurrence of a biome", handler: cmdLocateBiome},
		{name: "tp", usage: "/tp <player> | /tp <x> <y> <z>", desc: "Teleport to a player or coordinates", handler: cmdTp},
		{name: "time", usage: "/time set <day|night|noon|midnight|number>", desc: "Set world time", handler: cmdTime},
		{name: "say", usage: "/say <message>", desc: "Broadcast an announcement", handler: cmdSay},
		{name: "me", usage: "/me <action>", desc: "Send an action message", handler: cmdMe},
		{name: "seed", usage: "/seed", desc: "Show world seed", handler: cmdSeed},
		{name: "save", usage: "/save", desc: "Save world and player data", handler: cmdSave},
	}
}

// handleCommand intercepts /-prefixed messages and dispatches them.
// Returns true if the message was a command (even if unknown).
func (c *Connection) handleCommand(msg string) bool {
	if !strings.HasPrefix(msg, "/") {
		return false
	}

	parts := strings.Fields(msg)
	if len(parts) == 0 {
		return true
	}

	name := strings.ToLower(strings.TrimPrefix(parts[0], "/"))
	args := parts[1:]

	for _, cmd := range commands {
		if cmd.name == name {
			cmd.handler(c, args)
			return true
		}
	}

	c.sendErrorMsg(fmt.Sprintf("Unknown command: /%s. Type /help for a list of commands.", name))
	return true
}

// sendSystemMsg sends a chat message to this connection only.
func (c *Connection) sendSystemMsg(text, color string) {
	_ = c.writePacket(&packet.ChatCB{
		Message: fmt.Sprintf(`{"text":%s,"color":%s}`, escapeJSON(text), escapeJSON(color)),
	})
}

// sendErrorMsg sends a red system message.
func (c *Connection) sendErrorMsg(text string) {
	c.sendSystemMsg(text, "red")
}

// sendSuccessMsg sends a gold system message.
func (c *Connection) sendSuccessMsg(text string) {
	c.sendSystemMsg(text, "gold")
}

// escapeJSON quotes a string as a JSON string literal.
func escapeJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// argsOrFeet parses an optional "x y z" triple, defaulting to the block
// the caller is standing on.
func (c *Connection) argsOrFeet(args []string) (world.BlockPos, bool) {
	if len(args) == 0 {
		return world.BlockPos{X: c.self.BlockX(), Y: c.self.BlockY(), Z: c.self.BlockZ()}, true
	}
	if len(args) != 3 {
		return world.BlockPos{}, false
	}
	x, errX := strconv.Atoi(args[0])
	y, errY := strconv.Atoi(args[1])
	z, errZ := strconv.Atoi(args[2])
	if errX != nil || errY != nil || errZ != nil {
		return world.BlockPos{}, false
	}
	return world.BlockPos{X: x, Y: y, Z: z}, true
}

// teleportSelf moves the connection's player to the given coordinates
// and streams any chunks the move revealed.
func (c *Connection) teleportSelf(x, y, z float64) {
	pos := c.self.GetPosition()
	c.self.SetPosition(x, y, z, pos.Yaw, pos.Pitch, false)

	_ = c.writePacket(&packet.PositionAndLookCB{
		X:          x,
		Y:          y,
		Z:          z,
		Yaw:        pos.Yaw,
		Pitch:      pos.Pitch,
		Flags:      0x00,
		TeleportID: c.nextTeleportID(),
	})

	c.updateChunks()
}

func cmdHelp(c *Connection, _ []string) {
	c.sendSystemMsg("--- Available Commands ---", "yellow")
	for _, cmd := range commands {
		c.sendSystemMsg(fmt.Sprintf("%s - %s", cmd.usage, cmd.desc), "yellow")
	}
}

func cmdList(c *Connection, _ []string) {
	var names []string
	c.players.ForEach(func(p *player.Player) {
		names = append(names, p.Username)
	})
	c.sendSuccessMsg(fmt.Sprintf("Online players (%d): %s", len(names), strings.Join(names, ", ")))
}

func cmdBiome(c *Connection, args []string) {
	pos, ok := c.argsOrFeet(args)
	if !ok {
		c.sendErrorMsg("Usage: /biome [x y z] (numbers)")
		return
	}

	id := c.world.BiomeAt(pos.X, pos.Y, pos.Z)
	b, ok := c.world.Registry().ByID(int(id))
	if !ok {
		c.sendErrorMsg(fmt.Sprintf("Unregistered biome id %d at %d, %d, %d.", id, pos.X, pos.Y, pos.Z))
		return
	}
	c.sendSuccessMsg(fmt.Sprintf("Biome at %d, %d, %d: %s (minecraft:%s, id %d)",
		pos.X, pos.Y, pos.Z, b.DisplayName, b.Name, b.ID))
}

func cmdBiomes(c *Connection, _ []string) {
	possible := c.world.PossibleBiomes()
	names := make([]string, 0, len(possible))
	for _, id := range possible {
		if b, ok := c.world.Registry().ByID(int(id)); ok {
			names = append(names, b.Name)
		}
	}
	sort.Strings(names)

	c.sendSuccessMsg(fmt.Sprintf("This world generates %d of %d registered biomes:",
		len(names), len(c.world.Registry().All())))
	c.sendSystemMsg(strings.Join(names, ", "), "yellow")
}

func cmdSetBiome(c *Connection, args []string) {
	if len(args) != 1 && len(args) != 4 {
		c.sendErrorMsg("Usage: /setbiome <biome> [x y z]")
		return
	}

	key := strings.ToLower(args[0])
	pos, ok := c.argsOrFeet(args[1:])
	if !ok {
		c.sendErrorMsg("Usage: /setbiome <biome> [x y z] (numbers)")
		return
	}

	b, ok := c.locator.SetAt(c.world, pos, key)
	if !ok {
		if b.Name == "" {
			c.sendErrorMsg(fmt.Sprintf("Unknown biome %q.", key))
			return
		}
		c.sendErrorMsg(fmt.Sprintf("Cannot set a biome at %d, %d, %d.", pos.X, pos.Y, pos.Z))
		return
	}
	c.sendSuccessMsg(fmt.Sprintf("Biome at %d, %d, %d set to %s.", pos.X, pos.Y, pos.Z, b.Name))
}

func cmdSetBlock(c *Connection, args []string) {
	if len(args) != 1 && len(args) != 4 {
		c.sendErrorMsg("Usage: /setblock <block> [x y z]")
		return
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id < 0 || id > 255 {
		c.sendErrorMsg("Usage: /setblock <block> [x y z] (block id 0-255)")
		return
	}
	pos, ok := c.argsOrFeet(args[1:])
	if !ok {
		c.sendErrorMsg("Usage: /setblock <block> [x y z] (numbers)")
		return
	}
	if !c.world.Range().Contains(pos.Y) {
		c.sendErrorMsg(fmt.Sprintf("Cannot place a block at %d, %d, %d.", pos.X, pos.Y, pos.Z))
		return
	}

	state := int32(id) << 4
	c.world.SetBlock(pos.X, pos.Y, pos.Z, state)
	c.players.Broadcast(&packet.BlockChange{
		Location: protocol.EncodePosition(pos.X, pos.Y, pos.Z),
		BlockID:  state,
	})
	c.sendSuccessMsg(fmt.Sprintf("Block at %d, %d, %d set to %d.", pos.X, pos.Y, pos.Z, id))
}

func cmdLocateBiome(c *Connection, args []string) {
	if len(args) < 1 || len(args) > 3 {
		c.sendErrorMsg("Usage: /locatebiome <biome> [radius [step]]")
		return
	}

	key := strings.ToLower(args[0])
	radius := c.cfg.LocateRadius
	step := c.cfg.LocateStep
	if len(args) >= 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 {
			c.sendErrorMsg("Usage: /locatebiome <biome> [radius [step]] (positive numbers)")
			return
		}
		radius = v
	}
	if len(args) == 3 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v < 1 {
			c.sendErrorMsg("Usage: /locatebiome <biome> [radius [step]] (positive numbers)")
			return
		}
		step = v
	}

	origin := world.BlockPos{X: c.self.BlockX(), Y: c.self.BlockY(), Z: c.self.BlockZ()}
	found, err := c.locator.Nearest(c.world, origin, key, radius, step)
	switch {
	case errors.Is(err, biome.ErrUnknownBiome):
		c.sendErrorMsg(fmt.Sprintf("Unknown biome %q.", key))
	case errors.Is(err, biome.ErrBiomeNotFound):
		c.sendErrorMsg(fmt.Sprintf("Could not find a %q within %d blocks.", key, radius))
	case err != nil:
		c.sendErrorMsg(err.Error())
	default:
		dx := float64(found.X - origin.X)
		dz := float64(found.Z - origin.Z)
		dist := int(math.Sqrt(dx*dx + dz*dz))
		c.sendSuccessMsg(fmt.Sprintf("The nearest %s is at %d, ~, %d (%d blocks away).",
			key, found.X, found.Z, dist))
	}
}

func cmdTp(c *Connection, args []string) {
	switch len(args) {
	case 1:
		target := c.players.GetByName(args[0])
		if target == nil {
			c.sendErrorMsg(fmt.Sprintf("Player %q not found.", args[0]))
			return
		}
		pos := target.GetPosition()
		c.teleportSelf(pos.X, pos.Y, pos.Z)
		c.sendSuccessMsg(fmt.Sprintf("Teleported to %s.", target.Username))

	case 3:
		x, errX := strconv.ParseFloat(args[0], 64)
		y, errY := strconv.ParseFloat(args[1], 64)
		z, errZ := strconv.ParseFloat(args[2], 64)
		if errX != nil || errY != nil || errZ != nil {
			c.sendErrorMsg("Usage: /tp <x> <y> <z> (numbers)")
			return
		}
		c.teleportSelf(x, y, z)
		c.sendSuccessMsg(fmt.Sprintf("Teleported to %.1f, %.1f, %.1f.", x, y, z))

	default:
		c.sendErrorMsg("Usage: /tp <player> or /tp <x> <y> <z>")
	}
}

func cmdTime(c *Connection, args []string) {
	if len(args) != 2 || strings.ToLower(args[0]) != "set" {
		c.sendErrorMsg("Usage: /time set <day|night|noon|midnight|number>")
		return
	}

	var ticks int64
	switch strings.ToLower(args[1]) {
	case "day":
		ticks = 1000
	case "noon":
		ticks = 6000
	case "night":
		ticks = 13000
	case "midnight":
		ticks = 18000
	default:
		v, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			c.sendErrorMsg("Usage: /time set <day|night|noon|midnight|number>")
			return
		}
		ticks = v
	}

	c.world.SetTimeOfDay(ticks)
	age, _ := c.world.GetTime()
	c.players.Broadcast(&packet.UpdateTime{
		WorldAge:  age,
		TimeOfDay: ticks,
	})
	c.sendSuccessMsg(fmt.Sprintf("Time set to %d.", ticks))
}

func cmdSay(c *Connection, args []string) {
	if len(args) == 0 {
		c.sendErrorMsg("Usage: /say <message>")
		return
	}
	msg := strings.Join(args, " ")
	c.players.Broadcast(&packet.ChatCB{
		Message: fmt.Sprintf(`{"text":%s,"color":"light_purple"}`, escapeJSON("[Server] "+msg)),
	})
}

func cmdMe(c *Connection, args []string) {
	if len(args) == 0 {
		c.sendErrorMsg("Usage: /me <action>")
		return
	}
	action := strings.Join(args, " ")
	c.players.Broadcast(&packet.ChatCB{
		Message: fmt.Sprintf(`{"translate":"chat.type.emote","with":[%s,%s]}`,
			escapeJSON(c.self.Username), escapeJSON(action)),
	})
}

func cmdSeed(c *Connection, _ []string) {
	c.sendSuccessMsg(fmt.Sprintf("Seed: [%d]", c.world.Seed()))
}

func cmdSave(c *Connection, _ []string) {
	if c.SaveAll == nil {
		c.sendErrorMsg("Save is not available.")
		return
	}
	c.sendSuccessMsg("Saving world and player data...")
	go func() {
		if err := c.SaveAll(); err != nil {
			c.log.Error("save failed", "error", err)
			c.sendErrorMsg("Save failed.")
			return
		}
		c.sendSuccessMsg("Save complete.")
	}()
}
