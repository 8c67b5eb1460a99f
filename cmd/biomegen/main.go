// Command biomegen renders a versioned biome registry package from a
// minecraft-data biomes.json, as downloaded by cmd/dmd.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

type biomeEntry struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	DisplayName   string  `json:"displayName"`
	Category      string  `json:"category"`
	Temperature   float64 `json:"temperature"`
	Precipitation string  `json:"precipitation"`
	Dimension     string  `json:"dimension"`
	Color         int     `json:"color"`
	Rainfall      float64 `json:"rainfall"`
}

type versionInfo struct {
	Protocol         int    `json:"version"`
	MinecraftVersion string `json:"minecraftVersion"`
	MajorVersion     string `json:"majorVersion"`
}

const gamedataImport = "github.com/biomecraft/server/pkg/gamedata"

func main() {
	schemeDir := flag.String("scheme", "", "path to the data directory (e.g. ./data/pc-1.21)")
	outDir := flag.String("out", "./pkg/gamedata/versions", "output base directory for generated packages")
	pkg := flag.String("pkg", "", "package name override (default: derived from scheme dir name)")
	protocol := flag.Int("protocol", 0, "protocol number (default: from version.json)")
	mcVersion := flag.String("minecraft-version", "", "minecraft version (default: from version.json)")
	flag.Parse()

	if *schemeDir == "" {
		fmt.Fprintln(os.Stderr, "error: -scheme flag is required")
		flag.Usage()
		os.Exit(1)
	}

	version := filepath.Base(*schemeDir)
	pkgName := *pkg
	if pkgName == "" {
		pkgName = sanitizePackageName(version)
	}

	biomes, err := loadBiomes(filepath.Join(*schemeDir, "biomes.json"))
	if err != nil {
		log.Fatalf("biomegen: %v", err)
	}

	vi, err := loadVersionInfo(*schemeDir, *protocol, *mcVersion)
	if err != nil {
		log.Fatalf("biomegen: %v", err)
	}

	outPath := filepath.Join(*outDir, pkgName)
	if err := os.MkdirAll(outPath, 0o755); err != nil {
		log.Fatalf("biomegen: create output directory: %v", err)
	}

	files := map[string][]byte{
		"biomes.go":   renderBiomes(pkgName, *schemeDir, biomes),
		"gamedata.go": renderGamedata(pkgName, version, vi),
		"helpers.go":  renderHelpers(pkgName),
	}
	for name, src := range files {
		formatted, err := format.Source(src)
		if err != nil {
			log.Fatalf("biomegen: format %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(outPath, name), formatted, 0o644); err != nil {
			log.Fatalf("biomegen: write %s: %v", name, err)
		}
		fmt.Printf("  generated %s\n", name)
	}

	fmt.Printf("biomegen: done — %d biomes in %s/\n", len(biomes), outPath)
}

func loadBiomes(path string) ([]biomeEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var biomes []biomeEntry
	if err := json.Unmarshal(raw, &biomes); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(biomes) == 0 {
		return nil, fmt.Errorf("%s holds no biomes", path)
	}

	seenID := make(map[int]string, len(biomes))
	seenName := make(map[string]bool, len(biomes))
	for _, b := range biomes {
		if b.Name == "" {
			return nil, fmt.Errorf("biome %d has an empty name", b.ID)
		}
		if b.ID < 0 {
			return nil, fmt.Errorf("biome %q has negative id %d", b.Name, b.ID)
		}
		if other, dup := seenID[b.ID]; dup {
			return nil, fmt.Errorf("biomes %q and %q share id %d", other, b.Name, b.ID)
		}
		if seenName[b.Name] {
			return nil, fmt.Errorf("duplicate biome name %q", b.Name)
		}
		seenID[b.ID] = b.Name
		seenName[b.Name] = true
	}

	sort.Slice(biomes, func(i, j int) bool { return biomes[i].ID < biomes[j].ID })
	return biomes, nil
}

// loadVersionInfo reads version.json next to biomes.json; flags fill in
// or override any field.
func loadVersionInfo(schemeDir string, protocol int, mcVersion string) (versionInfo, error) {
	var vi versionInfo
	raw, err := os.ReadFile(filepath.Join(schemeDir, "version.json"))
	if err == nil {
		if err := json.Unmarshal(raw, &vi); err != nil {
			return vi, fmt.Errorf("parse version.json: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return vi, fmt.Errorf("read version.json: %w", err)
	}

	if protocol != 0 {
		vi.Protocol = protocol
	}
	if mcVersion != "" {
		vi.MinecraftVersion = mcVersion
	}
	if vi.MajorVersion == "" {
		vi.MajorVersion = majorOf(vi.MinecraftVersion)
	}

	if vi.Protocol == 0 || vi.MinecraftVersion == "" {
		return vi, fmt.Errorf("no version.json found; pass -protocol and -minecraft-version")
	}
	return vi, nil
}

// majorOf reduces "1.21.5" to "1.21".
func majorOf(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return v
	}
	return parts[0] + "." + parts[1]
}

func renderBiomes(pkgName, schemeDir string, biomes []biomeEntry) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by biomegen. DO NOT EDIT.\n")
	fmt.Fprintf(&b, "// Source: %s\n\n", filepath.ToSlash(filepath.Join(schemeDir, "biomes.json")))
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	fmt.Fprintf(&b, "import %q\n\n", gamedataImport)

	b.WriteString("var biomes = []gamedata.Biome{\n")
	for _, e := range biomes {
		fmt.Fprintf(&b,
			"\t{ID: %d, Name: %q, DisplayName: %q, Category: %q, Temperature: %s, Precipitation: %q, Dimension: %q, Color: %d, Rainfall: %s},\n",
			e.ID, e.Name, e.DisplayName, e.Category,
			formatFloat(e.Temperature), e.Precipitation, e.Dimension,
			e.Color, formatFloat(e.Rainfall),
		)
	}
	b.WriteString("}\n")
	return b.Bytes()
}

func renderGamedata(pkgName, version string, vi versionInfo) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by biomegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	fmt.Fprintf(&b, "import %q\n\n", gamedataImport)
	fmt.Fprintf(&b, "const version = %q\n\n", version)
	b.WriteString("func init() {\n\tgamedata.Register(version, New)\n}\n\n")
	b.WriteString("func New() *gamedata.GameData {\n")
	b.WriteString("\treturn &gamedata.GameData{\n")
	b.WriteString("\t\tBiomes: newBiomeRegistry(biomes),\n")
	b.WriteString("\t\tVersion: &gamedata.Version{\n")
	fmt.Fprintf(&b, "\t\t\tProtocol:         %d,\n", vi.Protocol)
	fmt.Fprintf(&b, "\t\t\tMinecraftVersion: %q,\n", vi.MinecraftVersion)
	fmt.Fprintf(&b, "\t\t\tMajorVersion:     %q,\n", vi.MajorVersion)
	b.WriteString("\t\t},\n\t}\n}\n")
	return b.Bytes()
}

func renderHelpers(pkgName string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by biomegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	fmt.Fprintf(&b, "import %q\n\n", gamedataImport)
	b.WriteString(`type biomeRegistry struct {
	byID   map[int]gamedata.Biome
	byName map[string]gamedata.Biome
	all    []gamedata.Biome
}

func newBiomeRegistry(biomes []gamedata.Biome) *biomeRegistry {
	r := &biomeRegistry{
		byID:   make(map[int]gamedata.Biome, len(biomes)),
		byName: make(map[string]gamedata.Biome, len(biomes)),
		all:    biomes,
	}
	for _, b := range biomes {
		r.byID[b.ID] = b
		r.byName[b.Name] = b
	}
	return r
}

func (r *biomeRegistry) ByID(id int) (gamedata.Biome, bool) {
	b, ok := r.byID[id]
	return b, ok
}

func (r *biomeRegistry) ByName(name string) (gamedata.Biome, bool) {
	b, ok := r.byName[name]
	return b, ok
}

func (r *biomeRegistry) All() []gamedata.Biome {
	return r.all
}
`)
	return b.Bytes()
}

// formatFloat renders floats the way gofmt keeps them: no trailing
// zeros, no exponent for registry-scale values.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func sanitizePackageName(name string) string {
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return strings.ToLower(name)
}
