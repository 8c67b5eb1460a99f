// Command dmd downloads one platform/version slice of the
// PrismarineJS/minecraft-data repository into data/, where biomegen
// picks it up.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "minecraft-data git url")
		platform = flag.String("platform", "pc", "platform of the data set")
		ver      = flag.String("version", "1.21.5", "game version of the data set")
		out      = flag.String("o", "./data", "output dir path")
	)
	flag.Parse()

	if *platform == "" || *ver == "" {
		log.Fatal("dmd: -platform and -version are required")
	}

	// Data sets are keyed by major version, matching the registry names
	// in pkg/gamedata/versions.
	path := fmt.Sprintf("%s/%s-%s", *out, *platform, majorOf(*ver))
	if err := os.RemoveAll(path); err != nil {
		log.Fatalf("dmd: clear %s: %v", path, err)
	}

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.21.5
	url := fmt.Sprintf("git::%s//data/%s/%s", *base, *platform, *ver)

	log.Printf("dmd: downloading %s", url)
	if err := get.Get(path, url); err != nil {
		log.Fatalf("dmd: download: %v", err)
	}
	log.Printf("dmd: done, data in %s", path)
}

// majorOf reduces "1.21.5" to "1.21".
func majorOf(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return v
	}
	return parts[0] + "." + parts[1]
}
