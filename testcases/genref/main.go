// Command genref replays all scenarios and writes the composited maps to
// testdata/reference, one PNG file per scenario.
// Run from the mapedit module root directory.
package main

import (
	"fmt"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/mapedit"
	"seehuhn.de/go/mapedit/testcases"
)

func main() {
	dir := filepath.Join("testdata", "reference")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := write(filepath.Join(dir, name+".png"), sc); err != nil {
				log.Fatalf("%s: %v", name, err)
			}
			n++
		}
	}
	fmt.Printf("wrote %d reference images\n", n)
}

func write(fname string, sc testcases.Scenario) error {
	e, err := mapedit.Replay(sc)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, e.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
