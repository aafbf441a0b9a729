// Command export writes the scenario definitions to testdata/scenarios.yaml,
// for use by other implementations of the editor.
// Run from the mapedit module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/mapedit/testcases"
)

func main() {
	var out struct {
		Scenarios []yamlScenario `yaml:"scenarios"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			out.Scenarios = append(out.Scenarios, toYAML(category, sc))
		}
	}

	f, err := os.Create("testdata/scenarios.yaml")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
	if err := enc.Close(); err != nil {
		panic(err)
	}
}

type yamlScenario struct {
	Name     string     `yaml:"name"`
	Rows     int        `yaml:"rows"`
	Cols     int        `yaml:"cols"`
	TileSize float64    `yaml:"tile_size"`
	Steps    []yamlStep `yaml:"steps,flow"`
}

type yamlStep struct {
	Op     string    `yaml:"op"`
	At     []float64 `yaml:"at,flow,omitempty"`
	Mode   string    `yaml:"mode,omitempty"`
	Delete bool      `yaml:"delete,omitempty"`
	Seed   *int      `yaml:"seed,omitempty"`
}

func toYAML(category string, sc testcases.Scenario) yamlScenario {
	ys := yamlScenario{
		Name:     category + "_" + sc.Name,
		Rows:     sc.Rows,
		Cols:     sc.Cols,
		TileSize: sc.TileSize,
	}
	for _, step := range sc.Steps {
		ys.Steps = append(ys.Steps, stepToYAML(step))
	}
	return ys
}

func stepToYAML(step testcases.Step) yamlStep {
	switch s := step.(type) {
	case testcases.Click:
		return yamlStep{Op: "click", At: []float64{s.X, s.Y}, Mode: s.Mode, Delete: s.Delete}
	case testcases.Move:
		return yamlStep{Op: "move", At: []float64{s.X, s.Y}, Mode: s.Mode}
	case testcases.Undo:
		return yamlStep{Op: "undo"}
	case testcases.Redo:
		return yamlStep{Op: "redo"}
	case testcases.UseStamp:
		seed := s.Seed
		return yamlStep{Op: "stamp", Seed: &seed}
	default:
		panic(fmt.Sprintf("unknown step %T", step))
	}
}
