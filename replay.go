package mapedit

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/mapedit/config"
	"seehuhn.de/go/mapedit/testcases"
)

// Replay runs a scripted session on a new editor with the default
// settings and the grid of the scenario.  Stamps are one tile in size.
func Replay(sc testcases.Scenario) (*Editor, error) {
	cfg := config.Default()
	cfg.Grid.Rows = sc.Rows
	cfg.Grid.Cols = sc.Cols
	cfg.Grid.TileSize = sc.TileSize
	cfg.Stamp.Width = sc.TileSize
	cfg.Stamp.Height = sc.TileSize

	e, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	for i, step := range sc.Steps {
		if err := e.apply(step); err != nil {
			return nil, fmt.Errorf("scenario %s, step %d: %w", sc.Name, i, err)
		}
	}
	return e, nil
}

func (e *Editor) apply(step testcases.Step) error {
	switch s := step.(type) {
	case testcases.Click:
		m, err := ParseMode(s.Mode)
		if err != nil {
			return err
		}
		e.OnPointerDown(s.X, s.Y, m, s.Delete)
	case testcases.Move:
		m, err := ParseMode(s.Mode)
		if err != nil {
			return err
		}
		e.OnPointerMove(s.X, s.Y, m)
	case testcases.Undo:
		e.Undo()
	case testcases.Redo:
		e.Redo()
	case testcases.UseStamp:
		if s.Seed < 0 {
			e.SetStamp(nil)
		} else {
			e.SetStamp(testcases.StampImage(s.Seed))
		}
	default:
		return fmt.Errorf("unknown step %T", step)
	}
	return nil
}

// Image returns all layers composited over a white background.
func (e *Editor) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, e.grid.Width(), e.grid.Height()))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	e.Composite(img)
	return img
}
