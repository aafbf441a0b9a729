package testcases

var shapeCases = []Scenario{
	{
		Name: "rectangle",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: rect(70, 70, 210, 210, false),
	},
	{
		Name: "rectangle_reversed_corners",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: rect(210, 35, 35, 175, false),
	},
	{
		Name: "circle",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: circle(140, 140, 210, 140, false),
	},
	{
		Name: "triangle",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: polygon(false, 35, 245, 140, 35, 245, 245),
	},
	{
		Name: "overlapping_shapes",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(35, 35, 175, 175, false),
			circle(175, 175, 245, 175, false),
		),
	},
	{
		// the second click does not snap, the third one completes
		Name: "invalid_click_keeps_anchor",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: []Step{
			Click{X: 70, Y: 70, Mode: "rect"},
			Click{X: 90, Y: 90, Mode: "rect"},
			Click{X: 212, Y: 208, Mode: "rect"},
		},
	},
	{
		Name: "pending_preview",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: []Step{
			Click{X: 70, Y: 70, Mode: "rect"},
			Move{X: 200, Y: 150, Mode: "rect"},
		},
	},
}
