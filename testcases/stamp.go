package testcases

var stampCases = []Scenario{
	{
		Name: "single",
		Rows: 3, Cols: 3, TileSize: 70,
		Steps: []Step{
			UseStamp{Seed: 1},
			Click{X: 70, Y: 70, Mode: "stamp"},
		},
	},
	{
		Name: "overlapping",
		Rows: 3, Cols: 3, TileSize: 70,
		Steps: []Step{
			UseStamp{Seed: 1},
			Click{X: 35, Y: 35, Mode: "stamp"},
			UseStamp{Seed: 2},
			Click{X: 70, Y: 70, Mode: "stamp"},
		},
	},
	{
		// placement past the canvas edge and without an image is ignored
		Name: "rejected",
		Rows: 3, Cols: 3, TileSize: 70,
		Steps: []Step{
			Click{X: 70, Y: 70, Mode: "stamp"},
			UseStamp{Seed: 3},
			Click{X: 175, Y: 175, Mode: "stamp"},
		},
	},
	{
		Name: "delete_topmost",
		Rows: 3, Cols: 3, TileSize: 70,
		Steps: []Step{
			UseStamp{Seed: 1},
			Click{X: 35, Y: 35, Mode: "stamp"},
			UseStamp{Seed: 2},
			Click{X: 70, Y: 70, Mode: "stamp"},
			Click{X: 105, Y: 105, Mode: "stamp", Delete: true},
		},
	},
}
