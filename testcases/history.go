package testcases

var historyCases = []Scenario{
	{
		Name: "undo_shape",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(70, 70, 210, 210, false),
			[]Step{Undo{}},
		),
	},
	{
		Name: "undo_redo_mixed",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(35, 35, 175, 175, false),
			line(0, 0, 280, 280),
			rect(105, 105, 245, 245, true),
			[]Step{Undo{}, Undo{}, Undo{}, Redo{}, Redo{}, Redo{}},
		),
	},
	{
		Name: "undo_line_delete",
		Rows: 2, Cols: 4, TileSize: 70,
		Steps: join(
			line(0, 0, 140, 0),
			[]Step{
				Click{X: 70, Y: 0, Mode: "line", Delete: true},
				Undo{},
			},
		),
	},
	{
		Name: "redo_discarded",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(35, 35, 175, 175, false),
			[]Step{Undo{}},
			circle(140, 140, 210, 140, false),
			[]Step{Redo{}},
		),
	},
}
