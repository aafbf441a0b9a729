package testcases

var deleteCases = []Scenario{
	{
		Name: "rectangle_hole",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(35, 35, 245, 245, false),
			rect(105, 105, 175, 175, true),
		),
	},
	{
		Name: "circle_bite",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(35, 35, 210, 210, false),
			circle(210, 210, 245, 210, true),
		),
	},
	{
		Name: "polygon_cut",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(35, 35, 245, 245, false),
			polygon(true, 140, 0, 280, 140, 140, 280),
		),
	},
	{
		// delete-mode shapes cut through lines and stamps drawn earlier
		Name: "cut_through_objects",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			rect(35, 35, 245, 245, false),
			line(0, 140, 280, 140),
			[]Step{UseStamp{Seed: 4}, Click{X: 105, Y: 105, Mode: "stamp"}},
			rect(70, 70, 210, 210, true),
			line(140, 0, 140, 280),
		),
	},
}
