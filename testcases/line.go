package testcases

var lineCases = []Scenario{
	{
		Name: "horizontal",
		Rows: 2, Cols: 4, TileSize: 70,
		Steps: line(0, 70, 280, 70),
	},
	{
		Name: "diagonal",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: line(35, 35, 245, 245),
	},
	{
		Name: "crossing",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			line(35, 140, 245, 140),
			line(140, 35, 140, 245),
		),
	},
	{
		Name: "delete_nearest",
		Rows: 4, Cols: 4, TileSize: 70,
		Steps: join(
			line(35, 140, 245, 140),
			line(140, 35, 140, 245),
			[]Step{Click{X: 70, Y: 143, Mode: "line", Delete: true}},
		),
	},
}
