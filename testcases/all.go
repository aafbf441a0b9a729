package testcases

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]Scenario{
	"shape":   shapeCases,
	"line":    lineCases,
	"stamp":   stampCases,
	"delete":  deleteCases,
	"history": historyCases,
}
