package manifest

// Layout describes where a project keeps its sources and build outputs.
// Paths are relative to the project directory.
type Layout struct {
	ModulesDir         string `toml:"modules_dir" json:"modules_dir"`
	ScriptsDir         string `toml:"scripts_dir" json:"scripts_dir"`
	TestsDir           string `toml:"tests_dir" json:"tests_dir"`
	ModulesOutput      string `toml:"modules_output" json:"modules_output"`
	BundlesOutput      string `toml:"bundles_output" json:"bundles_output"`
	ScriptsOutput      string `toml:"scripts_output" json:"scripts_output"`
	TransactionsOutput string `toml:"transactions_output" json:"transactions_output"`
	Deps               string `toml:"deps" json:"deps"`
	Artifacts          string `toml:"artifacts" json:"artifacts"`
	Index              string `toml:"index" json:"index"`
}

// DefaultLayout returns the layout used for keys a manifest leaves out.
func DefaultLayout() Layout {
	return Layout{
		ModulesDir:         "modules",
		ScriptsDir:         "scripts",
		TestsDir:           "tests",
		ModulesOutput:      "artifacts/modules",
		BundlesOutput:      "artifacts/bundles",
		ScriptsOutput:      "artifacts/scripts",
		TransactionsOutput: "artifacts/transactions",
		Deps:               "artifacts/.external",
		Artifacts:          "artifacts",
		Index:              "artifacts/.DoveIndex.toml",
	}
}
