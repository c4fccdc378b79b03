package formats

func init() {
	// Register built-in formats
	for _, format := range []*DefinitionFormat{JSON, YAML, TOML} {
		if err := Register(format); err != nil {
			panic(err)
		}
	}
}
