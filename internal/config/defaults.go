package config

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version:  1,
		Sections: []*SectionConfig{},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Log: &LogConfig{
			Level: "warn",
		},
		Check: &CheckConfig{
			FailOn: "WARNING",
		},
		values: map[string]map[string]string{},
	}
}
