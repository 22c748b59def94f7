package config

// yamlConfigFile mirrors the .cwlwhitespace.yaml layout.
type yamlConfigFile struct {
	Style     yamlStyle      `yaml:"style"`
	Overrides []yamlOverride `yaml:"overrides"`
	Exclude   []string       `yaml:"exclude"`
}

type yamlStyle struct {
	Indent string `yaml:"indent"`
	Width  int    `yaml:"width"`
}

type yamlOverride struct {
	Pattern string `yaml:"pattern"`
	Indent  string `yaml:"indent"`
	Width   int    `yaml:"width"`
}
