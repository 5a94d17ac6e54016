package config

// File represents the structure of the config.yaml file.
type File struct {
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
	Platform string `yaml:"platform"`
}
