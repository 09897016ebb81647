package config

// Kilnfile represents the structure of the kiln.yaml configuration file.
type Kilnfile struct {
	Version     string            `yaml:"version"`
	Root        string            `yaml:"root"`
	CMake       string            `yaml:"cmake"`
	Source      string            `yaml:"source"`
	Build       string            `yaml:"build"`
	Defines     map[string]string `yaml:"defines"`
	Environment map[string]string `yaml:"environment"`
	EnvFile     string            `yaml:"env_file"`
}
