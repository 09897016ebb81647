// Package config provides the configuration loader for kiln.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only kiln.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path. Relative paths inside the file are
// resolved against the directory holding it.
func (l *Loader) Load(path string) (domain.Project, error) {
	var kilnfile Kilnfile
	found, err := readAndUnmarshalYAML(path, &kilnfile)
	if err != nil {
		return domain.Project{}, zerr.With(err, "path", path)
	}
	if !found {
		l.Logger.Debug("no config file, using defaults", "path", path)
		return domain.DefaultProject(), nil
	}

	if kilnfile.Version != "" && kilnfile.Version != SupportedVersion {
		l.Logger.Warn("unsupported config version, reading it as version "+SupportedVersion,
			"path", path, "version", kilnfile.Version)
	}

	configDir := filepath.Dir(path)
	project := domain.DefaultProject()
	project.Root = resolveRoot(configDir, kilnfile.Root)
	project.CMake = valueOr(kilnfile.CMake, domain.DefaultCMake)
	project.SourceDir = valueOr(kilnfile.Source, domain.DefaultSourceDir)
	project.BuildDir = valueOr(kilnfile.Build, domain.DefaultBuildDir)
	if len(kilnfile.Defines) > 0 {
		project.Defines = maps.Clone(kilnfile.Defines)
	}

	env, err := l.loadEnvironment(configDir, kilnfile)
	if err != nil {
		return domain.Project{}, zerr.With(err, "path", path)
	}
	project.Environment = env

	l.Logger.Debug("loaded config", "path", path, "root", project.Root, "build", project.BuildDir)
	return project, nil
}

// loadEnvironment merges the env file with the inline environment, inline entries winning.
func (l *Loader) loadEnvironment(configDir string, kilnfile Kilnfile) (map[string]string, error) {
	env := make(map[string]string)
	if kilnfile.EnvFile != "" {
		envPath := kilnfile.EnvFile
		if !filepath.IsAbs(envPath) {
			envPath = filepath.Join(configDir, envPath)
		}
		fromFile, err := godotenv.Read(envPath)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrEnvFileReadFailed, err.Error()), "env_file", envPath)
		}
		maps.Copy(env, fromFile)
	}
	maps.Copy(env, kilnfile.Environment)

	if len(env) == 0 {
		return nil, nil
	}
	return env, nil
}

// readAndUnmarshalYAML decodes the file at configPath into target. Unknown keys are
// rejected. A missing file reports found == false without an error.
func readAndUnmarshalYAML[T any](configPath string, target *T) (found bool, err error) {
	// #nosec G304 -- configPath is provided by the user
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return false, zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error())
	}

	return true, nil
}

func resolveRoot(configDir, root string) string {
	if root == "" {
		return configDir
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root)
	}
	return filepath.Join(configDir, root)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
