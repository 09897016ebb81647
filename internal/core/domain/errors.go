// Package domain holds the build planning model.
package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownGenerator is returned when a generator key is not in the catalog.
	ErrUnknownGenerator = zerr.New("unknown generator")

	// ErrIncompatibleBuildType is returned when both configurations are requested from a single-config generator.
	ErrIncompatibleBuildType = zerr.New("cannot build both configurations with a single-config generator")

	// ErrInvalidBuildType is returned when no build type, or more than one, is selected.
	ErrInvalidBuildType = zerr.New("invalid build type")

	// ErrConfigureFailed is returned when the configure step exits with a non-zero status.
	ErrConfigureFailed = zerr.New("project generation failed")

	// ErrBuildFailed is returned when a build step exits with a non-zero status.
	ErrBuildFailed = zerr.New("build failed")

	// ErrDuplicateGenerator is returned when a catalog declares the same key twice.
	ErrDuplicateGenerator = zerr.New("duplicate generator key")

	// ErrInvalidGeneratorKey is returned when a catalog key is empty or not lower-case.
	ErrInvalidGeneratorKey = zerr.New("generator keys must be non-empty and lower-case")

	// ErrEmptyCommand is returned when a command has no arguments.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrToolNotFound is returned when a required tool is not on PATH.
	ErrToolNotFound = zerr.New("required tool not found in PATH")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEnvFileReadFailed is returned when the env file referenced by the config cannot be read.
	ErrEnvFileReadFailed = zerr.New("failed to read env file")

	// ErrStoreReadFailed is returned when the build state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build state")

	// ErrStoreWriteFailed is returned when the build state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build state")

	// ErrCleanFailed is returned when the build directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean build directory")
)
