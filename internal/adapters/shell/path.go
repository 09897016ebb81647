package shell

import (
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

// Environ returns the process environment with overrides applied on top.
// It is the environment every issued command runs with.
func Environ(overrides map[string]string) []string {
	return resolveEnvironment(os.Environ(), overrides)
}

// LookPath finds file the way Run resolves the executable of a command: names
// containing a separator are taken relative to dir, bare names are searched in the
// PATH entry of env, and relative PATH entries are taken relative to dir.
// The returned path is absolute.
func LookPath(file string, env []string, dir string) (string, error) {
	if strings.ContainsRune(file, '/') || strings.ContainsRune(file, filepath.Separator) {
		candidate := inDir(dir, file)
		if err := findExecutable(candidate); err != nil {
			return "", &exec.Error{Name: file, Err: err}
		}
		return filepath.Abs(candidate)
	}

	path := pathOf(env)
	if path == "" {
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}

	for _, entry := range filepath.SplitList(path) {
		if entry == "" {
			// Unix shell semantics: path element "" means "."
			entry = "."
		}
		candidate := inDir(dir, filepath.Join(entry, file))
		if err := findExecutable(candidate); err == nil {
			return filepath.Abs(candidate)
		}
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

// resolveEnvironment overlays overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for _, k := range slices.Sorted(maps.Keys(overrides)) {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = overrides[k]
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// pathOf returns the last PATH entry of env.
func pathOf(env []string) string {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}
	return path
}

func inDir(dir, file string) string {
	if filepath.IsAbs(file) || dir == "" {
		return file
	}
	return filepath.Join(dir, file)
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
