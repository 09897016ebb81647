package domain

import (
	"maps"
	"slices"
	"strings"
)

// Defaults for a project with no configuration file.
const (
	DefaultCMake     = "cmake"
	DefaultSourceDir = "."
	DefaultBuildDir  = "build"
)

// Project describes where the sources live, where the build tree goes and how the
// meta-build tool is invoked.
type Project struct {
	// Root is the directory commands are run from.
	Root string
	// CMake is the meta-build executable.
	CMake string
	// SourceDir is the source tree, relative to Root.
	SourceDir string
	// BuildDir is the generated build tree, relative to Root.
	BuildDir string
	// Defines are extra cache entries passed to the configure step.
	Defines map[string]string
	// Environment overrides for every issued command.
	Environment map[string]string
}

// DefaultProject returns the project layout used when no configuration is present.
func DefaultProject() Project {
	return Project{
		Root:      ".",
		CMake:     DefaultCMake,
		SourceDir: DefaultSourceDir,
		BuildDir:  DefaultBuildDir,
	}
}

// Command is a single external invocation.
type Command struct {
	Args []string
	Dir  string
	Env  map[string]string
}

// String renders the command line for display.
func (c Command) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			parts[i] = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

// ConfigureCommand returns the generation step for the plan.
// The build type is only passed to single-config generators; multi-config generators
// select the configuration at build time.
func (p Project) ConfigureCommand(plan BuildPlan) Command {
	args := []string{
		p.CMake,
		"-S", p.SourceDir,
		"-B", p.BuildDir,
		"-G", plan.Generator.DisplayName,
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
	}
	if !plan.Generator.MultiConfig {
		args = append(args, "-DCMAKE_BUILD_TYPE="+plan.BuildType.String())
	}
	for _, name := range slices.Sorted(maps.Keys(p.Defines)) {
		args = append(args, "-D"+name+"="+p.Defines[name])
	}
	return p.command(args)
}

// BuildCommand returns a build step. An empty configuration leaves the choice to the
// generated tree, which is what single-config generators need.
func (p Project) BuildCommand(configuration string) Command {
	args := []string{p.CMake, "--build", p.BuildDir}
	if configuration != "" {
		args = append(args, "--config", configuration)
	}
	return p.command(args)
}

func (p Project) command(args []string) Command {
	var env map[string]string
	if len(p.Environment) > 0 {
		env = maps.Clone(p.Environment)
	}
	return Command{Args: args, Dir: p.Root, Env: env}
}

// ToolScope is the environment overlay and working directory tools are resolved
// and run in.
type ToolScope struct {
	Dir string
	Env map[string]string
}

// ToolScope returns the scope every command of the project is issued in.
func (p Project) ToolScope() ToolScope {
	return ToolScope{Dir: p.Root, Env: p.Environment}
}
