// Package app implements the application layer for kiln.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// DefaultConfigPath is the configuration file read when none is given.
const DefaultConfigPath = "kiln.yaml"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	catalog      *domain.Catalog
	validator    *domain.Validator
	orchestrator *orchestrator.Orchestrator
	reporter     ports.Reporter
	toolchain    ports.Toolchain
	workspace    ports.Workspace
	store        ports.BuildInfoStore
	telemetry    ports.Telemetry
	logger       ports.Logger

	now  func() time.Time
	goos string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	catalog *domain.Catalog,
	orch *orchestrator.Orchestrator,
	reporter ports.Reporter,
	toolchain ports.Toolchain,
	workspace ports.Workspace,
	store ports.BuildInfoStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		catalog:      catalog,
		validator:    domain.NewValidator(catalog),
		orchestrator: orch,
		reporter:     reporter,
		toolchain:    toolchain,
		workspace:    workspace,
		store:        store,
		telemetry:    telemetry,
		logger:       logger,
		now:          time.Now,
		goos:         runtime.GOOS,
	}
}

// WithClock sets the clock used to timestamp build records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithPlatform sets the operating system reported in the build summary.
func (a *App) WithPlatform(goos string) *App {
	a.goos = goos
	return a
}

// BuildOptions holds the parameters of a build.
type BuildOptions struct {
	ConfigPath string
	BuildType  domain.BuildType
	Generator  string
	Clean      bool
	DryRun     bool
	// Timings prints how long each stage ran once the build stops.
	Timings bool
}

// SetVerbose switches debug logging on or off.
func (a *App) SetVerbose(verbose bool) {
	if verbose {
		a.logger.SetLevel(domain.LogLevelDebug)
		return
	}
	a.logger.SetLevel(domain.LogLevelInfo)
}

// Build validates the requested plan and runs it. Nothing is removed or issued
// unless the plan is valid.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	if err := a.build(ctx, opts); err != nil {
		a.reporter.Aborted()
		return err
	}
	a.reporter.Done()
	return nil
}

func (a *App) build(ctx context.Context, opts BuildOptions) error {
	// 1. Load the project
	project, err := a.loadProject(opts.ConfigPath)
	if err != nil {
		return err
	}

	// 2. Validate the plan
	plan, err := a.validator.Validate(opts.BuildType, opts.Generator)
	if err != nil {
		a.reporter.Error(err)
		return err
	}
	steps, err := orchestrator.Steps(plan, project)
	if err != nil {
		a.reporter.Error(err)
		return err
	}

	buildDir := filepath.Join(project.Root, project.BuildDir)

	if opts.DryRun {
		if opts.Clean {
			a.logger.Info("dry run: build directory would be removed", "path", buildDir)
		}
		for _, step := range steps {
			a.reporter.Plan(step.Stage, step.Command)
		}
		return nil
	}

	// 3. Check the meta-build tool where the runner will look for it
	if _, err := a.toolchain.LookPath(project.CMake, project.ToolScope()); err != nil {
		a.reporter.Error(err)
		return err
	}

	cmds := make([]domain.Command, len(steps))
	for i, step := range steps {
		cmds[i] = step.Command
	}
	fingerprint := domain.Fingerprint(cmds)

	// 4. Prepare the build tree
	if opts.Clean {
		if err := a.workspace.Clean(buildDir); err != nil {
			a.reporter.Error(err)
			return err
		}
		a.logger.Debug("removed build directory", "path", buildDir)
	} else {
		a.warnOnBuildTreeChange(buildDir, plan, fingerprint)
	}

	// 5. Run the stages
	runErr := a.orchestrator.Run(ctx, plan, project)
	if opts.Timings {
		a.reporter.Timings(a.telemetry.Timings())
	}
	if runErr != nil {
		return zerr.Wrap(runErr, "build execution failed")
	}

	// 6. Record and report
	info := domain.BuildInfo{
		BuildDir:    buildDir,
		Generator:   plan.Generator.Key,
		BuildType:   plan.BuildType.String(),
		Fingerprint: fingerprint,
		Timestamp:   a.now(),
	}
	if err := a.store.Put(info); err != nil {
		a.logger.Warn("failed to record build state", "error", err)
	}

	a.reporter.Summary(domain.Summary{
		Generator: plan.Generator.Key,
		BuildType: plan.BuildType,
		Platform:  domain.PlatformName(a.goos),
	})
	return nil
}

// warnOnBuildTreeChange compares an existing build tree with the last recorded build.
// A generator switch is refused in place by the meta-build tool. A changed command
// sequence for the same generator and build type means the defines, layout or
// environment moved, which values cached in the tree may shadow.
func (a *App) warnOnBuildTreeChange(buildDir string, plan domain.BuildPlan, fingerprint string) {
	if !a.workspace.Exists(buildDir) {
		return
	}
	info, err := a.store.Get(buildDir)
	if err != nil {
		a.logger.Warn("ignoring unreadable build state", "error", err)
		return
	}
	if info == nil {
		return
	}

	if info.Generator != plan.Generator.Key {
		a.reporter.Warn(fmt.Sprintf(
			"%s was generated with %s, not %s; use --clean if CMake rejects the generator change",
			buildDir, info.Generator, plan.Generator.Key,
		))
		return
	}

	if info.BuildType == plan.BuildType.String() && info.Fingerprint != "" && info.Fingerprint != fingerprint {
		a.logger.Debug("build settings changed", "path", buildDir, "was", info.Fingerprint, "now", fingerprint)
		a.reporter.Warn(fmt.Sprintf(
			"%s was last built with different settings; use --clean if stale cache entries get in the way",
			buildDir,
		))
	}
}

// Generators lists the generator catalog.
func (a *App) Generators() {
	a.reporter.Generators(a.catalog.All())
}

// Doctor probes the meta-build tool and the native tool of every generator.
// It fails only when the meta-build tool itself is missing.
func (a *App) Doctor(ctx context.Context, configPath string) error {
	project, err := a.loadProject(configPath)
	if err != nil {
		return err
	}

	names := []string{project.CMake}
	for _, tool := range a.catalog.Tools() {
		if tool != project.CMake {
			names = append(names, tool)
		}
	}

	statuses, err := a.toolchain.Probe(ctx, names, project.ToolScope())
	if err != nil {
		a.reporter.Error(err)
		return err
	}
	a.reporter.Tools(statuses)

	if len(statuses) > 0 && !statuses[0].Found {
		err := zerr.With(zerr.Wrap(domain.ErrToolNotFound, "Required tool '"+project.CMake+"' not found in PATH"), "tool", project.CMake)
		a.reporter.Error(err)
		return err
	}
	return nil
}

// Clean removes the configured build directory.
func (a *App) Clean(_ context.Context, configPath string) error {
	project, err := a.loadProject(configPath)
	if err != nil {
		return err
	}

	buildDir := filepath.Join(project.Root, project.BuildDir)
	if err := a.workspace.Clean(buildDir); err != nil {
		a.reporter.Error(err)
		return err
	}
	a.logger.Info("removed build directory", "path", buildDir)
	return nil
}

// Close flushes the progress recording.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) loadProject(configPath string) (domain.Project, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		err = zerr.Wrap(err, "failed to load configuration")
		a.reporter.Error(err)
		return domain.Project{}, err
	}
	return project, nil
}
