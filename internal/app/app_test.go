package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	loader    *mocks.MockConfigLoader
	runner    *mocks.MockRunner
	reporter  *mocks.MockReporter
	toolchain *mocks.MockToolchain
	workspace *mocks.MockWorkspace
	store     *mocks.MockBuildInfoStore
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
	app       *app.App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:    mocks.NewMockConfigLoader(ctrl),
		runner:    mocks.NewMockRunner(ctrl),
		reporter:  mocks.NewMockReporter(ctrl),
		toolchain: mocks.NewMockToolchain(ctrl),
		workspace: mocks.NewMockWorkspace(ctrl),
		store:     mocks.NewMockBuildInfoStore(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	h.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	h.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	orch := orchestrator.New(h.runner, h.reporter, h.telemetry, h.logger)
	h.app = app.New(
		h.loader,
		domain.DefaultCatalog(),
		orch,
		h.reporter,
		h.toolchain,
		h.workspace,
		h.store,
		h.telemetry,
		h.logger,
	).WithClock(func() time.Time { return fixedNow }).WithPlatform("linux")
	return h
}

// allowStageReports accepts any progress lines from the orchestrator.
func (h *harness) allowStageReports() {
	h.reporter.EXPECT().StageStarted(gomock.Any(), gomock.Any()).AnyTimes()
	h.reporter.EXPECT().StageSucceeded(gomock.Any(), gomock.Any()).AnyTimes()
	h.reporter.EXPECT().Finished(gomock.Any()).AnyTimes()
}

func processFailure(output string) error {
	return zerr.With(&domain.ProcessFailure{ExitCode: 1, Output: output}, "exit_code", 1)
}

func TestApp_Build_UnixRelease(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	project := domain.DefaultProject()
	h.loader.EXPECT().Load("kiln.yaml").Return(project, nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(false)

	plan, err := domain.NewValidator(domain.DefaultCatalog()).Validate(domain.BuildTypeRelease, "unix")
	require.NoError(t, err)
	cmds, err := orchestrator.Commands(plan, project)
	require.NoError(t, err)

	gomock.InOrder(
		h.runner.EXPECT().Run(gomock.Any(), cmds[0]).Return(domain.ProcessResult{}, nil),
		h.runner.EXPECT().Run(gomock.Any(), cmds[1]).Return(domain.ProcessResult{}, nil),
		h.store.EXPECT().Put(domain.BuildInfo{
			BuildDir:    "build",
			Generator:   "unix",
			BuildType:   "Release",
			Fingerprint: domain.Fingerprint(cmds),
			Timestamp:   fixedNow,
		}).Return(nil),
		h.reporter.EXPECT().Summary(domain.Summary{
			Generator: "unix",
			BuildType: domain.BuildTypeRelease,
			Platform:  "Linux",
		}),
		h.reporter.EXPECT().Done(),
	)

	err = h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeRelease,
		Generator: "unix",
	})
	require.NoError(t, err)
}

func TestApp_Build_UnknownGeneratorIssuesNothing(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	gomock.InOrder(
		h.reporter.EXPECT().Error(gomock.Any()),
		h.reporter.EXPECT().Aborted(),
	)

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeDebug,
		Generator: "bogus",
		Clean:     true,
	})
	require.ErrorIs(t, err, domain.ErrUnknownGenerator)
}

func TestApp_Build_BothWithSingleConfigIssuesNothing(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.reporter.EXPECT().Error(gomock.Any())
	h.reporter.EXPECT().Aborted()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeBoth,
		Generator: "ninja",
		Clean:     true,
	})
	require.ErrorIs(t, err, domain.ErrIncompatibleBuildType)
}

func TestApp_Build_CleanPrecedesConfigure(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	h.loader.EXPECT().Load("custom.yaml").Return(domain.DefaultProject(), nil)
	gomock.InOrder(
		h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil),
		h.workspace.EXPECT().Clean("build").Return(nil),
		h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(3),
	)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err := h.app.Build(context.Background(), app.BuildOptions{
		ConfigPath: "custom.yaml",
		BuildType:  domain.BuildTypeBoth,
		Generator:  "VS2022",
		Clean:      true,
	})
	require.NoError(t, err)
}

func TestApp_Build_CleanFailureStops(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Clean("build").Return(zerr.Wrap(domain.ErrCleanFailed, "permission denied"))
	h.reporter.EXPECT().Error(gomock.Any())
	h.reporter.EXPECT().Aborted()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeDebug,
		Generator: "ninja",
		Clean:     true,
	})
	require.ErrorIs(t, err, domain.ErrCleanFailed)
}

func TestApp_Build_DryRunPrintsPlan(t *testing.T) {
	h := newHarness(t)

	project := domain.DefaultProject()
	h.loader.EXPECT().Load("kiln.yaml").Return(project, nil)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any())

	plan, err := domain.NewValidator(domain.DefaultCatalog()).Validate(domain.BuildTypeBoth, "vs2022")
	require.NoError(t, err)
	steps, err := orchestrator.Steps(plan, project)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	gomock.InOrder(
		h.reporter.EXPECT().Plan(domain.StageConfiguring, steps[0].Command),
		h.reporter.EXPECT().Plan(domain.StageDebugBuild, steps[1].Command),
		h.reporter.EXPECT().Plan(domain.StageReleaseBuild, steps[2].Command),
		h.reporter.EXPECT().Done(),
	)

	err = h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeBoth,
		Generator: "vs2022",
		Clean:     true,
		DryRun:    true,
	})
	require.NoError(t, err)
}

func TestApp_Build_MissingCMake(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("", zerr.Wrap(domain.ErrToolNotFound, "Required tool 'cmake' not found in PATH"))
	h.reporter.EXPECT().Error(gomock.Any())
	h.reporter.EXPECT().Aborted()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeRelease,
		Generator: "unix",
		Clean:     true,
	})
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestApp_Build_WarnsOnGeneratorChange(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(true)
	h.store.EXPECT().Get("build").Return(&domain.BuildInfo{BuildDir: "build", Generator: "ninja"}, nil)
	h.reporter.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "ninja")
		assert.Contains(t, msg, "unix")
	})
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(2)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeDebug,
		Generator: "unix",
	})
	require.NoError(t, err)
}

func TestApp_Build_SameGeneratorDoesNotWarn(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(true)
	h.store.EXPECT().Get("build").Return(&domain.BuildInfo{BuildDir: "build", Generator: "ninja"}, nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(2)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeRelease,
		Generator: "ninja",
	})
	require.NoError(t, err)
}

func TestApp_Build_LooksUpCMakeInProjectScope(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	project := domain.DefaultProject()
	project.Root = "/src/peach"
	project.CMake = "cmake-3.28"
	project.Environment = map[string]string{"PATH": "tools/bin"}
	h.loader.EXPECT().Load("kiln.yaml").Return(project, nil)
	h.toolchain.EXPECT().LookPath("cmake-3.28", domain.ToolScope{
		Dir: "/src/peach",
		Env: map[string]string{"PATH": "tools/bin"},
	}).Return("/src/peach/tools/bin/cmake-3.28", nil)
	h.workspace.EXPECT().Exists("/src/peach/build").Return(false)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(2)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeRelease,
		Generator: "ninja",
	})
	require.NoError(t, err)
}

func TestApp_Build_WarnsOnChangedSettings(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	project := domain.DefaultProject()
	project.Defines = map[string]string{"PEACH_TESTS": "ON"}
	h.loader.EXPECT().Load("kiln.yaml").Return(project, nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(true)

	plan, err := domain.NewValidator(domain.DefaultCatalog()).Validate(domain.BuildTypeRelease, "ninja")
	require.NoError(t, err)
	previous, err := orchestrator.Commands(plan, domain.DefaultProject())
	require.NoError(t, err)
	current, err := orchestrator.Commands(plan, project)
	require.NoError(t, err)

	h.store.EXPECT().Get("build").Return(&domain.BuildInfo{
		BuildDir:    "build",
		Generator:   "ninja",
		BuildType:   "Release",
		Fingerprint: domain.Fingerprint(previous),
	}, nil)
	h.reporter.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "different settings")
		assert.Contains(t, msg, "--clean")
	})
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(2)
	h.store.EXPECT().Put(gomock.Any()).Do(func(info domain.BuildInfo) {
		assert.Equal(t, domain.Fingerprint(current), info.Fingerprint)
	}).Return(nil)
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err = h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeRelease,
		Generator: "ninja",
	})
	require.NoError(t, err)
}

func TestApp_Build_UnchangedSettingsDoNotWarn(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	project := domain.DefaultProject()
	h.loader.EXPECT().Load("kiln.yaml").Return(project, nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(true)

	plan, err := domain.NewValidator(domain.DefaultCatalog()).Validate(domain.BuildTypeDebug, "xcode")
	require.NoError(t, err)
	cmds, err := orchestrator.Commands(plan, project)
	require.NoError(t, err)

	h.store.EXPECT().Get("build").Return(&domain.BuildInfo{
		BuildDir:    "build",
		Generator:   "xcode",
		BuildType:   "Debug",
		Fingerprint: domain.Fingerprint(cmds),
	}, nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(2)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err = h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeDebug,
		Generator: "xcode",
	})
	require.NoError(t, err)
}

func TestApp_Build_OtherBuildTypeDoesNotCompareSettings(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(true)
	h.store.EXPECT().Get("build").Return(&domain.BuildInfo{
		BuildDir:    "build",
		Generator:   "xcode",
		BuildType:   "Debug",
		Fingerprint: "0",
	}, nil)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(3)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeBoth,
		Generator: "xcode",
	})
	require.NoError(t, err)
}

func TestApp_Build_ReportsTimings(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	timings := []domain.StageTiming{
		{Stage: "configure", Duration: time.Second},
		{Stage: "build", Duration: 3 * time.Second},
	}

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(false)
	h.store.EXPECT().Put(gomock.Any()).Return(nil)
	gomock.InOrder(
		h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(2),
		h.telemetry.EXPECT().Timings().Return(timings),
		h.reporter.EXPECT().Timings(timings),
		h.reporter.EXPECT().Summary(gomock.Any()),
		h.reporter.EXPECT().Done(),
	)

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeDebug,
		Generator: "ninja",
		Timings:   true,
	})
	require.NoError(t, err)
}

func TestApp_Build_ReportsTimingsOnFailure(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	timings := []domain.StageTiming{{Stage: "configure", Duration: time.Second, Failed: true}}

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(false)
	gomock.InOrder(
		h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{ExitCode: 1}, processFailure("CMake Error\n")),
		h.reporter.EXPECT().StageFailed(domain.StageConfiguring, gomock.Any(), "CMake Error\n"),
		h.telemetry.EXPECT().Timings().Return(timings),
		h.reporter.EXPECT().Timings(timings),
		h.reporter.EXPECT().Aborted(),
	)

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeDebug,
		Generator: "ninja",
		Timings:   true,
	})
	require.ErrorIs(t, err, domain.ErrConfigureFailed)
}

func TestApp_Build_FailureSkipsSummary(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(false)

	gomock.InOrder(
		h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil),
		h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{ExitCode: 1}, processFailure("error C2065\n")),
		h.reporter.EXPECT().StageFailed(domain.StageDebugBuild, gomock.Any(), "error C2065\n"),
		h.reporter.EXPECT().Aborted(),
	)

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeBoth,
		Generator: "vs2019",
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestApp_Build_StoreFailureIsNotFatal(t *testing.T) {
	h := newHarness(t)
	h.allowStageReports()

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	h.toolchain.EXPECT().LookPath("cmake", gomock.Any()).Return("/usr/bin/cmake", nil)
	h.workspace.EXPECT().Exists("build").Return(false)
	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ProcessResult{}, nil).Times(2)
	h.store.EXPECT().Put(gomock.Any()).Return(zerr.Wrap(domain.ErrStoreWriteFailed, "disk full"))
	h.logger.EXPECT().Warn(gomock.Any(), gomock.Any())
	h.reporter.EXPECT().Summary(gomock.Any())
	h.reporter.EXPECT().Done()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeRelease,
		Generator: "xcode",
	})
	require.NoError(t, err)
}

func TestApp_Build_ConfigError(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.Project{}, zerr.Wrap(domain.ErrConfigParseFailed, "line 1"))
	h.reporter.EXPECT().Error(gomock.Any())
	h.reporter.EXPECT().Aborted()

	err := h.app.Build(context.Background(), app.BuildOptions{
		BuildType: domain.BuildTypeRelease,
		Generator: "unix",
	})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Generators(t *testing.T) {
	h := newHarness(t)

	h.reporter.EXPECT().Generators(domain.DefaultCatalog().All())

	h.app.Generators()
}

func TestApp_Doctor(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	want := append([]string{"cmake"}, domain.DefaultCatalog().Tools()...)
	statuses := []domain.ToolStatus{{Name: "cmake", Path: "/usr/bin/cmake", Found: true}}
	h.toolchain.EXPECT().Probe(gomock.Any(), want, domain.DefaultProject().ToolScope()).Return(statuses, nil)
	h.reporter.EXPECT().Tools(statuses)

	require.NoError(t, h.app.Doctor(context.Background(), ""))
}

func TestApp_Doctor_MissingCMake(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	statuses := []domain.ToolStatus{{Name: "cmake"}, {Name: "ninja", Found: true}}
	h.toolchain.EXPECT().Probe(gomock.Any(), gomock.Any(), gomock.Any()).Return(statuses, nil)
	h.reporter.EXPECT().Tools(statuses)
	h.reporter.EXPECT().Error(gomock.Any())

	err := h.app.Doctor(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}

func TestApp_Clean(t *testing.T) {
	h := newHarness(t)

	project := domain.DefaultProject()
	project.Root = "/src/peach"
	project.BuildDir = "out"
	h.loader.EXPECT().Load("kiln.yaml").Return(project, nil)
	h.workspace.EXPECT().Clean("/src/peach/out").Return(nil)
	h.logger.EXPECT().Info(gomock.Any(), gomock.Any())

	require.NoError(t, h.app.Clean(context.Background(), ""))
}

func TestApp_Clean_Failure(t *testing.T) {
	h := newHarness(t)

	h.loader.EXPECT().Load("kiln.yaml").Return(domain.DefaultProject(), nil)
	cleanErr := zerr.Wrap(domain.ErrCleanFailed, "refusing to remove directory")
	h.workspace.EXPECT().Clean("build").Return(cleanErr)
	h.reporter.EXPECT().Error(cleanErr)

	err := h.app.Clean(context.Background(), "")
	require.True(t, errors.Is(err, domain.ErrCleanFailed))
}

func TestApp_SetVerbose(t *testing.T) {
	h := newHarness(t)

	gomock.InOrder(
		h.logger.EXPECT().SetLevel(domain.LogLevelDebug),
		h.logger.EXPECT().SetLevel(domain.LogLevelInfo),
	)

	h.app.SetVerbose(true)
	h.app.SetVerbose(false)
}

func TestApp_Close(t *testing.T) {
	h := newHarness(t)

	h.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, h.app.Close())
}
