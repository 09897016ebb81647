package ports

import "go.trai.ch/kiln/internal/core/domain"

// Reporter presents build progress to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// StageStarted is called before the command of a stage is issued.
	StageStarted(stage domain.Stage, plan domain.BuildPlan)
	// StageSucceeded is called after the command of a stage exited successfully.
	StageSucceeded(stage domain.Stage, plan domain.BuildPlan)
	// StageFailed is called with the full captured output of the failing command.
	StageFailed(stage domain.Stage, plan domain.BuildPlan, output string)
	// Finished is called once every stage of the plan succeeded.
	Finished(plan domain.BuildPlan)
	// Timings prints how long each recorded stage ran.
	Timings(timings []domain.StageTiming)
	// Summary prints the final build summary.
	Summary(summary domain.Summary)
	// Warn prints a warning that does not stop the run.
	Warn(msg string)
	// Error prints a failure detected before any stage ran.
	Error(err error)
	// Plan prints a command that would be issued.
	Plan(stage domain.Stage, cmd domain.Command)
	// Done prints the final success line.
	Done()
	// Aborted prints the final failure line.
	Aborted()
	// Generators lists the generator catalog.
	Generators(generators []domain.GeneratorDescriptor)
	// Tools lists the result of a toolchain probe.
	Tools(tools []domain.ToolStatus)
}
