package orchestrator

import "go.trai.ch/kiln/internal/core/domain"

// Step is one command issued by a stage.
type Step struct {
	Stage   domain.Stage
	Command domain.Command
}

// Next returns the stage entered after s completes successfully.
// Terminal stages are absorbing.
func Next(s domain.Stage, plan domain.BuildPlan) domain.Stage {
	switch s {
	case domain.StageIdle:
		return domain.StageConfiguring
	case domain.StageConfiguring:
		switch {
		case !plan.Generator.MultiConfig:
			return domain.StageSingleConfigBuild
		case plan.BuildType.IncludesDebug():
			return domain.StageDebugBuild
		case plan.BuildType.IncludesRelease():
			return domain.StageReleaseBuild
		default:
			return domain.StageDone
		}
	case domain.StageDebugBuild:
		if plan.BuildType.IncludesRelease() {
			return domain.StageReleaseBuild
		}
		return domain.StageDone
	case domain.StageSingleConfigBuild, domain.StageReleaseBuild:
		return domain.StageDone
	case domain.StageDone:
		return domain.StageDone
	default:
		return domain.StageFailed
	}
}

// CommandFor returns the command issued by stage s. Stages that issue nothing
// report false.
func CommandFor(s domain.Stage, plan domain.BuildPlan, project domain.Project) (domain.Command, bool) {
	switch s {
	case domain.StageConfiguring:
		return project.ConfigureCommand(plan), true
	case domain.StageSingleConfigBuild:
		return project.BuildCommand(""), true
	case domain.StageDebugBuild:
		return project.BuildCommand(domain.ConfigDebug), true
	case domain.StageReleaseBuild:
		return project.BuildCommand(domain.ConfigRelease), true
	default:
		return domain.Command{}, false
	}
}

// Steps returns the stages and commands of the success path, in issue order.
// A plan that fails domain.BuildPlan.Check yields no steps and the check error.
func Steps(plan domain.BuildPlan, project domain.Project) ([]Step, error) {
	if err := plan.Check(); err != nil {
		return nil, err
	}

	var steps []Step
	for s := Next(domain.StageIdle, plan); !s.IsTerminal(); s = Next(s, plan) {
		if cmd, ok := CommandFor(s, plan, project); ok {
			steps = append(steps, Step{Stage: s, Command: cmd})
		}
	}
	return steps, nil
}

// Commands returns the success-path command sequence of the plan.
func Commands(plan domain.BuildPlan, project domain.Project) ([]domain.Command, error) {
	steps, err := Steps(plan, project)
	if err != nil {
		return nil, err
	}
	cmds := make([]domain.Command, len(steps))
	for i, step := range steps {
		cmds[i] = step.Command
	}
	return cmds, nil
}
