package domain

// Stage is a state of the build orchestration.
type Stage int

const (
	// StageIdle is the state before anything has been issued.
	StageIdle Stage = iota
	// StageConfiguring runs the generation step.
	StageConfiguring
	// StageSingleConfigBuild runs the only build step of a single-config generator.
	StageSingleConfigBuild
	// StageDebugBuild builds the Debug configuration of a multi-config tree.
	StageDebugBuild
	// StageReleaseBuild builds the Release configuration of a multi-config tree.
	StageReleaseBuild
	// StageDone is reached when every step succeeded.
	StageDone
	// StageFailed is reached when any step failed. It is absorbing.
	StageFailed
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageConfiguring:
		return "configure"
	case StageSingleConfigBuild:
		return "build"
	case StageDebugBuild:
		return "build-debug"
	case StageReleaseBuild:
		return "build-release"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition leaves s.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}

// IsBuild reports whether s issues a build step.
func (s Stage) IsBuild() bool {
	return s == StageSingleConfigBuild || s == StageDebugBuild || s == StageReleaseBuild
}
