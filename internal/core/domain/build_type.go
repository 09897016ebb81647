package domain

import "go.trai.ch/zerr"

// BuildType selects which configurations a run produces.
type BuildType int

const (
	// BuildTypeUnknown is the zero value and never valid in a plan.
	BuildTypeUnknown BuildType = iota
	// BuildTypeDebug builds the Debug configuration.
	BuildTypeDebug
	// BuildTypeRelease builds the Release configuration.
	BuildTypeRelease
	// BuildTypeBoth builds Debug, then Release. Only valid for multi-config generators.
	BuildTypeBoth
)

// Configuration names as understood by the meta-build tool.
const (
	ConfigDebug   = "Debug"
	ConfigRelease = "Release"
)

// String returns the display name of the build type.
func (b BuildType) String() string {
	switch b {
	case BuildTypeDebug:
		return ConfigDebug
	case BuildTypeRelease:
		return ConfigRelease
	case BuildTypeBoth:
		return "Release and Debug"
	default:
		return "Unknown"
	}
}

// Valid reports whether b is one of the selectable build types.
func (b BuildType) Valid() bool {
	return b == BuildTypeDebug || b == BuildTypeRelease || b == BuildTypeBoth
}

// IncludesDebug reports whether the Debug configuration is requested.
func (b BuildType) IncludesDebug() bool {
	return b == BuildTypeDebug || b == BuildTypeBoth
}

// IncludesRelease reports whether the Release configuration is requested.
func (b BuildType) IncludesRelease() bool {
	return b == BuildTypeRelease || b == BuildTypeBoth
}

// BuildTypeFromFlags maps the mutually exclusive selection flags to a BuildType.
// Exactly one flag must be set.
func BuildTypeFromFlags(debug, release, both bool) (BuildType, error) {
	selected := BuildTypeUnknown
	count := 0
	if debug {
		selected = BuildTypeDebug
		count++
	}
	if release {
		selected = BuildTypeRelease
		count++
	}
	if both {
		selected = BuildTypeBoth
		count++
	}
	if count != 1 {
		return BuildTypeUnknown, zerr.With(zerr.Wrap(ErrInvalidBuildType, "select exactly one of debug, release or both"), "selected", count)
	}
	return selected, nil
}
