package domain

import "go.trai.ch/zerr"

// BuildPlan is a validated combination of build type and generator.
type BuildPlan struct {
	BuildType BuildType
	Generator GeneratorDescriptor
}

// Check reports whether the plan can be executed. A plan assembled without a
// Validator may carry an unset build type or ask a single-config generator for
// both configurations.
func (p BuildPlan) Check() error {
	if !p.BuildType.Valid() {
		return zerr.With(zerr.Wrap(ErrInvalidBuildType, "invalid build plan"), "build_type", int(p.BuildType))
	}

	// A single-config tree bakes in one configuration at generation time.
	if !p.Generator.MultiConfig && p.BuildType == BuildTypeBoth {
		err := zerr.With(zerr.Wrap(ErrIncompatibleBuildType, "invalid build plan"), "generator", p.Generator.Key)
		return zerr.With(err, "build_type", p.BuildType.String())
	}

	return nil
}

// Validator checks requested build types and generator keys against a Catalog.
type Validator struct {
	catalog *Catalog
}

// NewValidator creates a Validator backed by the given catalog.
func NewValidator(catalog *Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate resolves the generator key and checks it can hold the requested build type.
func (v *Validator) Validate(buildType BuildType, generatorKey string) (BuildPlan, error) {
	if !buildType.Valid() {
		return BuildPlan{}, zerr.With(zerr.Wrap(ErrInvalidBuildType, "invalid build plan"), "build_type", int(buildType))
	}

	generator, ok := v.catalog.Lookup(generatorKey)
	if !ok {
		return BuildPlan{}, zerr.With(zerr.Wrap(ErrUnknownGenerator, "invalid build plan"), "generator", generatorKey)
	}

	plan := BuildPlan{BuildType: buildType, Generator: generator}
	if err := plan.Check(); err != nil {
		return BuildPlan{}, err
	}
	return plan, nil
}
