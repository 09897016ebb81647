package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestStage(t *testing.T) {
	tests := []struct {
		stage    domain.Stage
		name     string
		terminal bool
		build    bool
	}{
		{domain.StageIdle, "idle", false, false},
		{domain.StageConfiguring, "configure", false, false},
		{domain.StageSingleConfigBuild, "build", false, true},
		{domain.StageDebugBuild, "build-debug", false, true},
		{domain.StageReleaseBuild, "build-release", false, true},
		{domain.StageDone, "done", true, false},
		{domain.StageFailed, "failed", true, false},
		{domain.Stage(42), "unknown", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.stage.String())
			assert.Equal(t, tt.terminal, tt.stage.IsTerminal())
			assert.Equal(t, tt.build, tt.stage.IsBuild())
		})
	}
}
