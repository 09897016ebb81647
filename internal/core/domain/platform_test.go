package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestPlatformName(t *testing.T) {
	tests := map[string]string{
		"linux":   "Linux",
		"darwin":  "Darwin",
		"windows": "Windows",
		"freebsd": "FreeBSD",
		"plan9":   "Plan9",
		"":        "Unknown",
	}

	for goos, want := range tests {
		assert.Equal(t, want, domain.PlatformName(goos), "goos %q", goos)
	}
}
