package domain

import (
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// BuildInfo records the last successful build of a build directory.
type BuildInfo struct {
	BuildDir    string    `json:"build_dir,omitzero"`
	Generator   string    `json:"generator,omitzero"`
	BuildType   string    `json:"build_type,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// Fingerprint hashes a command sequence, including each command's directory and
// environment overrides. Equal sequences always produce equal fingerprints.
func Fingerprint(commands []Command) string {
	d := xxhash.New()
	for _, cmd := range commands {
		_, _ = d.WriteString(cmd.Dir)
		_, _ = d.Write([]byte{0})
		for _, arg := range cmd.Args {
			// Length-prefix each argument so ["a b"] and ["a", "b"] differ.
			_, _ = d.WriteString(strconv.Itoa(len(arg)))
			_, _ = d.Write([]byte{':'})
			_, _ = d.WriteString(arg)
		}
		for _, k := range slices.Sorted(maps.Keys(cmd.Env)) {
			_, _ = d.WriteString("\x00" + strconv.Itoa(len(k)) + ":" + k + "=" + cmd.Env[k])
		}
		_, _ = d.Write([]byte{'\n'})
	}
	return strconv.FormatUint(d.Sum64(), 16)
}
