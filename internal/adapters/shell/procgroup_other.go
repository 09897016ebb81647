//go:build !unix

package shell

import "os/exec"

// isolate keeps the default cancellation, which kills only the direct child.
func isolate(*exec.Cmd) {}
