//go:build unix

package shell

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// isolate starts the command in its own process group and makes cancellation kill
// the whole group, so tools it spawned stop holding the output pipe.
func isolate(c *exec.Cmd) {
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		err := syscall.Kill(-c.Process.Pid, syscall.SIGKILL)
		if errors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}
