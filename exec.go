package douze

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/goyek/goyek/v3"
	"golang.org/x/term"
)

// WaitDelay is how long a tool gets to exit after SIGINT before it is killed.
const WaitDelay = 5 * time.Second

// colorEnv is computed once per process: the TTY and NO_COLOR checks do not
// change while tasks run.
var colorEnv = sync.OnceValue(func() []string {
	_, noColor := os.LookupEnv("NO_COLOR")
	return toolColorEnv(term.IsTerminal(int(os.Stdout.Fd())), noColor)
})

// toolColorEnv returns the variables that keep tools colored when goyek
// captures their output. NO_COLOR (https://no-color.org/)
// and a non-TTY stdout disable them.
func toolColorEnv(isTTY, noColorSet bool) []string {
	if noColorSet || !isTTY {
		return nil
	}
	return []string{"FORCE_COLOR=1", "CLICOLOR_FORCE=1"}
}

// Command creates an exec.Cmd for argv running in dir, with stdout/stderr
// connected to os.Stdout/os.Stderr.
//
// Cancelling ctx interrupts the tool the way Ctrl-C in a terminal would:
// SIGINT first, then a kill once WaitDelay has passed.
func Command(ctx context.Context, dir string, argv ...string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), colorEnv()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	interruptOnCancel(cmd, WaitDelay)
	return cmd, nil
}

func interruptOnCancel(cmd *exec.Cmd, grace time.Duration) {
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = grace
}

// ExitError reports a command that ran but did not exit successfully.
type ExitError struct {
	Argv []string
	// Code is the exit status, or -1 when the tool was killed by a signal.
	Code int
	// State describes how the process ended, e.g. "exit status 1" or
	// "signal: interrupt".
	State string
}

func (e *ExitError) Error() string {
	state := e.State
	if state == "" {
		state = fmt.Sprintf("exit status %d", e.Code)
	}
	return strings.Join(e.Argv, " ") + ": " + state
}

// Exec runs argv in dir as part of a goyek task. The command line is logged
// on the task logger and output goes to the task output.
// An unsuccessful exit is returned as *ExitError.
func Exec(a *goyek.A, dir string, argv []string) error {
	cmd, err := Command(a.Context(), dir, argv...)
	if err != nil {
		return err
	}
	a.Logf("Exec: %s", strings.Join(argv, " "))
	cmd.Stdout = a.Output()
	cmd.Stderr = a.Output()
	return runError(argv, cmd.Run())
}

func runError(argv []string, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Argv:  argv,
			Code:  exitErr.ExitCode(),
			State: exitErr.ProcessState.String(),
		}
	}
	if err != nil {
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}
