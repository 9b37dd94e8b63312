package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Extensions are plain executables named stks-<subcommand> found on the
// PATH. They receive the global flags through the environment.
const (
	EnvStore   = "STKS_STORE"
	EnvVerbose = "STKS_VERBOSE"
)

// RunExtension looks for a stks-<subcommand> executable on the PATH and
// runs it with args, wired to this process's stdio. It reports whether
// an extension was found, and the exit code of the run.
func RunExtension(subcommand string, args []string) (found bool, code int) {
	name := "stks-" + subcommand
	path, err := exec.LookPath(name)
	if err != nil {
		log.Printf("no %q on PATH: %v", name, err)
		return false, 0
	}

	ext := exec.Command(path, args...)
	ext.Stdin, ext.Stdout, ext.Stderr = os.Stdin, os.Stdout, os.Stderr
	ext.Env = append(os.Environ(),
		EnvStore+"="+StorePath(),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	err = ext.Run()
	if err == nil {
		return true, 0
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return true, exit.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "running %q: %v\n", name, err)
	return true, 1
}
