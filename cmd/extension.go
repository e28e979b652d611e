package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvConfigFile = "PFA_CONFIG"
	EnvLogLevel   = "PFA_LOG_LEVEL"
	EnvRaw        = "PFA_RAW"
)

// ExtensionPrefix prefixes the binaries implementing unknown subcommands.
const ExtensionPrefix = "pfa-"

// RunExtension attempts to find and execute an external pfa-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv(os.Environ())

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the global flags to an extension as environment variables.
func extensionEnv(environ []string) []string {
	env := append([]string(nil), environ...)
	env = append(env, EnvConfigFile+"="+*configFile)
	if *logLevel != "" {
		env = append(env, EnvLogLevel+"="+*logLevel)
	}
	env = append(env, EnvRaw+"="+strconv.FormatBool(*raw))
	return env
}
