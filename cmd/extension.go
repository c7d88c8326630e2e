package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// ExtensionPrefix starts the name of every extension binary.
const ExtensionPrefix = "mfb-"

// RunExtension attempts to find and execute an external mfb-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The extension receives the resolved settings as MFB_* environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return true, 2
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing logger:", err)
		return true, 1
	}
	defer logger.Sync()
	return runExtension(cfg, logger, subcommand, args)
}

func runExtension(cfg Config, logger *zap.Logger, subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("extension not found", zap.String("extension", name), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), cfg.Environ()...)

	logger.Debug("running extension", zap.String("path", lp), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		logger.Error("extension failed", zap.String("extension", name), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}

	return true, 0
}
