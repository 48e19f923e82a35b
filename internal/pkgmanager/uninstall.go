package pkgmanager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// SemanticReleasePackages are the release-automation dev dependencies the
// template ships with. Plugin authors who do not publish through CI can
// remove them.
var SemanticReleasePackages = []string{
	"semantic-release",
	"@semantic-release/changelog",
	"@semantic-release/commit-analyzer",
	"@semantic-release/git",
	"@semantic-release/github",
	"@semantic-release/release-notes-generator",
	"conventional-changelog-conventionalcommits",
}

// ExecOptions configures a package manager child process.
type ExecOptions struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Uninstall runs "<pm> uninstall <pkgs...>" in the foreground. The returned
// error is non-nil only when the process could not be started; otherwise the
// child's exit code is returned. A child terminated without an exit code
// reports -1.
func Uninstall(ctx context.Context, pm PackageManager, opts ExecOptions, pkgs ...string) (int, error) {
	args := append([]string{"uninstall"}, pkgs...)
	cmd := exec.CommandContext(ctx, string(pm), args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("running %s uninstall: %w", pm, err)
}
