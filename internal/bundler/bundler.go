package bundler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/platform"
)

// Environment variables read by rollup.config.ts.
const (
	EnvPlugin    = "plugin"
	EnvEngineDir = "engineDir"
)

// Status classifies how a bundler run ended.
type Status int

const (
	// StatusSucceeded means rollup exited with code 0.
	StatusSucceeded Status = iota
	// StatusSpawnFailed means rollup could not be started.
	StatusSpawnFailed
	// StatusExited means rollup ran and exited with a non-zero code.
	StatusExited
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusSpawnFailed:
		return "spawn-failed"
	case StatusExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Result captures the outcome of a bundler run.
type Result struct {
	Status   Status
	ExitCode int
	Err      error
}

// Request describes one plugin build.
type Request struct {
	Plugin    string
	EngineDir string
	Watch     bool
}

// Bundler invokes rollup from a project root.
type Bundler struct {
	Root       string
	Executable string

	// Stdin, Stdout and Stderr can be set for testing; defaults to the
	// process's standard streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Bundler using the rollup binary installed under root.
func New(root string) *Bundler {
	return &Bundler{
		Root:       root,
		Executable: platform.NodeBin(root, "rollup"),
	}
}

// Args returns the rollup command-line arguments.
func Args(watch bool) []string {
	args := []string{"-c", "--configPlugin", "typescript"}
	if watch {
		args = append(args, "--watch")
	}
	return args
}

// Run builds one plugin and blocks until rollup exits. In watch mode that
// is when ctx is cancelled or rollup is interrupted.
func (b *Bundler) Run(ctx context.Context, req Request) Result {
	cmd := exec.CommandContext(ctx, b.Executable, Args(req.Watch)...)
	cmd.Dir = b.Root
	cmd.Env = buildEnv(os.Environ(), req)
	cmd.Stdin = orReader(b.Stdin, os.Stdin)
	cmd.Stdout = orWriter(b.Stdout, os.Stdout)
	cmd.Stderr = orWriter(b.Stderr, os.Stderr)

	err := cmd.Run()
	if err == nil {
		return Result{Status: StatusSucceeded}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Status: StatusExited, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return Result{Status: StatusSpawnFailed, Err: fmt.Errorf("starting %s: %w", b.Executable, err)}
}

// Command returns the human-readable command line for debug output.
func (b *Bundler) Command(watch bool) string {
	return b.Executable + " " + strings.Join(Args(watch), " ")
}

func buildEnv(env []string, req Request) []string {
	env = setEnv(env, EnvPlugin, req.Plugin)
	env = setEnv(env, EnvEngineDir, req.EngineDir)
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

func orReader(r, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orWriter(w, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
