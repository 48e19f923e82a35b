package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/build"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/config"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/logger"
	"github.com/PalmDevs/better-aliucordrn-plugins-template/internal/plugin"
)

// buildInfo is injected via ldflags.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Run executes the CLI with args from the current working directory and
// returns the process exit code. SIGINT and SIGTERM cancel running child
// processes.
func Run(args []string, version, commit, date string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := os.Getwd()
	if err != nil {
		logger.Default(false).Errorf("Cannot resolve the working directory: %v", err)
		return 1
	}

	s := streams{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	return run(ctx, root, args, s, buildInfo{Version: version, Commit: commit, Date: date})
}

func run(ctx context.Context, root string, args []string, s streams, info buildInfo) int {
	if filepath.Base(root) == config.Dir {
		log := logger.New(s.stdout, s.stderr, false)
		log.Errorf("You can't run the CLI from the %s directory. Please run it from the root directory of the project.",
			log.Cyan(config.Dir))
		return 1
	}

	cfg, err := config.Load(root)
	if err != nil {
		logger.New(s.stdout, s.stderr, false).Errorf("%v", err)
		return 1
	}
	log := logger.New(s.stdout, s.stderr, cfg.Debug())

	app, err := newApp(ctx, root, args, cfg, log, s)
	if err != nil {
		if errors.Is(err, plugin.ErrNoPluginsDir) {
			log.Errorf("No %s directory found in %s. Please run the CLI from the root directory of the project.",
				log.Cyan(filepath.Base(cfg.PluginsDir())), root)
			return 1
		}
		log.Errorf("%v", err)
		return 1
	}

	cmd := newRootCmd(app, info)
	cmd.SetArgs(args)
	cmd.SetIn(s.stdin)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)

	return app.exitCode(cmd.ExecuteContext(ctx))
}

// exitCode reports err once and maps it to a process exit code.
func (a *App) exitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			a.Log.Errorf("%v", exitErr.Err)
		}
		if exitErr.Code < 1 {
			return 1
		}
		return exitErr.Code
	}

	var verr *build.ValidationError
	if errors.As(err, &verr) {
		a.Log.Errorf("%s", verr.Render(a.Log, a.Plugins))
		return 1
	}

	a.Log.Errorf("%v", err)
	return 1
}
