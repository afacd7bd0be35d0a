package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/countdown/internal/cli"
	"github.com/Makepad-fr/countdown/internal/config"
	"github.com/Makepad-fr/countdown/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	// Root flags (apply to every subcommand); they override env and .env.
	theme := flag.String("theme", cfg.Theme, "color theme: classic, neon or mono")
	stateFile := flag.String("state", cfg.StateFile, "file holding the saved timer state (default ./.countdown.json)")
	noRestore := flag.Bool("no-restore", !cfg.Restore, "start with a blank timer instead of the saved state")
	chimeOn := flag.Bool("chime", cfg.Chime, "ring when a countdown completes")
	noBlink := flag.Bool("no-blink", !cfg.Blink, "keep the separator steady while running")
	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	flag.Parse()

	cfg.Theme = *theme
	cfg.StateFile = *stateFile
	cfg.Restore = !*noRestore
	cfg.Chime = *chimeOn
	cfg.Blink = !*noBlink
	cfg.LogFile = *logFile
	if *verbose {
		cfg.LogLevel = logger.LevelVerbose
	}
	if *quiet {
		cfg.LogLevel = logger.LevelOff
	}

	// Timer sessions log to a file so the screen stays clean; one-shot
	// commands never touch the log file.
	var logOut io.Writer = os.Stderr
	if opensLogFile(flag.Args()) && cfg.LogFile != "" && cfg.LogFile != "stderr" && cfg.LogLevel != logger.LevelOff {
		if dir := filepath.Dir(cfg.LogFile); dir != "" && dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	log := logger.New(cfg.LogLevel, logOut)

	code := cli.Run(flag.Args(), cli.Options{
		Config: cfg,
		Log:    log,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}

// opensLogFile reports whether the subcommand in args runs a countdown.
func opensLogFile(args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "run", "watch":
		return true
	}
	return false
}
