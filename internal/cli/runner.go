package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/Makepad-fr/countdown/internal/chime"
	"github.com/Makepad-fr/countdown/internal/clock"
	"github.com/Makepad-fr/countdown/internal/config"
	"github.com/Makepad-fr/countdown/internal/countdown"
	"github.com/Makepad-fr/countdown/internal/logger"
	"github.com/Makepad-fr/countdown/internal/model"
	"github.com/Makepad-fr/countdown/internal/store/jsonstore"
	"github.com/Makepad-fr/countdown/internal/tui"
	"github.com/Makepad-fr/countdown/internal/ui"
)

// Options carry settings resolved from env and root flags.
type Options struct {
	Config config.Config
	Log    *logger.Logger
	Source clock.TickSource // clock.System when nil
}

// ringTimeout bounds how long a completion chime may play.
const ringTimeout = 5 * time.Second

// Run executes the countdown subcommand named in args. It returns 0 on
// success, 1 when the command fails and 2 on a usage error.
func Run(args []string, opt Options) int {
	if opt.Log == nil {
		opt.Log = logger.New(logger.LevelOff, nil)
	}
	if opt.Source == nil {
		opt.Source = clock.System
	}
	ui.SetTheme(opt.Config.Theme)

	if len(args) == 0 {
		return doRun(nil, opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "run":
		if len(a) > 2 {
			ui.Fail("usage: countdown run [min] [sec]")
			return 2
		}
		return doRun(a, opt)

	case "watch":
		if len(a) == 0 || len(a) > 2 {
			ui.Fail("usage: countdown watch <min> [sec]")
			return 2
		}
		return doWatch(a, opt)

	case "check":
		if len(a) != 1 {
			ui.Fail("usage: countdown check <text>")
			return 2
		}
		return doCheck(a[0])

	case "state":
		if len(a) == 1 && a[0] == "clear" {
			return doStateClear(opt)
		}
		if len(a) != 0 {
			ui.Fail("usage: countdown state [clear]")
			return 2
		}
		return doState(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`countdown - a tiny terminal countdown timer

Usage:
  countdown [flags] [subcommand] [args]

Subcommands:
  run [min] [sec]    Open the timer screen (default), optionally prefilled
  watch <min> [sec]  Count down without the full screen, then ring
  check <text>       Show how an input would be read (0-59)
  state [clear]      Show or delete the saved timer state

Examples:
  countdown
  countdown run 5
  countdown watch 0 30
  countdown check 123
`)
}

// ---- subcommands ----

func doRun(args []string, opt Options) int {
	store, err := jsonstore.New(opt.Config.StateFile)
	if err != nil {
		ui.Fail("state: " + err.Error())
		return 1
	}

	ringer := newRinger(opt)
	machine := countdown.New(opt.Source, opt.Log,
		countdown.WithOnFinish(func() { go ring(ringer, opt.Log) }),
	)
	defer machine.Close()

	if opt.Config.Restore && len(args) == 0 {
		snap, err := store.Load()
		if err != nil {
			opt.Log.Warn("ignoring saved state %s: %v", store.Path(), err)
		} else {
			machine.Restore(snap)
		}
	}
	if err := prefill(machine, args); err != nil {
		ui.Fail(err.Error())
		return 2
	}

	if err := tui.Run(machine, tui.Options{Blink: opt.Config.Blink}); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}

	machine.Close()
	if err := store.Save(machine.Snapshot()); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	return 0
}

func doWatch(args []string, opt Options) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := make(chan struct{})
	var total time.Duration
	machine := countdown.New(opt.Source, opt.Log,
		countdown.WithOnChange(func(st countdown.State) {
			if st.Phase != countdown.Running {
				return
			}
			elapsed := int((total - st.Remaining) / time.Second)
			fmt.Printf("\r%s  %s ", countdown.Clock(st.Remaining), ui.ProgressBar(elapsed, int(total/time.Second), 24))
		}),
		countdown.WithOnFinish(func() { close(done) }),
	)
	defer machine.Close()

	if err := prefill(machine, args); err != nil {
		ui.Fail(err.Error())
		return 2
	}
	st := machine.State()
	total = time.Duration(st.Minutes.Value*60+st.Seconds.Value) * time.Second
	if err := machine.Start(); err != nil {
		ui.Fail("watch: " + err.Error())
		return 2
	}

	select {
	case <-ctx.Done():
		machine.Close()
		fmt.Println()
		ui.Fail("cancelled")
		return 1
	case <-done:
	}

	fmt.Println()
	ui.OK(countdown.NoticeTimeUp)
	ring(newRinger(opt), opt.Log)
	return 0
}

func doCheck(raw string) int {
	n, err := countdown.Validate(raw)
	if err != nil {
		ui.Fail(countdown.NoticeInvalid)
		ui.Hint(err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("%q reads as %d (%s)", raw, n, countdown.Pad(n)))
	return 0
}

func doState(opt Options) int {
	store, err := jsonstore.New(opt.Config.StateFile)
	if err != nil {
		ui.Fail("state: " + err.Error())
		return 1
	}
	snap, err := store.Load()
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	t := ui.Current()
	if snap.Blank() {
		ui.Panel([]string{t.Title.Render("Saved state"), t.Muted.Render("nothing saved")})
		return 0
	}

	lines := []string{
		t.Title.Render("Saved state"),
		fmt.Sprintf("%s %s", t.Accent.Render("phase  "), snap.Phase),
		fmt.Sprintf("%s %s:%s", t.Accent.Render("inputs "), countdown.Digits(snap.MinutesInput), countdown.Digits(snap.SecondsInput)),
	}
	if snap.Phase == model.PhasePaused {
		lines = append(lines, fmt.Sprintf("%s %s", t.Accent.Render("left   "),
			countdown.Clock(time.Duration(snap.RemainingSeconds)*time.Second)))
	}
	if !snap.SavedAt.IsZero() {
		lines = append(lines, t.Muted.Render("saved "+snap.SavedAt.Local().Format(time.DateTime)))
	}
	lines = append(lines, "", t.Muted.Render("file: "+store.Path()))
	ui.Panel(lines)
	return 0
}

func doStateClear(opt Options) int {
	store, err := jsonstore.New(opt.Config.StateFile)
	if err != nil {
		ui.Fail("state: " + err.Error())
		return 1
	}
	if err := store.Clear(); err != nil {
		ui.Fail("clear: " + err.Error())
		return 1
	}
	ui.OK("cleared")
	return 0
}

// -------------- helpers --------------

// prefill applies [min] [sec] arguments to an idle machine.
func prefill(m *countdown.Machine, args []string) error {
	setters := []func(string) error{m.SetMinutes, m.SetSeconds}
	for i, raw := range args {
		if err := setters[i](raw); err != nil {
			return err
		}
	}
	m.Dismiss()
	return nil
}

func newRinger(opt Options) chime.Ringer {
	if !opt.Config.Chime {
		return chime.NewNoOp(opt.Log)
	}
	return chime.NewTone(opt.Log)
}

func ring(r chime.Ringer, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), ringTimeout)
	defer cancel()
	if err := r.Ring(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		log.Error("chime: %v", err)
	}
}
