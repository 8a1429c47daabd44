package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/addressbook/internal/config"
	"github.com/calvinalkan/addressbook/internal/fs"
)

var errUnknownCommand = errors.New("unknown command")

// Run is the main entry point. Returns exit code.
//
// With a command in args it runs that command once against a fresh address
// book (after any preloads). Without one it starts the shell on in.
func Run(in io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	globals := flag.NewFlagSet("addressbook", flag.ContinueOnError)
	globals.SetOutput(&strings.Builder{})
	globals.SetInterspersed(false)

	workDir := globals.StringP("cwd", "C", "", "Run as if started in `dir`")
	configPath := globals.StringP("config", "c", "", "Use specified config `file`")
	verbose := globals.BoolP("verbose", "v", false, "Log debug output to stderr")
	load := globals.StringArray("load", nil, "Load `file` before running (repeatable)")
	help := globals.BoolP("help", "h", false, "Show help")

	if len(args) == 0 {
		args = []string{"addressbook"}
	}

	err := globals.Parse(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	cfg, err := config.Load(config.Input{
		WorkDirOverride: *workDir,
		ConfigPath:      *configPath,
		Verbose:         *verbose,
		ExtraPreload:    *load,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, globals, nil)

		return 1
	}

	log := newLogger(errOut, cfg.Level()).With(zap.String("session", uuid.NewString()))
	defer func() { _ = log.Sync() }()

	session := NewSession(&cfg, fs.NewReal(), log)
	cmds := commands(session)

	remaining := globals.Args()

	if *help || (len(remaining) > 0 && remaining[0] == "help") {
		printUsage(out, globals, cmds)

		return 0
	}

	err = session.Preload()
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	ctx := context.Background()

	if len(remaining) == 0 {
		return runShell(ctx, in, out, errOut, session, globals)
	}

	cmd := lookup(cmds, remaining[0])
	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s", errUnknownCommand, remaining[0]))
		printUsage(errOut, globals, cmds)

		return 1
	}

	log.Debug("run command", zap.String("command", cmd.Name()))

	ioCtx := NewIO(out, errOut)

	code := cmd.Run(ctx, ioCtx, remaining[1:])

	// Warnings are printed even when the command failed.
	finishCode := ioCtx.Finish()
	if code != 0 {
		return code
	}

	return finishCode
}

// commands builds the command table for s. Commands keep parsed flag state,
// so build a fresh table for every command that runs.
func commands(s *Session) []*Command {
	return []*Command{
		AddCmd(s),
		AddFileCmd(s),
		DeleteCmd(s),
		ListCmd(s),
		FindCmd(s),
		ViewCmd(s),
		ViewAllCmd(s),
		SortCmd(s),
		RemoveTagCmd(s),
		TagsCmd(s),
		ClearCmd(s),
		PrintConfigCmd(s.Config),
	}
}

func lookup(cmds []*Command, name string) *Command {
	for _, cmd := range cmds {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, globals *flag.FlagSet, cmds []*Command) {
	fprintln(w, `addressbook - in-memory contact manager

Usage: addressbook [flags] [command [args]]

Without a command, starts an interactive shell.

Global flags:`)
	fprintln(w, strings.TrimRight(globals.FlagUsages(), "\n"))

	if cmds == nil {
		return
	}

	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range cmds {
		fprintln(w, cmd.HelpLine())
	}

	fprintln(w, shellHelp)
}
