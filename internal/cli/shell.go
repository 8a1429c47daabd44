package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/calvinalkan/addressbook/internal/fs"
)

const shellHelp = `  help                               Show this help (shell and one-shot)
  exit                               Leave the shell (shell only)`

// lineReader yields one input line per call and io.EOF at the end.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// runShell reads commands from in until exit or end of input.
// Returns 1 if any command failed, 0 otherwise.
func runShell(ctx context.Context, in io.Reader, out, errOut io.Writer, s *Session, globals *flag.FlagSet) int {
	var reader lineReader

	if f, ok := in.(*os.File); ok && isTerminal(f.Fd()) {
		reader = newTerminalReader(s)

		fprintln(out, "Welcome to your Address Book! Type 'help' for available commands.")
	} else {
		reader = newScanReader(in)
	}

	defer func() { _ = reader.Close() }()

	failed := false

	for {
		line, err := reader.ReadLine(s.Config.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				break
			}

			fprintln(errOut, "error: reading input:", err)

			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		quit, ok := execLine(ctx, out, errOut, s, globals, line)
		if !ok {
			failed = true
		}

		if quit {
			break
		}
	}

	fprintln(out, "Exiting Address Book as requested ...")

	if failed {
		return 1
	}

	return 0
}

// execLine runs one shell line. quit is true for exit; ok is false if the
// command failed.
func execLine(ctx context.Context, out, errOut io.Writer, s *Session, globals *flag.FlagSet, line string) (quit bool, ok bool) {
	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	switch name {
	case "exit", "quit":
		return true, true
	case "help":
		printUsage(out, globals, commands(s))

		return false, true
	}

	cmd := lookup(commands(s), name)
	if cmd == nil {
		fprintln(errOut, "error:", fmt.Errorf("%w: %s (type 'help' for commands)", errUnknownCommand, name))

		return false, false
	}

	s.Log.Debug("run command", zap.String("command", name))

	ioCtx := NewIO(out, errOut)
	code := cmd.Run(ctx, ioCtx, args)
	_ = ioCtx.Finish()

	return false, code == 0
}

// scanReader reads lines from a non-terminal input without prompting.
type scanReader struct {
	scanner *bufio.Scanner
}

func newScanReader(in io.Reader) *scanReader {
	if in == nil {
		in = strings.NewReader("")
	}

	return &scanReader{scanner: bufio.NewScanner(in)}
}

func (r *scanReader) ReadLine(string) (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}

	err := r.scanner.Err()
	if err != nil {
		return "", err
	}

	return "", io.EOF
}

func (*scanReader) Close() error {
	return nil
}

// terminalReader provides line editing, history and completion.
type terminalReader struct {
	state   *liner.State
	history string
	fs      fs.FS
	log     *zap.Logger
}

func newTerminalReader(s *Session) *terminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	names := []string{"exit", "help"}
	for _, cmd := range commands(s) {
		names = append(names, cmd.Name())
	}

	state.SetCompleter(func(line string) []string {
		var out []string

		for _, name := range names {
			if strings.HasPrefix(name, line) {
				out = append(out, name)
			}
		}

		return out
	})

	r := &terminalReader{state: state, history: s.Config.HistoryFile, fs: s.FS, log: s.Log}

	if r.history != "" {
		if f, err := r.fs.Open(r.history); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return r
}

func (r *terminalReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}

	return line, nil
}

// Close saves the history and restores the terminal.
func (r *terminalReader) Close() error {
	if r.history != "" {
		var buf bytes.Buffer

		_, err := r.state.WriteHistory(&buf)
		if err == nil {
			err = r.fs.WriteFileAtomic(r.history, &buf)
		}

		if err != nil {
			r.log.Warn("saving history failed", zap.String("file", r.history), zap.Error(err))
		}
	}

	return r.state.Close()
}
