package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// usageWidth pads the usage column of the command listing.
const usageWidth = 34

// Command is one address book verb. The same value serves the one-shot CLI
// and the shell, so Exec must not assume anything about how it was invoked.
type Command struct {
	// Flags holds the verb's own flags. Positional arguments, such as the
	// person index for delete, stay in the args passed to Exec.
	Flags *flag.FlagSet

	// Usage starts with the verb, e.g. "view <index>" or "tags [--add <tag>]".
	Usage string

	// Short is shown in the command listing.
	Short string

	// Long replaces Short in "<verb> --help" when set.
	Long string

	// Example is printed as-is under "Example:" in "<verb> --help".
	Example string

	// Exec runs the verb against the session it was built for.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name returns the verb.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")

	return name
}

// HelpLine returns the command's row in the command listing.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-*s %s", usageWidth, c.Usage, c.Short)
}

// PrintHelp prints "<verb> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: addressbook", c.Usage)
	o.Println()

	if c.Long != "" {
		o.Println(c.Long)
	} else {
		o.Println(c.Short)
	}

	if c.Example != "" {
		o.Println()
		o.Println("Example:")
		o.Println("  " + c.Example)
	}

	if c.Flags == nil || !c.Flags.HasFlags() {
		return
	}

	var buf strings.Builder

	c.Flags.SetOutput(&buf)
	c.Flags.PrintDefaults()

	o.Println()
	o.Println("Flags:")
	o.Printf("%s", buf.String())
}

// Run parses args and executes the verb, returning the exit code.
// Usage errors print the verb's help to stderr; Exec errors print only the
// error, since a rejected person or index says nothing about syntax.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{})

	err := c.Flags.Parse(args)

	switch {
	case errors.Is(err, flag.ErrHelp):
		c.PrintHelp(o)

		return 0
	case err != nil:
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(NewIO(o.errOut, o.errOut))

		return 1
	}

	err = c.Exec(ctx, o, c.Flags.Args())
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}
