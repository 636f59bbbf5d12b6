package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/terraincognita07/pmsify/internal/services"
)

var ErrUnknownCommand = errors.New("unknown command")

// Commands lists the subcommands Run accepts besides the server.
var Commands = []string{"status", "mark-start", "mark-end", "export", "import", "clear-data"}

func IsCommand(name string) bool {
	for _, command := range Commands {
		if command == name {
			return true
		}
	}
	return false
}

// Run executes one subcommand: args[0] names it, the rest are its flags
// and arguments.
func Run(tracker *services.Tracker, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	name := args[0]
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(out)
	date := flags.String("date", "", "day to mark as YYYY-MM-DD (default today)")
	assumeYes := flags.Bool("yes", false, "skip the confirmation prompt")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	switch name {
	case "status":
		return RunStatusCommand(tracker, out)
	case "mark-start":
		return RunMarkStartCommand(tracker, out, *date)
	case "mark-end":
		return RunMarkEndCommand(tracker, out, *date)
	case "export":
		path, err := requiredPath(flags, name)
		if err != nil {
			return err
		}
		return RunExportCommand(tracker, out, path)
	case "import":
		path, err := requiredPath(flags, name)
		if err != nil {
			return err
		}
		return RunImportCommand(tracker, out, path)
	case "clear-data":
		return RunClearDataCommand(tracker, in, out, *assumeYes)
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func requiredPath(flags *flag.FlagSet, name string) (string, error) {
	if flags.NArg() != 1 {
		return "", fmt.Errorf("%s expects exactly one file path", name)
	}
	return flags.Arg(0), nil
}
