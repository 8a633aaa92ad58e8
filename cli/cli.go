package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"sqlite-header/dbfile"
	"sqlite-header/dbheader"
	"sqlite-header/ui"
)

var ErrMissingSubcommand = errors.New("a subcommand is required: inspect or view")

type (
	Args struct {
		Inspect *InspectCmd `arg:"subcommand:inspect" help:"print every header field"`
		View    *ViewCmd    `arg:"subcommand:view" help:"browse the header interactively"`
	}
	InspectCmd struct {
		File   string `arg:"--file,required,env:SQLITE_HEADER_FILE" help:"path to database file" placeholder:"FILE"`
		JSON   bool   `arg:"--json" help:"print the header as JSON"`
		Strict bool   `arg:"--strict" help:"fail on an invalid page size, schema format or text encoding"`
	}
	ViewCmd struct {
		File string `arg:"--file,required,env:SQLITE_HEADER_FILE" help:"path to database file" placeholder:"FILE"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to decode and validate the 100-byte header",
			"at the start of an SQLite 3 database file.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func StartInspecting(cmd InspectCmd, stdout io.Writer, stderr io.Writer) error {
	header, err := dbfile.DecodeFile(cmd.File, cmd.Strict)
	if err != nil {
		return err
	}
	if !cmd.Strict {
		for _, anomaly := range dbheader.Check(*header) {
			fmt.Fprintf(stderr, "warning: %v\n", anomaly)
		}
	}
	if cmd.JSON {
		return WriteJSON(stdout, *header)
	}
	return WriteText(stdout, *header)
}

func StartViewing(cmd ViewCmd) error {
	header, err := dbfile.DecodeFile(cmd.File, false)
	if err != nil {
		return err
	}
	return ui.Start(cmd.File, *header)
}

// Run executes the selected subcommand.
func Run(args Args, stdout io.Writer, stderr io.Writer) error {
	switch {
	case args.Inspect != nil:
		return StartInspecting(*args.Inspect, stdout, stderr)
	case args.View != nil:
		return StartViewing(*args.View)
	default:
		return ErrMissingSubcommand
	}
}

func Start() {
	log.SetFlags(0)
	args := Args{}
	parser := arg.MustParse(&args)

	err := Run(args, os.Stdout, os.Stderr)
	if errors.Is(err, ErrMissingSubcommand) {
		// prints usage and exits non-zero
		parser.Fail(err.Error())
	}
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
