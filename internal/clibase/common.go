// internal/clibase/common.go
package clibase

import (
	"flag"

	"maskprep/internal/cliutil"
)

// Common holds CLI fields shared by every maskprep tool.
type Common struct {
	// Input is the primary input file ("-" for stdin). Each tool names its
	// own flag for it; a single positional argument may stand in.
	Input string

	// Output
	Out string // "-" or empty for stdout

	// Misc
	Quiet    bool
	Verbose  bool
	Version  bool
	Examples bool
}

// Register wires the shared output and miscellaneous flags onto fs. The
// input flag is registered under inputFlag so tools keep their own names
// (--genome, --library, --trf).
func Register(fs *flag.FlagSet, c *Common, inputFlag, inputUsage string) {
	fs.StringVar(&c.Input, inputFlag, "", inputUsage)

	fs.StringVar(&c.Out, "out", "-", "output file ('-' = stdout)")
	fs.StringVar(&c.Out, "o", "-", "alias of --out")

	fs.BoolVar(&c.Quiet, "quiet", false, "only report errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "report progress details [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit [false]")
}

// AfterParse folds positionals into Input. inputFlag names the flag in
// error messages.
func AfterParse(c *Common, inputFlag string, posArgs []string) error {
	p, err := cliutil.OnePath(c.Input, posArgs, inputFlag)
	if err != nil {
		return err
	}
	c.Input = p
	return nil
}
