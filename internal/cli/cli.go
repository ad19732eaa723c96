// Package cli wires the regex engine into a grep-style command: pattern
// and flag handling, input selection (stdin, files, recursive walk), and
// match printing.
package cli

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mygrep/mygrep/internal/matcher"
	"github.com/mygrep/mygrep/internal/scan"
)

// ErrNoMatch is returned when every input was scanned cleanly and no
// line matched. The caller maps it to exit status 1.
var ErrNoMatch = errors.New("no lines matched")

// errScanIssues means at least one input could not be read. The specific
// failures have already been logged; the caller maps this to exit
// status 2.
var errScanIssues = errors.New("some inputs could not be read")

type options struct {
	extended  bool
	recursive bool
	include   string
}

// New builds the root command. Errors and usage are silenced so the
// caller controls what reaches stderr and which exit code is used.
func New() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "mygrep -E <pattern> [path ...]",
		Short:         "print lines matching a pattern",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVarP(&opts.extended, "extended-regexp", "E", false, "interpret the pattern as an extended regular expression")
	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "scan directories recursively")
	cmd.Flags().StringVar(&opts.include, "include", "", "in recursive mode, only scan files whose base name matches this glob")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if !opts.extended {
		return errors.New("only extended patterns are supported: pass -E")
	}
	if opts.include != "" {
		if !opts.recursive {
			return errors.New("--include requires -r")
		}
		if !doublestar.ValidatePattern(opts.include) {
			return fmt.Errorf("invalid --include glob %q", opts.include)
		}
	}

	pattern := args[0]
	paths := args[1:]
	if opts.recursive && len(paths) == 0 {
		return errors.New("-r requires at least one directory")
	}

	m, err := matcher.New(pattern)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true})
	out := cmd.OutOrStdout()

	runner := scan.NewRunner()
	switch {
	case opts.recursive:
		for _, root := range paths {
			runner.Add(&walkSource{
				root:    root,
				include: opts.include,
				m:       m,
				out:     out,
				log:     logger,
			})
		}
	case len(paths) > 0:
		showName := len(paths) > 1
		for _, path := range paths {
			runner.Add(&fileSource{
				path:     path,
				showName: showName,
				m:        m,
				out:      out,
				log:      logger,
			})
		}
	default:
		runner.Add(&stdinSource{in: cmd.InOrStdin(), m: m, log: logger})
	}

	matched, err := runner.Run(cmd.Context())
	if err != nil {
		if errors.Is(err, errScanIssues) {
			return errScanIssues
		}
		return err
	}
	if !matched {
		return ErrNoMatch
	}
	return nil
}
