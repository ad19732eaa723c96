package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	igio "github.com/mygrep/mygrep/internal/io"
	"github.com/mygrep/mygrep/internal/matcher"
)

// stdinSource scans standard input. It only reports match status; grep's
// stdin form is used for its exit code.
type stdinSource struct {
	in  io.Reader
	m   matcher.Matcher
	log zerolog.Logger
}

func (s *stdinSource) Scan(ctx context.Context) (bool, error) {
	sc := igio.Lines(s.in)
	for sc.Scan() {
		if s.m.Match(sc.Bytes()) {
			return true, nil
		}
	}
	if err := sc.Err(); err != nil {
		s.log.Error().Err(err).Msg("reading standard input")
		return false, errScanIssues
	}
	return false, nil
}

// fileSource scans one named file and prints its matching lines,
// prefixed with the file name when more than one file was named.
type fileSource struct {
	path     string
	showName bool
	m        matcher.Matcher
	out      io.Writer
	log      zerolog.Logger
}

func (s *fileSource) Scan(ctx context.Context) (bool, error) {
	return scanFile(s.path, s.showName, s.m, s.out, s.log)
}

// walkSource scans every regular file under root, prefixing each printed
// line with the file's path. Unreadable entries are logged and skipped;
// the walk keeps going.
type walkSource struct {
	root    string
	include string
	m       matcher.Matcher
	out     io.Writer
	log     zerolog.Logger
}

func (s *walkSource) Scan(ctx context.Context) (bool, error) {
	matched := false
	var issues bool
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Error().Err(err).Str("path", path).Msg("cannot walk")
			issues = true
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if s.include != "" {
			ok, _ := doublestar.Match(s.include, d.Name())
			if !ok {
				return nil
			}
		}
		fileMatched, scanErr := scanFile(path, true, s.m, s.out, s.log)
		if scanErr != nil {
			issues = true
		}
		if fileMatched {
			matched = true
		}
		return nil
	})
	if err != nil {
		return matched, err
	}
	if issues {
		return matched, errScanIssues
	}
	return matched, nil
}

func scanFile(path string, showName bool, m matcher.Matcher, out io.Writer, log zerolog.Logger) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("cannot open")
		return false, errScanIssues
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		log.Error().Str("path", path).Msg("is a directory (use -r)")
		return false, errScanIssues
	}

	matched := false
	sc := igio.Lines(f)
	for sc.Scan() {
		if !m.Match(sc.Bytes()) {
			continue
		}
		matched = true
		if showName {
			fmt.Fprintf(out, "%s:%s\n", path, sc.Text())
		} else {
			fmt.Fprintf(out, "%s\n", sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		log.Error().Err(err).Str("path", path).Msg("reading file")
		return matched, errScanIssues
	}
	return matched, nil
}
