package app

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/utakatalp/league-ranking/internal/config"
	"github.com/utakatalp/league-ranking/internal/league"
	"github.com/utakatalp/league-ranking/internal/store"
)

const maxLineSize = 1024 * 1024

// ReadInput returns every line of the file at path, or of stdin when path
// is empty or "-". The file is closed before ReadInput returns.
func ReadInput(path string, stdin io.Reader) ([]string, error) {
	if path == "" || path == "-" {
		lines, err := ReadLines(stdin)
		return lines, errors.Wrap(err, "read stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open results file")
	}
	defer f.Close()

	lines, err := ReadLines(f)
	return lines, errors.Wrapf(err, "read %s", path)
}

// ReadLines reads r to the end and splits it into lines, dropping any
// trailing carriage return.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Run computes the standings for lines and writes the report to out.
// A malformed line, blank lines included, aborts the run before anything
// is written.
func Run(logger *slog.Logger, lines []string, out io.Writer, format string) error {
	render, err := renderer(format)
	if err != nil {
		return err
	}

	s := store.New()
	for i, line := range lines {
		r, err := league.ParseResult(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", i+1)
		}
		logger.Debug("parsed result", slog.Int("line", i+1), slog.String("result", r.ScoreLine()))

		s.UpdateTeams(r)
	}

	table := league.SortTable(s.GetTable())
	logger.Debug("standings computed",
		slog.Int("lines", len(lines)),
		slog.Int("teams", len(table)),
		slog.Any("names", s.GetTeams()),
	)

	if len(table) == 0 {
		return nil
	}
	if _, err := io.WriteString(out, render(table)+"\n"); err != nil {
		return errors.Wrap(err, "write standings")
	}
	return nil
}

func renderer(format string) (func([]league.TableEntry) string, error) {
	switch format {
	case "", config.FormatText:
		return league.FormatStandings, nil
	case config.FormatTable:
		return league.FormatTable, nil
	default:
		return nil, errors.Errorf("unknown output format %q", format)
	}
}
