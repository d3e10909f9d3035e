package league

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseError reports a result line that could not be split into two
// "name score" halves. Line is the input exactly as it was given.
type ParseError struct {
	Line   string
	Reason string
}

// Error prints the line unescaped so it can be matched against the input.
func (e *ParseError) Error() string {
	return "error parsing result: " + e.Line + " (" + e.Reason + ")"
}

// ParseResult parses a line of the form "Lions 3, Snakes 1".
// Everything before the first comma is the home half, everything after it
// the away half. The score is the last whitespace-separated token of a half.
func ParseResult(line string) (Result, error) {
	home, away, ok := strings.Cut(line, ",")
	if !ok {
		return Result{}, &ParseError{Line: line, Reason: "missing comma between teams"}
	}

	homeTeam, homeGoals, reason := parseSide(home)
	if reason != "" {
		return Result{}, &ParseError{Line: line, Reason: "home side: " + reason}
	}
	awayTeam, awayGoals, reason := parseSide(away)
	if reason != "" {
		return Result{}, &ParseError{Line: line, Reason: "away side: " + reason}
	}

	return Result{
		HomeTeam:  homeTeam,
		HomeGoals: homeGoals,
		AwayTeam:  awayTeam,
		AwayGoals: awayGoals,
	}, nil
}

// parseSide splits "FC Awesome 2" into ("FC Awesome", 2).
// A non-empty reason means the half is malformed.
func parseSide(s string) (team string, goals int, reason string) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return "", 0, fmt.Sprintf("%q has no team name and score", s)
	}

	team = strings.TrimSpace(s[:i])
	_, size := utf8.DecodeRuneInString(s[i:])
	score := s[i+size:]
	if team == "" {
		return "", 0, fmt.Sprintf("%q has no team name", s)
	}

	goals, ok := parseScore(score)
	if !ok {
		return "", 0, fmt.Sprintf("score %q is not a non-negative integer", score)
	}
	return team, goals, ""
}

// parseScore accepts plain decimal digits only, so "+1" and "-1" are rejected.
func parseScore(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
