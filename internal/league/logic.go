package league

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Outcome returns the points each side earns from r.
func (r Result) Outcome() (homePts, awayPts int) {
	switch {
	case r.HomeGoals > r.AwayGoals:
		return WinPoints, LossPoints
	case r.HomeGoals < r.AwayGoals:
		return LossPoints, WinPoints
	default:
		return DrawPoints, DrawPoints
	}
}

func (r Result) ScoreLine() string {
	return fmt.Sprintf("%s %d, %s %d", r.HomeTeam, r.HomeGoals, r.AwayTeam, r.AwayGoals)
}

// SortTable returns a copy of entries ordered by points, highest first.
// Teams on equal points are ordered by name.
func SortTable(entries []TableEntry) []TableEntry {
	sorted := make([]TableEntry, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.Team < b.Team
	})

	return sorted
}

// Ranks assigns competition ranks to an already sorted table: teams level
// on points share a rank, and the next team ranks by its position (1, 2, 2, 4).
func Ranks(table []TableEntry) []int {
	ranks := make([]int, len(table))
	for i, e := range table {
		if i > 0 && e.Points == table[i-1].Points {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = i + 1
	}
	return ranks
}

// FormatStandings renders one "1. Tarantulas, 6 pts" line per team.
// There is no trailing newline.
func FormatStandings(table []TableEntry) string {
	ranks := Ranks(table)
	lines := make([]string, len(table))
	for i, e := range table {
		lines[i] = fmt.Sprintf("%d. %s, %d %s", ranks[i], e.Team, e.Points, pointsUnit(e.Points))
	}
	return strings.Join(lines, "\n")
}

// FormatTable renders the table with played/won/drawn/lost columns.
func FormatTable(table []TableEntry) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "#\tTeam\tP\tW\tD\tL\tPts\t")
	ranks := Ranks(table)
	for i, e := range table {
		fmt.Fprintf(w, "\n%d\t%s\t%d\t%d\t%d\t%d\t%d\t",
			ranks[i],
			e.Team,
			e.Played,
			e.Wins,
			e.Draws,
			e.Losses,
			e.Points,
		)
	}
	w.Flush()

	// The last column is padded like the others.
	lines := strings.Split(b.String(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

func pointsUnit(points int) string {
	if points == 1 {
		return "pt"
	}
	return "pts"
}
