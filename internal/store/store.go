package store

import (
	"sort"

	"github.com/utakatalp/league-ranking/internal/league"
)

// Store holds the standings of a single run, keyed by team name.
type Store struct {
	teams map[string]*league.TableEntry
}

func New() *Store {
	return &Store{teams: make(map[string]*league.TableEntry)}
}

// team returns the entry for name, adding it with zero points on first mention.
func (s *Store) team(name string) *league.TableEntry {
	e, ok := s.teams[name]
	if !ok {
		e = &league.TableEntry{Team: name}
		s.teams[name] = e
	}
	return e
}

// UpdateTeams applies one result to both teams. Both teams are registered
// before scoring so a side that loses every match still shows up in the table.
func (s *Store) UpdateTeams(r league.Result) {
	home := s.team(r.HomeTeam)
	away := s.team(r.AwayTeam)

	homePts, awayPts := r.Outcome()

	home.Played++
	away.Played++
	home.Points += homePts
	away.Points += awayPts

	switch {
	case homePts > awayPts:
		home.Wins++
		away.Losses++
	case homePts < awayPts:
		away.Wins++
		home.Losses++
	default:
		home.Draws++
		away.Draws++
	}
}

// GetTeams returns every team seen so far, ordered by name.
func (s *Store) GetTeams() []string {
	names := make([]string, 0, len(s.teams))
	for name := range s.teams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTable returns a snapshot of the standings in no particular order.
func (s *Store) GetTable() []league.TableEntry {
	table := make([]league.TableEntry, 0, len(s.teams))
	for _, e := range s.teams {
		table = append(table, *e)
	}
	return table
}
