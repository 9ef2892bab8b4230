package arena

import (
	"github.com/udisondev/arenago/internal/config"
	"github.com/udisondev/arenago/internal/model"
)

// Teams is the set of teams playing in a session.
type Teams struct {
	byName map[string]model.Team
	order  []string
}

// NewTeams creates a registry holding the given teams.
func NewTeams(teams ...model.Team) *Teams {
	t := &Teams{byName: make(map[string]model.Team, len(teams))}
	for _, team := range teams {
		t.Add(team)
	}
	return t
}

// TeamsFromConfig builds the registry from config entries.
func TeamsFromConfig(entries []config.TeamConfig) *Teams {
	t := NewTeams()
	for _, e := range entries {
		t.Add(model.Team{Name: e.Name, Color: e.Color})
	}
	return t
}

// Add registers a team, replacing one with the same name.
func (t *Teams) Add(team model.Team) {
	if _, ok := t.byName[team.Name]; !ok {
		t.order = append(t.order, team.Name)
	}
	t.byName[team.Name] = team
}

// Get returns the team registered under name.
func (t *Teams) Get(name string) (model.Team, bool) {
	team, ok := t.byName[name]
	return team, ok
}

// Resolve maps a template team name to a ref. Empty or unknown names
// resolve to AnyTeam.
func (t *Teams) Resolve(name string) model.TeamRef {
	team, ok := t.byName[name]
	if !ok {
		return model.AnyTeam()
	}
	return model.TeamOf(team)
}

// All returns teams in registration order.
func (t *Teams) All() []model.Team {
	out := make([]model.Team, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.byName[name])
	}
	return out
}
