package model

// Team is a named side of the match.
type Team struct {
	Name  string
	Color string
}

// TeamRef is either "any team" or one specific team.
// The zero value is AnyTeam.
type TeamRef struct {
	team Team
	set  bool
}

// AnyTeam returns the variant that admits every participant.
func AnyTeam() TeamRef {
	return TeamRef{}
}

// TeamOf returns the variant bound to team t.
func TeamOf(t Team) TeamRef {
	return TeamRef{team: t, set: true}
}

// Get returns the bound team, or false for AnyTeam.
func (r TeamRef) Get() (Team, bool) {
	return r.team, r.set
}

// IsAny reports whether r is the AnyTeam variant.
func (r TeamRef) IsAny() bool {
	return !r.set
}

// Is reports whether both refs name the same team.
// Two AnyTeam refs are not considered the same team.
func (r TeamRef) Is(other TeamRef) bool {
	return r.set && other.set && r.team.Name == other.team.Name
}

func (r TeamRef) String() string {
	if !r.set {
		return "any"
	}
	return r.team.Name
}
