package teams

import "github.com/preston-bernstein/fpl-data-explorer/internal/domain/teams"

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id int) (teams.Team, bool)
	SetTeams([]teams.Team)
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the current set of teams.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id int) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// Names maps team id to display name, for resolving opponents.
func (s *Service) Names() map[int]string {
	items := s.store.ListTeams()
	out := make(map[int]string, len(items))
	for _, t := range items {
		out[t.ID] = t.Name
	}
	return out
}

// ReplaceTeams swaps the in-memory teams with a new snapshot.
func (s *Service) ReplaceTeams(items []teams.Team) {
	s.store.SetTeams(items)
}
