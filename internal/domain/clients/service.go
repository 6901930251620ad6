package clients

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrMissingFields indicates a create call without the required name or email.
var ErrMissingFields = errors.New("client name and email are required")

// Service handles client business logic
type Service struct {
	repo ClientRepository
}

// NewService creates a new client service
func NewService(repo ClientRepository) *Service {
	return &Service{repo: repo}
}

// CreateInput holds the fields extracted for a new client.
type CreateInput struct {
	Name  string
	Email string
	Phone string
}

// Create persists a new client. Name and email are required; phone is
// optional. Values are stored trimmed, exactly as extracted.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Client, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, ErrMissingFields
	}

	client := &Client{
		Name:  name,
		Email: email,
		Phone: strings.TrimSpace(in.Phone),
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns all clients ordered by name.
func (s *Service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.List(ctx)
}

// Count returns the total number of clients.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// FindByName looks up a client by case-insensitive name equality. When no
// exact match exists, fuzzy-ranked suggestions are returned instead so the
// caller can surface "did you mean" hints. Invoices reference clients by
// free-text name, so a miss is not an error.
func (s *Service) FindByName(ctx context.Context, name string) (match *Client, suggestions []string, err error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	target := strings.ToLower(strings.TrimSpace(name))
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name
		if strings.ToLower(c.Name) == target {
			return c, nil, nil
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.Sort(ranks)
	for i, r := range ranks {
		if i == 3 {
			break
		}
		suggestions = append(suggestions, r.Target)
	}
	return nil, suggestions, nil
}
