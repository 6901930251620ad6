package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockClientRepository implements ClientRepository for testing
type MockClientRepository struct {
	clients []*Client
	nextID  int64
	err     error
}

func (m *MockClientRepository) Create(ctx context.Context, client *Client) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	client.ID = m.nextID
	m.clients = append(m.clients, client)
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*Client, error) {
	for _, c := range m.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, m.err
}

func (m *MockClientRepository) List(ctx context.Context) ([]*Client, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.clients, nil
}

func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.clients)), nil
}

func TestCreate_PersistsTrimmedFields(t *testing.T) {
	mock := &MockClientRepository{}
	svc := NewService(mock)

	client, err := svc.Create(context.Background(), CreateInput{
		Name:  " Sarah Smith ",
		Email: " sarah@example.com",
		Phone: "555-9999 ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Sarah Smith", client.Name)
	assert.Equal(t, "sarah@example.com", client.Email)
	assert.Equal(t, "555-9999", client.Phone)
	assert.Equal(t, int64(1), client.ID)
}

func TestCreate_RequiresNameAndEmail(t *testing.T) {
	svc := NewService(&MockClientRepository{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "John Doe"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(context.Background(), CreateInput{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(context.Background(), CreateInput{Name: "  ", Email: "x@y.com"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestFindByName_CaseInsensitiveEquality(t *testing.T) {
	mock := &MockClientRepository{clients: []*Client{
		{ID: 1, Name: "Acme Corporation", Email: "contact@acme.com"},
		{ID: 2, Name: "Tech Solutions Inc", Email: "info@techsolutions.com"},
	}}
	svc := NewService(mock)

	match, suggestions, err := svc.FindByName(context.Background(), "acme corporation")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, int64(1), match.ID)
	assert.Empty(t, suggestions)
}

func TestFindByName_SuggestsOnMiss(t *testing.T) {
	mock := &MockClientRepository{clients: []*Client{
		{ID: 1, Name: "Tech Solutions Inc", Email: "info@techsolutions.com"},
		{ID: 2, Name: "Healthcare Plus", Email: "info@healthcareplus.com"},
	}}
	svc := NewService(mock)

	match, suggestions, err := svc.FindByName(context.Background(), "Tech Solutions")
	require.NoError(t, err)
	assert.Nil(t, match)
	assert.Contains(t, suggestions, "Tech Solutions Inc")
}
