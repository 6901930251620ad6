// Package clients provides client records and lookup.
package clients

import (
	"context"
	"time"
)

// Client represents a billable client
type Client struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   *string
	CreatedAt time.Time
}

// ClientRepository defines the interface for client persistence operations
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	Count(ctx context.Context) (int64, error)
}
