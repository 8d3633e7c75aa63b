package domain

import "github.com/google/uuid"

// Client is an account holder registered with a bank. It is an inert
// identity record: the core only ever reads its id.
type Client struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
}

// NewClient mints a client with a fresh unique id.
func NewClient(name string) *Client {
	return &Client{
		ClientID: uuid.NewString(),
		Name:     name,
	}
}
