package core

// Client is one live connection as seen by the core layer. Events is drained
// by the transport's write loop; the hub only ever does non-blocking sends on
// it, so a stalled peer loses events instead of stalling its room.
type Client struct {
	ID     string
	Events chan *Event
}

// NewClient constructs a client with an initialized event channel.
func NewClient(id string) *Client {
	return &Client{
		ID:     id,
		Events: make(chan *Event, 32),
	}
}
