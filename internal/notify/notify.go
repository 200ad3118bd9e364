package notify

import "context"

// Dispatcher sends a chat message to a destination address, optionally with
// media attachments (at most one is used by this service).
type Dispatcher interface {
	Send(ctx context.Context, to, body string, mediaURLs []string) error
}
