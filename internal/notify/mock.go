package notify

import (
	"context"
	"sync"
)

type SentMessage struct {
	To        string
	Body      string
	MediaURLs []string
}

type Mock struct {
	mu   sync.Mutex
	Sent []SentMessage
	Err  error
}

func (m *Mock) Send(ctx context.Context, to, body string, mediaURLs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMessage{To: to, Body: body, MediaURLs: mediaURLs})
	return m.Err
}

func (m *Mock) Messages() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.Sent))
	copy(out, m.Sent)
	return out
}
