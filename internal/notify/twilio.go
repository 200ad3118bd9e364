package notify

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Twilio struct {
	client *twilio.RestClient
	from   string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string // e.g. "whatsapp:+14155238886"
}

func NewTwilio(cfg TwilioConfig) *Twilio {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &Twilio{client: client, from: cfg.From}
}

func (t *Twilio) Send(ctx context.Context, to, body string, mediaURLs []string) error {
	_ = ctx // twilio-go does not thread a context through message creation

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(to)
	params.SetBody(body)
	if len(mediaURLs) > 0 {
		params.SetMediaUrl(mediaURLs)
	}

	_, err := t.client.Api.CreateMessage(params)
	return err
}
