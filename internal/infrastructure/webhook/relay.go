package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase/interfaces"
)

const requestTimeout = 10 * time.Second

// Relay forwards checkout events to an external webhook URL. An empty URL
// disables the relay without error; the integration is optional.

type Relay struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.IWebhookRelay = (*Relay)(nil)

func NewRelay(url string) *Relay {
	return &Relay{
		url:        url,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (r *Relay) Notify(ctx context.Context, event string, payload map[string]any) error {
	if r.url == "" {
		return nil
	}

	body := map[string]any{"event": event}
	for k, v := range payload {
		body[k] = v
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	log.Printf("[webhook][relay] event forwarded event=%s", event)
	return nil
}
