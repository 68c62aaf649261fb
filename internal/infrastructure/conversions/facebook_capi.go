package conversions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase/interfaces"
)

const (
	defaultGraphBaseURL = "https://graph.facebook.com"
	defaultAPIVersion   = "v18.0"
	requestTimeout      = 10 * time.Second
	actionSource        = "website"
)

// FacebookCAPIClient reports server-side conversion events to the Meta
// Conversions API. PII never leaves the process unhashed.

type FacebookCAPIClient struct {
	baseURL     string
	apiVersion  string
	pixelID     string
	accessToken string
	httpClient  *http.Client
}

var _ interfaces.IConversionReporter = (*FacebookCAPIClient)(nil)

func NewFacebookCAPIClient(pixelID, accessToken, apiVersion string) *FacebookCAPIClient {
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &FacebookCAPIClient{
		baseURL:     defaultGraphBaseURL,
		apiVersion:  apiVersion,
		pixelID:     pixelID,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

// WithBaseURL points the client at a different Graph API host. Tests use it
// to aim at an httptest server.
func (c *FacebookCAPIClient) WithBaseURL(url string) *FacebookCAPIClient {
	c.baseURL = url
	return c
}

type capiUserData struct {
	Em []string `json:"em,omitempty"`
	Ph []string `json:"ph,omitempty"`
}

type capiEvent struct {
	EventName  string            `json:"event_name"`
	EventTime  int64             `json:"event_time"`
	EventID    string            `json:"event_id,omitempty"`
	ActionSrc  string            `json:"action_source"`
	UserData   capiUserData      `json:"user_data"`
	CustomData map[string]string `json:"custom_data,omitempty"`
}

type capiRequest struct {
	Data []capiEvent `json:"data"`
}

func (c *FacebookCAPIClient) Report(ctx context.Context, event entities.ConversionEvent) error {
	if c.pixelID == "" || c.accessToken == "" {
		log.Printf("[conversion][capi] pixel not configured, event not sent event=%s", event.Name)
		return nil
	}

	custom := map[string]string{
		"currency": event.Currency,
		"value":    fmt.Sprintf("%.2f", event.Value),
	}
	for k, v := range event.Attribution {
		custom[k] = v
	}

	userData := capiUserData{}
	if h := HashEmail(event.Email); h != "" {
		userData.Em = []string{h}
	}
	if h := HashPhone(event.Phone); h != "" {
		userData.Ph = []string{h}
	}

	body, err := json.Marshal(capiRequest{
		Data: []capiEvent{{
			EventName:  string(event.Name),
			EventTime:  event.Time.Unix(),
			EventID:    event.EventID,
			ActionSrc:  actionSource,
			UserData:   userData,
			CustomData: custom,
		}},
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/%s/events?access_token=%s", c.baseURL, c.apiVersion, c.pixelID, c.accessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("conversions api returned status %d: %s", resp.StatusCode, detail)
	}

	log.Printf("[conversion][capi] event sent event=%s event_id=%s", event.Name, event.EventID)
	return nil
}
