package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
	"github.com/Sandrinhosilv/back-marceneiro/internal/usecase/interfaces"
)

const defaultTimeout = 10 * time.Second

// AppsScriptClient posts leads to the Google Apps Script endpoint backing
// the spreadsheet. The script upserts rows keyed by email, so repeated
// submissions for the same contact are safe.

type AppsScriptClient struct {
	url        string
	httpClient *http.Client
}

var _ interfaces.ILeadSink = (*AppsScriptClient)(nil)

func NewAppsScriptClient(url string) *AppsScriptClient {
	return &AppsScriptClient{
		url:        url,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// appsScriptResult is the envelope the script answers with.
type appsScriptResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *AppsScriptClient) SaveLead(ctx context.Context, lead entities.Lead) error {
	if c.url == "" {
		log.Printf("[lead][sheets] APPS_SCRIPT_URL not configured, lead not saved email=%s", lead.Email)
		return nil
	}

	payload := map[string]any{
		"email":    lead.Email,
		"whatsapp": lead.Whatsapp,
	}
	if lead.Plan != "" {
		payload["plan"] = lead.Plan
	}
	if lead.Amount > 0 {
		payload["amount"] = lead.Amount
	}
	for k, v := range lead.Attribution {
		payload[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
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
		return fmt.Errorf("apps script returned status %d", resp.StatusCode)
	}

	var result appsScriptResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err == nil && !result.Success && result.Error != "" {
		return fmt.Errorf("apps script error: %s", result.Error)
	}

	log.Printf("[lead][sheets] lead saved email=%s", lead.Email)
	return nil
}
