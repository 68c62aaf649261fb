package conversions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
)

func TestFacebookCAPIClient_Report(t *testing.T) {
	var gotPath string
	var gotQuery string
	var gotBody capiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"events_received":1}`))
	}))
	defer srv.Close()

	client := NewFacebookCAPIClient("pixel-1", "token-1", "v18.0").WithBaseURL(srv.URL)

	now := time.Unix(1700000000, 0)
	err := client.Report(context.Background(), entities.ConversionEvent{
		Name:     entities.ConversionEventPurchase,
		EventID:  "evt-1",
		Time:     now,
		Email:    "a@b.com",
		Phone:    "(11) 99999-9999",
		Value:    100,
		Currency: "BRL",
		Attribution: map[string]string{
			"campaign_name": "Oferta",
			"campaign_id":   "111",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/v18.0/pixel-1/events" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuery != "access_token=token-1" {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if len(gotBody.Data) != 1 {
		t.Fatalf("expected 1 event, got %d", len(gotBody.Data))
	}

	event := gotBody.Data[0]
	if event.EventName != "Purchase" || event.EventTime != now.Unix() || event.EventID != "evt-1" {
		t.Fatalf("unexpected event envelope: %+v", event)
	}
	if len(event.UserData.Em) != 1 || event.UserData.Em[0] != HashEmail("a@b.com") {
		t.Fatalf("email not hashed: %+v", event.UserData)
	}
	if len(event.UserData.Ph) != 1 || event.UserData.Ph[0] != HashPhone("11999999999") {
		t.Fatalf("phone not hashed/normalized: %+v", event.UserData)
	}
	if event.CustomData["currency"] != "BRL" || event.CustomData["value"] != "100.00" {
		t.Fatalf("unexpected custom data: %+v", event.CustomData)
	}
	if event.CustomData["campaign_id"] != "111" {
		t.Fatalf("attribution missing from custom data: %+v", event.CustomData)
	}
}

func TestFacebookCAPIClient_Report_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"bad token"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewFacebookCAPIClient("pixel-1", "token-1", "").WithBaseURL(srv.URL)
	err := client.Report(context.Background(), entities.ConversionEvent{Name: entities.ConversionEventLead, Time: time.Now()})
	if err == nil {
		t.Fatal("expected an error for non-2xx response")
	}
}

func TestFacebookCAPIClient_Report_UnconfiguredIsNoop(t *testing.T) {
	client := NewFacebookCAPIClient("", "", "")
	if err := client.Report(context.Background(), entities.ConversionEvent{Name: entities.ConversionEventLead}); err != nil {
		t.Fatalf("unconfigured pixel must be a silent no-op: %v", err)
	}
}
