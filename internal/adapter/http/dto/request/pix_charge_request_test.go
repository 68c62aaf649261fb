package request

import "testing"

func TestParsePixChargeRequest(t *testing.T) {
	raw := []byte(`{
		"amount": 100,
		"description": "Plano Starter",
		"email": "a@b.com",
		"whatsapp": "11999999999",
		"utm_campaign": "Oferta|111",
		"fbclid": "clk",
		"consent": true,
		"nested": {"ignored": "yes"},
		"tags": ["ignored"]
	}`)

	req, err := ParsePixChargeRequest(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.Amount != 100 || req.Description != "Plano Starter" || req.Email != "a@b.com" || req.Whatsapp != "11999999999" {
		t.Fatalf("typed fields not decoded: %+v", req)
	}

	fields := req.Fields()
	if fields["utm_campaign"] != "Oferta|111" || fields["fbclid"] != "clk" {
		t.Fatalf("attribution fields not flattened: %+v", fields)
	}
	if fields["amount"] != "100" {
		t.Fatalf("numeric field not stringified: %q", fields["amount"])
	}
	if fields["consent"] != "true" {
		t.Fatalf("boolean field not stringified: %q", fields["consent"])
	}
	if _, ok := fields["nested"]; ok {
		t.Fatal("nested objects must be dropped")
	}
	if _, ok := fields["tags"]; ok {
		t.Fatal("arrays must be dropped")
	}
}

func TestParsePixChargeRequest_InvalidJSON(t *testing.T) {
	if _, err := ParsePixChargeRequest([]byte("{")); err == nil {
		t.Fatal("expected an error for malformed json")
	}
}
