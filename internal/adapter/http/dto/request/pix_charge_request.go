package request

import (
	"encoding/json"
	"strconv"
)

// PixChargeRequest is the checkout payload sent by the frontend. Besides the
// typed fields, the body carries an open set of attribution fields (utm_*,
// fbclid, ...) the extractor scans later, so parsing keeps every scalar
// field around as a string.

type PixChargeRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Email       string  `json:"email"`
	Whatsapp    string  `json:"whatsapp"`

	fields map[string]string
}

// ParsePixChargeRequest decodes the raw body into the typed request plus the
// flattened field map.
func ParsePixChargeRequest(raw []byte) (PixChargeRequest, error) {
	var req PixChargeRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return PixChargeRequest{}, err
	}

	var open map[string]any
	if err := json.Unmarshal(raw, &open); err != nil {
		return PixChargeRequest{}, err
	}

	req.fields = make(map[string]string, len(open))
	for key, value := range open {
		switch v := value.(type) {
		case string:
			req.fields[key] = v
		case float64:
			req.fields[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			req.fields[key] = strconv.FormatBool(v)
		}
	}
	return req, nil
}

// Fields returns every scalar request field as a string, keyed by its JSON
// name. Nested objects and arrays are dropped; attribution values are flat.
func (r PixChargeRequest) Fields() map[string]string {
	return r.fields
}
