package entities

// Lead is the contact captured at checkout, forwarded to the spreadsheet
// backend keyed by email (create-or-update on the Apps Script side).

type Lead struct {
	Email       string            `json:"email"`
	Whatsapp    string            `json:"whatsapp"`
	Plan        string            `json:"plan,omitempty"`
	Amount      float64           `json:"amount,omitempty"`
	Attribution map[string]string `json:"attribution,omitempty"`
}
