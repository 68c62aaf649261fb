package interfaces

import (
	"context"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
)

// ILeadSink forwards captured leads to the spreadsheet backend.

type ILeadSink interface {
	SaveLead(ctx context.Context, lead entities.Lead) error
}

// IConversionReporter sends server-side conversion events to the ad platform.
// Implementations must never panic; failures are logged by the caller and
// never reach the payment flow.

type IConversionReporter interface {
	Report(ctx context.Context, event entities.ConversionEvent) error
}

// IWebhookRelay forwards the lead/charge payload to an external URL.

type IWebhookRelay interface {
	Notify(ctx context.Context, event string, payload map[string]any) error
}
