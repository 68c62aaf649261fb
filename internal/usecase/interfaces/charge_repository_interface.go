package interfaces

import (
	"context"

	"github.com/Sandrinhosilv/back-marceneiro/internal/domain/entities"
)

// IChargeRepository abstracts DynamoDB persistence for ChargeRecord.
//
// The repository is the owner of the purchase-report flag: ClaimPurchaseReport
// must be implemented with a conditional write so that for any charge id,
// across any number of concurrent callers, exactly one caller observes
// claimed=true.

type IChargeRepository interface {
	Create(ctx context.Context, rec entities.ChargeRecord) (entities.ChargeRecord, error)
	GetByID(ctx context.Context, id string) (entities.ChargeRecord, error)
	ClaimPurchaseReport(ctx context.Context, id string) (claimed bool, err error)
}
