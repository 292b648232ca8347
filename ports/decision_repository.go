package ports

import (
	"context"

	"gomandate/domain/core"
	"gomandate/models"
)

// DecisionRepository persists finished decision records for audit and
// retrieval. Mandates and proposals are owned upstream and never stored here.
type DecisionRepository interface {
	Save(ctx context.Context, record *models.DecisionRecord) error
	Get(ctx context.Context, id core.DecisionID) (*models.DecisionRecord, error)
}
