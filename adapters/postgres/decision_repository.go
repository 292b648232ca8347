// Package postgres persists decision records.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"gomandate/domain/core"
	apperrors "gomandate/internal/errors"
	"gomandate/models"
	"gomandate/ports"
)

const decisionSchema = `
CREATE TABLE IF NOT EXISTS decisions (
	id             TEXT PRIMARY KEY,
	proposal_title TEXT NOT NULL,
	mandate_kind   TEXT NOT NULL,
	recommendation TEXT NOT NULL,
	human_required BOOLEAN NOT NULL,
	confidence     DOUBLE PRECISION NOT NULL,
	tradeoff_score DOUBLE PRECISION NOT NULL,
	decision       JSONB NOT NULL,
	trace          JSONB NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
)`

// DecisionRepositoryImpl implements DecisionRepository for PostgreSQL
type DecisionRepositoryImpl struct {
	db *sqlx.DB
}

var _ ports.DecisionRepository = (*DecisionRepositoryImpl)(nil)

// NewDecisionRepository creates a new PostgreSQL decision repository
func NewDecisionRepository(db *sqlx.DB) *DecisionRepositoryImpl {
	return &DecisionRepositoryImpl{db: db}
}

// EnsureSchema creates the decisions table if missing
func (r *DecisionRepositoryImpl) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, decisionSchema); err != nil {
		return apperrors.Wrap(err, "failed to ensure decisions schema")
	}
	return nil
}

// Save persists one decision record
func (r *DecisionRepositoryImpl) Save(ctx context.Context, record *models.DecisionRecord) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO decisions (
			id, proposal_title, mandate_kind, recommendation, human_required,
			confidence, tradeoff_score, decision, trace, created_at
		) VALUES (
			:id, :proposal_title, :mandate_kind, :recommendation, :human_required,
			:confidence, :tradeoff_score, :decision, :trace, :created_at
		)
	`, record)
	if err != nil {
		return apperrors.Wrap(err, "failed to save decision record")
	}
	return nil
}

// Get retrieves a decision record by ID
func (r *DecisionRepositoryImpl) Get(ctx context.Context, id core.DecisionID) (*models.DecisionRecord, error) {
	var record models.DecisionRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT id, proposal_title, mandate_kind, recommendation, human_required,
		       confidence, tradeoff_score, decision, trace, created_at
		FROM decisions
		WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("decision")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load decision record")
	}
	return &record, nil
}
