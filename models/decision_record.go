// Package models holds database row shapes.
package models

import (
	"encoding/json"
	"time"
)

// DecisionRecord is the persisted form of one evaluation: the decision object
// and model trace serialized verbatim, plus the columns queries filter on.
type DecisionRecord struct {
	ID             string          `db:"id" json:"id"`
	ProposalTitle  string          `db:"proposal_title" json:"proposal_title"`
	MandateKind    string          `db:"mandate_kind" json:"mandate_kind"`
	Recommendation string          `db:"recommendation" json:"recommendation"`
	HumanRequired  bool            `db:"human_required" json:"human_required"`
	Confidence     float64         `db:"confidence" json:"confidence"`
	TradeoffScore  float64         `db:"tradeoff_score" json:"tradeoff_score"`
	Decision       json.RawMessage `db:"decision" json:"decision"`
	Trace          json.RawMessage `db:"trace" json:"trace"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}
