// Package container wires application dependencies.
package container

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gomandate/adapters/llm"
	"gomandate/adapters/postgres"
	"gomandate/app"
	"gomandate/internal"
	"gomandate/internal/config"
	"gomandate/internal/errors"
	"gomandate/internal/usage"
	"gomandate/ports"
)

// Container holds the wired application graph
type Container struct {
	Config    *config.Config
	Logger    *internal.Logger
	DB        *sqlx.DB // nil when persistence is disabled
	Risk      ports.RiskDiscoveryPort
	Evaluator *app.EvaluationService
	Decisions ports.DecisionRepository // nil when persistence is disabled
	Tracker   *usage.Tracker
}

// New builds the application graph from configuration. With no DATABASE_URL
// the container runs storage-free; with no OPENAI_API_KEY risk discovery
// uses the deterministic generator.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{
		Config:  cfg,
		Logger:  internal.DefaultLogger,
		Tracker: usage.NewTracker(),
	}

	c.Risk = llm.NewRiskAdapter(llm.Config{
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		Timeout:     cfg.AI.Timeout,
	})
	c.Evaluator = app.NewEvaluationService(c.Risk)

	if cfg.Database.URL != "" {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.URL)
		if err != nil {
			return nil, errors.Wrap(err, "failed to connect to database")
		}
		repo := postgres.NewDecisionRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		c.DB = db
		c.Decisions = repo
	} else {
		c.Logger.Warn("[Container] DATABASE_URL not set; decisions will not be persisted")
	}

	if cfg.AI.APIKey == "" {
		c.Logger.Warn("[Container] OPENAI_API_KEY not set; using deterministic risk generator")
	}

	return c, nil
}

// Close releases container resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
