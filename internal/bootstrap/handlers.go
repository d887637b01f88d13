package bootstrap

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/anniversaries"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/compensation"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/donations"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/mediator"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/prompts"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/properties"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/recipes"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/skills"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/sleep"
	"github.com/GoSim-25-26J-441/trackers-backend/internal/travel"
)

// NewMediator wires every tracker's command and query handlers to its Postgres store.
// rec may be nil.
func NewMediator(db *sql.DB, logger *slog.Logger, rec mediator.Recorder) *mediator.Mediator {
	behaviors := []mediator.Behavior{mediator.Logging(logger)}
	if rec != nil {
		behaviors = append(behaviors, mediator.Metrics(rec))
	}
	m := mediator.New(behaviors...)

	now := time.Now
	recipes.RegisterHandlers(m, recipes.NewRepo(db))
	anniversaries.RegisterHandlers(m, anniversaries.NewRepo(db), now)
	donations.RegisterHandlers(m, donations.NewRepo(db), now)
	sleep.RegisterHandlers(m, sleep.NewRepo(db))
	travel.RegisterHandlers(m, travel.NewRepo(db), now)
	prompts.RegisterHandlers(m, prompts.NewRepo(db))
	properties.RegisterHandlers(m, properties.NewRepo(db))
	skills.RegisterHandlers(m, skills.NewRepo(db), now)
	compensation.RegisterHandlers(m, compensation.NewRepo(db))
	return m
}
