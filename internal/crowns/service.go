package crowns

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/smarty/internal/store"
)

// Service books crowns on the persisted ledgers.
type Service struct {
	repo store.ProgressRepo
	log  zerolog.Logger

	// SessionCrowns accumulates awards made during the current session.
	SessionCrowns []Award
}

// NewService creates a Service. A nil repo keeps awards in memory only.
func NewService(repo store.ProgressRepo, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Award books n crowns for app. Persistence failures are logged and
// returned so callers can surface them; the award itself still counts.
func (s *Service) Award(ctx context.Context, app App, n int, sessionID, reason string) (*Award, error) {
	award := &Award{
		App:       app,
		Ledger:    app.Ledger(),
		Count:     n,
		SessionID: sessionID,
		Reason:    reason,
		AwardedAt: time.Now(),
	}
	s.SessionCrowns = append(s.SessionCrowns, *award)

	if s.repo == nil || n <= 0 {
		return award, nil
	}
	total, err := s.repo.AddCrowns(ctx, string(award.Ledger), n)
	if err != nil {
		s.log.Warn().Err(err).
			Str("ledger", string(award.Ledger)).
			Int("crowns", n).
			Msg("could not save crowns")
		return award, err
	}
	award.Total = total
	s.SessionCrowns[len(s.SessionCrowns)-1].Total = total
	s.log.Info().
		Str("app", string(app)).
		Str("ledger", string(award.Ledger)).
		Int("crowns", n).
		Int("total", total).
		Msg("crowns awarded")
	return award, nil
}

// SessionTotal returns the crowns awarded since the last ResetSession.
func (s *Service) SessionTotal() int {
	n := 0
	for _, a := range s.SessionCrowns {
		n += a.Count
	}
	return n
}

// ResetSession clears the session accumulator. Called at session start.
func (s *Service) ResetSession() {
	s.SessionCrowns = nil
}

// Totals returns the persisted count of every ledger. Ledgers that
// could not be read are reported as 0.
func (s *Service) Totals(ctx context.Context) map[Ledger]int {
	out := make(map[Ledger]int, len(AllLedgers()))
	for _, l := range AllLedgers() {
		out[l] = 0
	}
	if s.repo == nil {
		return out
	}
	for _, l := range AllLedgers() {
		n, err := s.repo.CrownCount(ctx, string(l))
		if err != nil {
			s.log.Warn().Err(err).Str("ledger", string(l)).Msg("could not read crowns")
			continue
		}
		out[l] = n
	}
	return out
}
