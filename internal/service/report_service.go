package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sharearahammed/mega-earning-server/internal/cache"
	"github.com/sharearahammed/mega-earning-server/internal/repository"
)

const (
	topEarnersLimit    = 6
	topEarnersCacheKey = "report:top_earners"
	topEarnersCacheTTL = 30 * time.Second
)

// TopEarner is one row of the public top-earner board.
type TopEarner struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	PhotoURL      string          `json:"photo_url,omitempty"`
	Coins         decimal.Decimal `json:"coins"`
	ApprovedCount int64           `json:"approved_count"`
}

// ReportService produces read-only aggregate views.
type ReportService interface {
	// TopEarners returns the highest-balance workers with their approved
	// submission counts, descending by coins. Fewer eligible workers than
	// the limit yields a shorter list; none yields an empty one.
	TopEarners(ctx context.Context) ([]TopEarner, error)
}

type reportService struct {
	userRepo       repository.UserRepository
	submissionRepo repository.SubmissionRepository
	cache          *cache.Client
}

// NewReportService creates a new report service.
func NewReportService(userRepo repository.UserRepository, submissionRepo repository.SubmissionRepository, cache *cache.Client) ReportService {
	return &reportService{
		userRepo:       userRepo,
		submissionRepo: submissionRepo,
		cache:          cache,
	}
}

func (s *reportService) TopEarners(ctx context.Context) ([]TopEarner, error) {
	var cached []TopEarner
	if s.cache.GetJSON(ctx, topEarnersCacheKey, &cached) {
		return cached, nil
	}

	workers, err := s.userRepo.TopWorkersByCoins(ctx, topEarnersLimit)
	if err != nil {
		return nil, err
	}

	emails := make([]string, len(workers))
	for i, w := range workers {
		emails[i] = w.Email
	}
	counts, err := s.submissionRepo.CountApprovedByWorkers(ctx, emails)
	if err != nil {
		return nil, err
	}

	earners := make([]TopEarner, 0, len(workers))
	for _, w := range workers {
		earners = append(earners, TopEarner{
			Name:          w.Name,
			Email:         w.Email,
			PhotoURL:      w.PhotoURL,
			Coins:         w.Coins,
			ApprovedCount: counts[w.Email],
		})
	}

	s.cache.SetJSON(ctx, topEarnersCacheKey, earners, topEarnersCacheTTL)
	return earners, nil
}
