package service

import (
	"context"
	"sync"
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/util"
	"github.com/rs/zerolog/log"
)

// SiteService owns the catalog. It is loaded once at startup; afterwards only
// the events are replaced, wholesale.
type SiteService struct {
	contentService *ContentService

	mu      sync.RWMutex
	catalog *entity.Catalog

	refreshTrigger *util.Debounce[string]
}

func NewSiteService(contentService *ContentService, clock util.Clock) *SiteService {
	s := &SiteService{
		contentService: contentService,
		catalog:        &entity.Catalog{Errors: map[entity.Category]error{}},
	}
	s.refreshTrigger = util.NewDebounce(clock, helpers.RefreshDebounce, func(reason string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.RefreshEvents(ctx); err != nil {
			log.Warn().Err(err).Str("reason", reason).Msg("Events refresh failed")
		}
	})
	return s
}

func (s *SiteService) Load(ctx context.Context) *entity.Catalog {
	catalog := s.contentService.LoadCatalog(ctx)

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	log.Info().
		Int("members", len(catalog.Members)).
		Int("events", len(catalog.Events)).
		Int("news", len(catalog.News)).
		Int("songs", len(catalog.Songs)).
		Int("social", len(catalog.Social)).
		Msg("Catalog loaded")

	return catalog
}

// Catalog returns the current snapshot. Snapshots are never mutated.
func (s *SiteService) Catalog() *entity.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// RefreshEvents re-fetches the events. On failure the previous events stay.
func (s *SiteService) RefreshEvents(ctx context.Context) error {
	events, err := s.contentService.LoadAllEvents(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog = s.catalog.WithEvents(events, nil)
	s.mu.Unlock()

	log.Info().Int("events", len(events)).Msg("Events refreshed")
	return nil
}

// TriggerRefresh schedules an events refresh; bursts collapse into one.
func (s *SiteService) TriggerRefresh(reason string) {
	s.refreshTrigger.Call(reason)
}

// RunRefreshLoop refreshes the events every interval until ctx is done.
func (s *SiteService) RunRefreshLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer s.refreshTrigger.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.RefreshEvents(ctx); err != nil {
				log.Warn().Err(err).Msg("Scheduled events refresh failed")
			}
		}
	}
}
