package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrDataAbsent is returned for a valid document without records for the
// requested category.
var ErrDataAbsent = errors.New("no content available")

var ErrNotFound = errors.New("not found")

type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type ContentService struct {
	contentRepository repository.ContentRepository
	now               func() time.Time
}

func NewContentService(contentRepository repository.ContentRepository) *ContentService {
	return &ContentService{
		contentRepository: contentRepository,
		now:               time.Now,
	}
}

// Load fetches resource once and decodes it into v.
func (s *ContentService) Load(ctx context.Context, resource string, v any) error {
	b, err := s.contentRepository.Load(ctx, resource)
	if err != nil {
		return &FetchError{Resource: resource, Err: err}
	}

	if err := json.Unmarshal(b, v); err != nil {
		return &FetchError{Resource: resource, Err: fmt.Errorf("parse: %w", err)}
	}

	return nil
}

func (s *ContentService) LoadContent(ctx context.Context) (*entity.Content, error) {
	var content entity.Content
	if err := s.Load(ctx, helpers.ContentResource, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *ContentService) LoadEvents(ctx context.Context) ([]*entity.Event, error) {
	var data struct {
		Events []*entity.Event `json:"events"`
	}
	if err := s.Load(ctx, helpers.EventsResource, &data); err != nil {
		return nil, err
	}
	if len(data.Events) == 0 {
		return nil, ErrDataAbsent
	}
	return data.Events, nil
}

func (s *ContentService) LoadMembers(ctx context.Context) ([]*entity.Member, error) {
	var data struct {
		Members []*entity.Member `json:"members"`
	}
	if err := s.Load(ctx, helpers.MembersResource, &data); err != nil {
		return nil, err
	}
	if len(data.Members) == 0 {
		return nil, ErrDataAbsent
	}
	return data.Members, nil
}

func (s *ContentService) LoadSocialLinks(ctx context.Context) (entity.SocialLinks, error) {
	var links entity.SocialLinks
	if err := s.Load(ctx, helpers.SocialResource, &links); err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrDataAbsent
	}
	return links, nil
}

// LoadAllEvents prefers events.json and falls back to the liveEvents list of
// content.json.
func (s *ContentService) LoadAllEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.LoadEvents(ctx)
	if err == nil {
		return events, nil
	}

	content, contentErr := s.LoadContent(ctx)
	if contentErr == nil && len(content.LiveEvents) > 0 {
		return content.LiveEvents, nil
	}

	return nil, err
}

// LoadCatalog fetches every resource concurrently. A failing resource only
// marks its own categories as failed.
func (s *ContentService) LoadCatalog(ctx context.Context) *entity.Catalog {
	var (
		content    *entity.Content
		contentErr error
		events     []*entity.Event
		eventsErr  error
		members    []*entity.Member
		membersErr error
		social     entity.SocialLinks
		socialErr  error
	)

	errwg := new(errgroup.Group)
	errwg.Go(func() error {
		content, contentErr = s.LoadContent(ctx)
		return nil
	})
	errwg.Go(func() error {
		events, eventsErr = s.LoadEvents(ctx)
		return nil
	})
	errwg.Go(func() error {
		members, membersErr = s.LoadMembers(ctx)
		return nil
	})
	errwg.Go(func() error {
		social, socialErr = s.LoadSocialLinks(ctx)
		return nil
	})
	_ = errwg.Wait()

	catalog := &entity.Catalog{
		Social:   social,
		Errors:   map[entity.Category]error{},
		LoadedAt: s.now(),
	}
	if socialErr != nil {
		catalog.Errors[entity.CategorySocial] = socialErr
	}

	if content == nil {
		content = &entity.Content{}
	}
	catalog.News = content.News
	catalog.Songs = content.Songs
	catalog.Settings = content.SiteSettings
	catalog.Errors[entity.CategoryNews] = categoryErr(len(content.News), contentErr)
	catalog.Errors[entity.CategorySongs] = categoryErr(len(content.Songs), contentErr)

	catalog.Events = events
	if eventsErr != nil {
		if len(content.LiveEvents) > 0 {
			catalog.Events = content.LiveEvents
		} else {
			catalog.Errors[entity.CategoryEvents] = eventsErr
		}
	}

	catalog.Members = members
	if membersErr != nil {
		if len(content.Members) > 0 {
			catalog.Members = content.Members
		} else {
			catalog.Errors[entity.CategoryMembers] = membersErr
		}
	}

	for category, err := range catalog.Errors {
		if err == nil {
			delete(catalog.Errors, category)
			continue
		}
		log.Warn().Err(err).Str("category", string(category)).Msg("Category unavailable")
	}

	return catalog
}

func categoryErr(n int, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDataAbsent
	}
	return nil
}
