package service

import (
	"time"

	"github.com/joeyave/airia-site/entity"
	"golang.org/x/exp/slices"
)

type NewsService struct {
	loc *time.Location
}

func NewNewsService(loc *time.Location) *NewsService {
	if loc == nil {
		loc = time.Local
	}
	return &NewsService{
		loc: loc,
	}
}

// Filter keeps the news of category ("all" keeps everything) sorted newest
// first. The input is left untouched.
func (s *NewsService) Filter(news []*entity.News, category string) []*entity.News {
	filtered := make([]*entity.News, 0, len(news))
	for _, n := range news {
		if category == "" || category == entity.NewsCategoryAll || n.Category == category {
			filtered = append(filtered, n)
		}
	}

	s.sortNewestFirst(filtered)
	return filtered
}

func (s *NewsService) Latest(news []*entity.News, limit int) []*entity.News {
	latest := s.Filter(news, entity.NewsCategoryAll)
	if limit > 0 && len(latest) > limit {
		latest = latest[:limit]
	}
	return latest
}

func (s *NewsService) FindOneByID(news []*entity.News, ID string) (*entity.News, error) {
	i := slices.IndexFunc(news, func(n *entity.News) bool { return n.ID == ID })
	if i < 0 {
		return nil, ErrNotFound
	}
	return news[i], nil
}

// sortNewestFirst orders by publish date descending; undated news go last.
func (s *NewsService) sortNewestFirst(news []*entity.News) {
	published := make(map[*entity.News]time.Time, len(news))
	for _, n := range news {
		if t, err := n.PublishedAt(s.loc); err == nil {
			published[n] = t
		}
	}

	slices.SortStableFunc(news, func(a, b *entity.News) int {
		ta, okA := published[a]
		tb, okB := published[b]
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
}
