package service

import (
	"time"

	"github.com/joeyave/airia-site/entity"
	"golang.org/x/exp/slices"
)

type SongService struct {
	loc *time.Location
}

func NewSongService(loc *time.Location) *SongService {
	if loc == nil {
		loc = time.Local
	}
	return &SongService{
		loc: loc,
	}
}

// SortByRelease returns a copy of songs, newest release first.
func (s *SongService) SortByRelease(songs []*entity.Song) []*entity.Song {
	sorted := slices.Clone(songs)
	slices.SortStableFunc(sorted, func(a, b *entity.Song) int {
		ta, errA := a.ReleasedAt(s.loc)
		tb, errB := b.ReleasedAt(s.loc)
		switch {
		case errA == nil && errB == nil:
			return tb.Compare(ta)
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
		return 0
	})
	return sorted
}

func (s *SongService) FindOneByID(songs []*entity.Song, ID string) (*entity.Song, error) {
	i := slices.IndexFunc(songs, func(song *entity.Song) bool { return song.ID == ID })
	if i < 0 {
		return nil, ErrNotFound
	}
	return songs[i], nil
}
