package state

import (
	"fmt"

	"github.com/joeyave/airia-site/entity"
	"golang.org/x/exp/slices"
)

var NewsFilterOptions = []string{
	entity.NewsCategoryAll,
	entity.NewsCategoryRelease,
	entity.NewsCategoryLive,
	entity.NewsCategoryInfo,
}

// Filter is the single selected news category.
type Filter struct {
	current string
}

func NewFilter() *Filter {
	return &Filter{current: entity.NewsCategoryAll}
}

// Select switches to category. Unknown categories are rejected and the
// selection is left unchanged; "" selects "all".
func (f *Filter) Select(category string) error {
	if category == "" {
		category = entity.NewsCategoryAll
	}
	if !slices.Contains(NewsFilterOptions, category) {
		return fmt.Errorf("unknown news category %q", category)
	}
	f.current = category
	return nil
}

func (f *Filter) Current() string {
	return f.current
}

func (f *Filter) IsActive(category string) bool {
	return f.current == category
}

func (f *Filter) Options() []string {
	return NewsFilterOptions
}
