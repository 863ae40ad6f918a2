package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type TemplateExecutor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

// Exporter writes the whole site as static files.
type Exporter struct {
	Pages     *Pages
	Templates TemplateExecutor
	Content   repository.ContentRepository
}

type exportJob struct {
	file  string
	build func() (*Page, error)
}

// Export renders every page into outDir and copies the content files to
// outDir/data. It returns the number of files written.
func (e *Exporter) Export(ctx context.Context, outDir string) (int, error) {
	if !e.Pages.Mapper.Paths.Static {
		return 0, errors.New("export needs static paths")
	}

	catalog := e.Pages.Site.Catalog()
	e.Pages.Mapper.Paths.Months = e.calendarMonths(catalog.Events)

	jobs := e.jobs(catalog)

	errwg, gctx := errgroup.WithContext(ctx)
	errwg.SetLimit(4)
	for _, job := range jobs {
		job := job
		errwg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			page, err := job.build()
			if err != nil {
				return fmt.Errorf("%s: %w", job.file, err)
			}
			return e.render(filepath.Join(outDir, job.file), page)
		})
	}
	if err := errwg.Wait(); err != nil {
		return 0, err
	}

	copied, err := e.copyContent(ctx, filepath.Join(outDir, "data"))
	if err != nil {
		return 0, err
	}

	return len(jobs) + copied, nil
}

func (e *Exporter) jobs(catalog *entity.Catalog) []exportJob {
	p := e.Pages

	jobs := []exportJob{
		{file: "index.html", build: func() (*Page, error) { return p.Home(), nil }},
		{file: "news.html", build: func() (*Page, error) { return p.News(entity.NewsCategoryAll, ""), nil }},
		{file: "live.html", build: func() (*Page, error) { return p.Live(), nil }},
		{file: "artist.html", build: func() (*Page, error) { return p.Artist(""), nil }},
		{file: "music.html", build: func() (*Page, error) { return p.Music(""), nil }},
		{file: "contact.html", build: func() (*Page, error) { return p.Contact(), nil }},
		{file: "calendar.html", build: func() (*Page, error) { return p.Calendar(CalendarQuery{}), nil }},
		{file: "404.html", build: func() (*Page, error) { return p.NotFound("/404.html", "", ""), nil }},
	}

	for _, category := range []string{entity.NewsCategoryRelease, entity.NewsCategoryLive, entity.NewsCategoryInfo} {
		jobs = append(jobs, exportJob{
			file:  filepath.Join("news", "category", category+".html"),
			build: func() (*Page, error) { return p.News(category, ""), nil },
		})
	}
	for _, n := range catalog.News {
		jobs = append(jobs, exportJob{
			file:  filepath.Join("news", n.ID+".html"),
			build: func() (*Page, error) { return p.NewsItem(n.ID) },
		})
	}
	for _, event := range catalog.Events {
		jobs = append(jobs, exportJob{
			file:  filepath.Join("live", event.ID+".html"),
			build: func() (*Page, error) { return p.LiveItem(event.ID) },
		})
	}
	for _, member := range catalog.Members {
		jobs = append(jobs, exportJob{
			file:  filepath.Join("member", member.ID+".html"),
			build: func() (*Page, error) { return p.Member(member.ID) },
		})
	}

	for key := range p.Mapper.Paths.Months {
		year, month, ok := parseMonthKey(key)
		if !ok {
			continue
		}
		jobs = append(jobs, exportJob{
			file:  filepath.Join("calendar", key+".html"),
			build: func() (*Page, error) { return p.Calendar(CalendarQuery{Year: year, Month: int(month)}), nil },
		})
	}
	for _, day := range e.eventDays(catalog.Events) {
		jobs = append(jobs, exportJob{
			file:  filepath.Join("calendar", day.String()+".html"),
			build: func() (*Page, error) { return p.Calendar(CalendarQuery{Date: day.String()}), nil },
		})
	}

	return jobs
}

func (e *Exporter) eventDays(events []*entity.Event) []entity.Date {
	seen := map[entity.Date]bool{}
	var days []entity.Date
	for _, event := range events {
		day, ok := event.Day(e.Pages.Mapper.Loc)
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}

// calendarMonths spans every month from the earliest to the latest event,
// the current month included.
func (e *Exporter) calendarMonths(events []*entity.Event) map[string]bool {
	today := e.Pages.CalendarService.Today(e.Pages.now())
	first := entity.NewDate(today.Year, today.Month, 1)
	last := first

	for _, day := range e.eventDays(events) {
		month := entity.NewDate(day.Year, day.Month, 1)
		if month.Compare(first) < 0 {
			first = month
		}
		if month.Compare(last) > 0 {
			last = month
		}
	}

	months := map[string]bool{}
	for m := first; m.Compare(last) <= 0; m = entity.NewDate(m.Year, m.Month+1, 1) {
		months[monthKey(m.Year, m.Month)] = true
	}
	return months
}

func parseMonthKey(key string) (int, time.Month, bool) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

func (e *Exporter) render(file string, page *Page) error {
	var buf bytes.Buffer
	if err := e.Templates.ExecuteTemplate(&buf, page.Template, page); err != nil {
		return fmt.Errorf("render %s: %w", file, err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0o644)
}

func (e *Exporter) copyContent(ctx context.Context, dir string) (int, error) {
	if e.Content == nil {
		return 0, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	copied := 0
	for _, resource := range helpers.ContentResources {
		b, err := e.Content.Load(ctx, resource)
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Str("resource", resource).Msg("Content file missing, not copied")
			continue
		}
		if err != nil {
			return copied, fmt.Errorf("copy %s: %w", resource, err)
		}
		if err := os.WriteFile(filepath.Join(dir, strings.TrimPrefix(resource, "/")), b, 0o644); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}
