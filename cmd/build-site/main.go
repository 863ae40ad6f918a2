package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joeyave/airia-site/configs"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/repository"
	"github.com/joeyave/airia-site/service"
	"github.com/joeyave/airia-site/templates"
	"github.com/joeyave/airia-site/util"
	"github.com/joeyave/airia-site/view"
	"github.com/rs/zerolog/log"
)

func main() {
	out := flag.String("out", "public", "output directory")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	helpers.SetupLogger(cfg.Env)

	loc, err := helpers.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid time zone")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	contentRepository, closeRepository, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.ContentSource).Msg("Failed to open content source")
	}
	defer closeRepository()

	clock := util.SystemClock{}
	siteService := service.NewSiteService(service.NewContentService(contentRepository), clock)
	catalog := siteService.Load(ctx)
	for category, err := range catalog.Errors {
		log.Warn().Err(err).Str("category", string(category)).Msg("Category unavailable, its pages show no content")
	}

	tmpl, err := templates.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	exporter := &view.Exporter{
		Pages: &view.Pages{
			Site:            siteService,
			EventService:    service.NewEventService(loc),
			CalendarService: service.NewCalendarService(loc),
			NewsService:     service.NewNewsService(loc),
			SongService:     service.NewSongService(loc),
			MemberService:   service.NewMemberService(),
			Mapper: &view.Mapper{
				Lang:    cfg.Lang,
				Loc:     loc,
				Paths:   &view.Paths{Static: true},
				BaseURL: cfg.BaseURL,
			},
			Clock: clock,
		},
		Templates: tmpl,
		Content:   contentRepository,
	}

	n, err := exporter.Export(ctx, *out)
	if err != nil {
		log.Error().Err(err).Msg("Build failed")
		os.Exit(1)
	}
	log.Info().Int("files", n).Str("out", *out).Msg("Site built")
}
