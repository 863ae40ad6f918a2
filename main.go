package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joeyave/airia-site/configs"
	"github.com/joeyave/airia-site/controller"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/repository"
	"github.com/joeyave/airia-site/service"
	"github.com/joeyave/airia-site/templates"
	"github.com/joeyave/airia-site/util"
	"github.com/joeyave/airia-site/view"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	helpers.SetupLogger(cfg.Env)

	loc, err := helpers.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid time zone")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	contentRepository, closeRepository, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.ContentSource).Msg("Failed to open content source")
	}
	defer closeRepository()

	clock := util.SystemClock{}

	contentService := service.NewContentService(contentRepository)
	siteService := service.NewSiteService(contentService, clock)
	eventService := service.NewEventService(loc)
	calendarService := service.NewCalendarService(loc)
	newsService := service.NewNewsService(loc)

	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	siteService.Load(loadCtx)
	cancel()

	go siteService.RunRefreshLoop(ctx, cfg.RefreshInterval)

	pages := &view.Pages{
		Site:            siteService,
		EventService:    eventService,
		CalendarService: calendarService,
		NewsService:     newsService,
		SongService:     service.NewSongService(loc),
		MemberService:   service.NewMemberService(),
		Mapper: &view.Mapper{
			Lang:    cfg.Lang,
			Loc:     loc,
			Paths:   &view.Paths{},
			BaseURL: cfg.BaseURL,
		},
		Clock: clock,
	}

	tmpl, err := templates.Parse()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(helpers.RequestLogger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	controller.Register(r,
		&controller.SiteController{Pages: pages},
		&controller.ApiController{
			Site:            siteService,
			EventService:    eventService,
			CalendarService: calendarService,
			NewsService:     newsService,
			Content:         contentRepository,
			Clock:           clock,
		},
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("source", cfg.ContentSource).Msg("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
	log.Info().Msg("Server stopped")
}
