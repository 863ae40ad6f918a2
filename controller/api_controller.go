package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/repository"
	"github.com/joeyave/airia-site/service"
	"github.com/joeyave/airia-site/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Site interface {
	Catalog() *entity.Catalog
	TriggerRefresh(reason string)
}

type ApiController struct {
	Site            Site
	EventService    *service.EventService
	CalendarService *service.CalendarService
	NewsService     *service.NewsService
	Content         repository.ContentRepository
	Clock           util.Clock
}

func (h *ApiController) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock.Now()
}

type eventsResponse struct {
	Upcoming []*entity.Event `json:"upcoming"`
	Past     []*entity.Event `json:"past"`
	Error    string          `json:"error,omitempty"`
}

func (h *ApiController) Events(ctx *gin.Context) {
	catalog := h.Site.Catalog()
	upcoming, past := h.EventService.Bucket(catalog.Events, h.now())

	resp := eventsResponse{
		Upcoming: nonNil(upcoming),
		Past:     nonNil(past),
	}
	if err := catalog.Err(entity.CategoryEvents); err != nil {
		resp.Error = err.Error()
	}
	ctx.JSON(http.StatusOK, resp)
}

type calendarQuery struct {
	Year  int `schema:"year"`
	Month int `schema:"month"`
}

type calendarCell struct {
	Date           entity.Date     `json:"date"`
	IsCurrentMonth bool            `json:"isCurrentMonth"`
	IsToday        bool            `json:"isToday"`
	Events         []*entity.Event `json:"events"`
}

type calendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []calendarCell `json:"cells"`
}

func (h *ApiController) Calendar(ctx *gin.Context) {
	var q calendarQuery
	if err := decoder.Decode(&q, ctx.Request.URL.Query()); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	today := h.CalendarService.Today(h.now())
	if q.Year == 0 || q.Month == 0 {
		q.Year, q.Month = today.Year, int(today.Month)
	}

	grid := h.CalendarService.Build(q.Year, time.Month(q.Month), h.Site.Catalog().Events, today)

	resp := calendarResponse{Year: grid.Year, Month: int(grid.Month)}
	for _, cell := range grid.Cells {
		resp.Cells = append(resp.Cells, calendarCell{
			Date:           cell.Date,
			IsCurrentMonth: cell.IsCurrentMonth,
			IsToday:        cell.IsToday,
			Events:         nonNil(cell.Events),
		})
	}
	ctx.JSON(http.StatusOK, resp)
}

func (h *ApiController) News(ctx *gin.Context) {
	q := decodeQuery[NewsQuery](ctx)
	ctx.JSON(http.StatusOK, gin.H{
		"news": nonNil(h.NewsService.Filter(h.Site.Catalog().News, q.Category)),
	})
}

// RefreshEvents schedules a refetch of the events; bursts of calls collapse
// into one fetch.
func (h *ApiController) RefreshEvents(ctx *gin.Context) {
	h.Site.TriggerRefresh("api")
	ctx.JSON(http.StatusAccepted, gin.H{"status": "scheduled"})
}

func (h *ApiController) Health(ctx *gin.Context) {
	catalog := h.Site.Catalog()

	failed := map[string]string{}
	for category, err := range catalog.Errors {
		failed[string(category)] = err.Error()
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"loadedAt": catalog.LoadedAt,
		"failed":   failed,
	})
}

// Data serves the raw content files the site is built from.
func (h *ApiController) Data(ctx *gin.Context) {
	resource := strings.TrimPrefix(ctx.Param("resource"), "/")
	if !slices.Contains(helpers.ContentResources, resource) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	b, err := h.Content.Load(ctx.Request.Context(), resource)
	if errors.Is(err, repository.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("Failed to load content")
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "content unavailable"})
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
