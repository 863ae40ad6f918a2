package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/service"
	"github.com/joeyave/airia-site/view"
	"github.com/rs/zerolog/log"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type NewsQuery struct {
	Category string `schema:"category"`
	Open     string `schema:"open"`
}

type OpenQuery struct {
	Open string `schema:"open"`
}

type MusicQuery struct {
	Play string `schema:"play"`
}

// decodeQuery fills q from the query string. Malformed values are logged and
// the zero query is used instead.
func decodeQuery[T any](ctx *gin.Context) T {
	var q T
	if err := decoder.Decode(&q, ctx.Request.URL.Query()); err != nil {
		log.Warn().Err(err).Str("url", ctx.Request.URL.String()).Msg("Ignoring malformed query")
		var zero T
		return zero
	}
	return q
}

type SiteController struct {
	Pages *view.Pages
}

func (h *SiteController) render(ctx *gin.Context, status int, page *view.Page) {
	ctx.HTML(status, page.Template, page)
}

func (h *SiteController) Home(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, h.Pages.Home())
}

func (h *SiteController) News(ctx *gin.Context) {
	q := decodeQuery[NewsQuery](ctx)
	h.render(ctx, http.StatusOK, h.Pages.News(q.Category, q.Open))
}

func (h *SiteController) NewsItem(ctx *gin.Context) {
	ID := ctx.Param("id")
	page, err := h.Pages.NewsItem(ID)
	if err != nil {
		h.notFound(ctx, err, ID, newsIDs(h.Pages.Site.Catalog()), h.Pages.Mapper.Paths.NewsItem)
		return
	}
	h.render(ctx, http.StatusOK, page)
}

func (h *SiteController) Live(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, h.Pages.Live())
}

func (h *SiteController) LiveItem(ctx *gin.Context) {
	ID := ctx.Param("id")
	page, err := h.Pages.LiveItem(ID)
	if err != nil {
		h.notFound(ctx, err, ID, eventIDs(h.Pages.Site.Catalog()), h.Pages.Mapper.Paths.LiveItem)
		return
	}
	h.render(ctx, http.StatusOK, page)
}

func (h *SiteController) Artist(ctx *gin.Context) {
	q := decodeQuery[OpenQuery](ctx)
	h.render(ctx, http.StatusOK, h.Pages.Artist(q.Open))
}

func (h *SiteController) Member(ctx *gin.Context) {
	ID := ctx.Param("id")
	page, err := h.Pages.Member(ID)
	if err != nil {
		h.notFound(ctx, err, ID, memberIDs(h.Pages.Site.Catalog()), h.Pages.Mapper.Paths.Member)
		return
	}
	h.render(ctx, http.StatusOK, page)
}

func (h *SiteController) Music(ctx *gin.Context) {
	q := decodeQuery[MusicQuery](ctx)
	h.render(ctx, http.StatusOK, h.Pages.Music(q.Play))
}

func (h *SiteController) Contact(ctx *gin.Context) {
	h.render(ctx, http.StatusOK, h.Pages.Contact())
}

func (h *SiteController) Calendar(ctx *gin.Context) {
	q := decodeQuery[view.CalendarQuery](ctx)
	h.render(ctx, http.StatusOK, h.Pages.Calendar(q))
}

func (h *SiteController) NoRoute(ctx *gin.Context) {
	h.render(ctx, http.StatusNotFound, h.Pages.NotFound(ctx.Request.URL.Path, "", ""))
}

// notFound answers an unknown record id with a 404 page offering the closest
// known id.
func (h *SiteController) notFound(ctx *gin.Context, err error, ID string, knownIDs []string, link func(string) string) {
	if !errors.Is(err, service.ErrNotFound) {
		log.Error().Err(err).Str("id", ID).Msg("Failed to build page")
		h.render(ctx, http.StatusInternalServerError, h.Pages.Error(ctx.Request.URL.Path))
		return
	}

	var suggestion, suggestionURL string
	if s := service.SuggestID(ID, knownIDs); s != "" {
		suggestion, suggestionURL = s, link(s)
	}
	h.render(ctx, http.StatusNotFound, h.Pages.NotFound(ctx.Request.URL.Path, suggestion, suggestionURL))
}

func newsIDs(c *entity.Catalog) []string {
	IDs := make([]string, 0, len(c.News))
	for _, n := range c.News {
		IDs = append(IDs, n.ID)
	}
	return IDs
}

func eventIDs(c *entity.Catalog) []string {
	IDs := make([]string, 0, len(c.Events))
	for _, e := range c.Events {
		IDs = append(IDs, e.ID)
	}
	return IDs
}

func memberIDs(c *entity.Catalog) []string {
	IDs := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		IDs = append(IDs, m.ID)
	}
	return IDs
}
