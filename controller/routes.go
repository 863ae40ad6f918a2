package controller

import "github.com/gin-gonic/gin"

func Register(r *gin.Engine, site *SiteController, api *ApiController) {
	r.GET("/", site.Home)
	r.GET("/news", site.News)
	r.GET("/news/:id", site.NewsItem)
	r.GET("/live", site.Live)
	r.GET("/live/:id", site.LiveItem)
	r.GET("/artist", site.Artist)
	r.GET("/member/:id", site.Member)
	r.GET("/music", site.Music)
	r.GET("/contact", site.Contact)
	r.GET("/calendar", site.Calendar)
	r.NoRoute(site.NoRoute)

	r.GET("/healthz", api.Health)
	r.GET("/data/*resource", api.Data)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/events", api.Events)
		apiGroup.GET("/calendar", api.Calendar)
		apiGroup.GET("/news", api.News)
		apiGroup.POST("/events/refresh", api.RefreshEvents)
	}
}
