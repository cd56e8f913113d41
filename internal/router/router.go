package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	GetStats(c *ginext.Context)
	DownloadExport(c *ginext.Context)
	CheckExport(c *ginext.Context)
	ReconcileExport(c *ginext.Context)
	RebuildExport(c *ginext.Context)
	MarkExportStatus(c *ginext.Context)
}

// InitRouter mounts the ops API under /api behind apiAuth; /health stays open.
func InitRouter(mode string, h Handler, apiAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", apiAuth)
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/registrations", h.ListRegistrations)

		// Stats
		api.GET("/stats", h.GetStats)

		// Export
		api.GET("/export", h.DownloadExport)
		api.GET("/export/check", h.CheckExport)
		api.POST("/export/reconcile", h.ReconcileExport)
		api.POST("/export/rebuild", h.RebuildExport)
		api.PATCH("/export/:registration_id", h.MarkExportStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
