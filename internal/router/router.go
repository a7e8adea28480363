package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Index(c *ginext.Context)

	ListBootcamps(c *ginext.Context)
	GetBootcamp(c *ginext.Context)

	SignIn(c *ginext.Context)
	CurrentSession(c *ginext.Context)
	SignOut(c *ginext.Context)

	Register(c *ginext.Context)
	MyRegistrations(c *ginext.Context)

	ListRegistrations(c *ginext.Context)
	ExportRegistrations(c *ginext.Context)
	UpdateStatus(c *ginext.Context)
	UpdatePaymentStatus(c *ginext.Context)
	UpdateNotes(c *ginext.Context)
	DeleteRegistration(c *ginext.Context)

	ListAdmins(c *ginext.Context)
	AddAdmin(c *ginext.Context)
	RemoveAdmin(c *ginext.Context)
}

// InitRouter mounts the page and the JSON API. requireAdmin guards every
// route under /api/admin.
func InitRouter(mode, templates string, h Handler, requireAdmin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/bootcamps", h.ListBootcamps)
		api.GET("/bootcamps/:id", h.GetBootcamp)

		// Session
		api.POST("/session", h.SignIn)
		api.GET("/session", h.CurrentSession)
		api.DELETE("/session", h.SignOut)

		// Registrations
		api.POST("/registrations", h.Register)
		api.GET("/registrations/mine", h.MyRegistrations)
	}

	admin := router.Group("/api/admin", requireAdmin)
	{
		admin.GET("/registrations", h.ListRegistrations)
		admin.GET("/registrations/export", h.ExportRegistrations)
		admin.PATCH("/registrations/:id/status", h.UpdateStatus)
		admin.PATCH("/registrations/:id/payment-status", h.UpdatePaymentStatus)
		admin.PATCH("/registrations/:id/notes", h.UpdateNotes)
		admin.DELETE("/registrations/:id", h.DeleteRegistration)

		admin.GET("/admins", h.ListAdmins)
		admin.POST("/admins", h.AddAdmin)
		admin.DELETE("/admins/:id", h.RemoveAdmin)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob(templates)
	router.GET("/", h.Index)

	return router
}
