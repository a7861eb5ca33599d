package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/atln0/GigBooker/internal/domain"
	"github.com/atln0/GigBooker/internal/middleware"
)

type Handler interface {
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	SetSessionSignature(c *ginext.Context)
	GetProfile(c *ginext.Context)
	SaveProfile(c *ginext.Context)
	SetProfileSignature(c *ginext.Context)
	EnhanceBio(c *ginext.Context)
	SubmitOffer(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	SignBooking(c *ginext.Context)
	RequestContractDraft(c *ginext.Context)
	GetContractDraft(c *ginext.Context)
	DownloadContractPDF(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	AddEventAsset(c *ginext.Context)
	RemoveEventAsset(c *ginext.Context)
	GetCatalog(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)
		api.POST("/session/signature", middleware.RequireRole(domain.RoleClient, domain.RolePromoter), h.SetSessionSignature)

		// Profile (the DJ edits, everyone reads)
		api.GET("/profile", h.GetProfile)
		api.PUT("/profile", middleware.RequireRole(domain.RoleDJ), h.SaveProfile)
		api.POST("/profile/signature", middleware.RequireRole(domain.RoleDJ), h.SetProfileSignature)
		api.POST("/profile/bio/enhance", middleware.RequireRole(domain.RoleDJ), h.EnhanceBio)

		// Bookings
		api.POST("/bookings", middleware.RequireRole(domain.RoleClient, domain.RolePromoter), h.SubmitOffer)
		api.GET("/bookings", middleware.RequireRole(domain.RoleDJ, domain.RoleClient, domain.RolePromoter), h.ListBookings)
		api.GET("/bookings/:id", middleware.RequireRole(domain.RoleDJ, domain.RoleClient, domain.RolePromoter), h.GetBooking)
		api.PATCH("/bookings/:id/status", middleware.RequireRole(domain.RoleDJ), h.UpdateBookingStatus)
		api.POST("/bookings/:id/sign", middleware.RequireRole(domain.RoleDJ, domain.RoleClient, domain.RolePromoter), h.SignBooking)

		// Contracts
		api.POST("/bookings/:id/contract", middleware.RequireRole(domain.RoleDJ, domain.RoleClient, domain.RolePromoter), h.RequestContractDraft)
		api.GET("/bookings/:id/contract", middleware.RequireRole(domain.RoleDJ, domain.RoleClient, domain.RolePromoter), h.GetContractDraft)
		api.GET("/bookings/:id/contract/pdf", middleware.RequireRole(domain.RoleDJ, domain.RoleClient, domain.RolePromoter), h.DownloadContractPDF)

		// Promoter events
		api.POST("/events", middleware.RequireRole(domain.RolePromoter), h.CreateEvent)
		api.GET("/events", middleware.RequireRole(domain.RolePromoter), h.ListEvents)
		api.GET("/events/:id", middleware.RequireRole(domain.RolePromoter), h.GetEvent)
		api.POST("/events/:id/assets", middleware.RequireRole(domain.RolePromoter), h.AddEventAsset)
		api.DELETE("/events/:id/assets/:assetId", middleware.RequireRole(domain.RolePromoter), h.RemoveEventAsset)
		api.GET("/catalog", middleware.RequireRole(domain.RolePromoter), h.GetCatalog)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
