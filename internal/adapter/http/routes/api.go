package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/giordanomadjo-lab/sisgped/internal/adapter/http/handlers"
)

const (
	PathAuth          = "/auth"
	PathServiceTypes  = "/service-types"
	PathInstructors   = "/instructors"
	PathServices      = "/services"
	PathNotifications = "/notifications"
	PathDashboard     = "/dashboard"
	PathExport        = "/export"
)

type apiHandlers struct {
	auth          *handlers.AuthHandler
	users         *handlers.UserHandler
	instructors   *handlers.InstructorHandler
	serviceTypes  *handlers.ServiceTypeHandler
	services      *handlers.ServiceRecordHandler
	notifications *handlers.NotificationHandler
	dashboard     *handlers.DashboardHandler
	export        *handlers.ExportHandler
}

func addAPIRoutes(rg *gin.RouterGroup, h apiHandlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.auth.Login)
		auth.POST("/logout", h.auth.Logout)
		auth.GET("/me", h.auth.Me)
		auth.GET("/users", h.users.List)
		auth.POST("/users", h.users.Create)
		auth.PUT("/users/:id", h.users.Update)
	}

	rg.GET(PathServiceTypes, h.serviceTypes.List)

	instructors := rg.Group(PathInstructors)
	{
		instructors.GET("", h.instructors.List)
		instructors.POST("", h.instructors.Create)
		instructors.GET("/by-matricula/:matricula", h.instructors.GetByMatricula)
		instructors.PUT("/:id", h.instructors.Update)
	}

	services := rg.Group(PathServices)
	{
		services.GET("", h.services.List)
		services.POST("", h.services.Create)
		services.GET("/:id", h.services.GetByID)
		services.PUT("/:id", h.services.Update)
		services.DELETE("/:id", h.services.Delete)
		services.PATCH("/:id/status", h.services.UpdateStatus)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.notifications.List)
		notifications.GET("/unread-count", h.notifications.UnreadCount)
		notifications.POST("/read-all", h.notifications.MarkAllRead)
		notifications.PATCH("/:id/read", h.notifications.MarkRead)
	}

	rg.GET(PathDashboard+"/stats", h.dashboard.Stats)
	rg.GET(PathExport+"/csv", h.export.ExportCSV)
}
