package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-pms/controllers"
	"hotel-pms/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Auth        *controllers.AuthController
	Staff       *controllers.StaffController
	Room        *controllers.RoomController
	Guest       *controllers.GuestController
	Reservation *controllers.ReservationController
	Dashboard   *controllers.DashboardController
	Catalog     *controllers.CatalogController
	Request     *controllers.RequestController
	Schedule    *controllers.ScheduleController
	Report      *controllers.ReportController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/auth/login", ctl.Auth.Login)

	// Guest portal: reached via the QR code in the room, no login.
	portal := r.Group("/portal")
	{
		portal.POST("/rooms/:id/requests", ctl.Request.CreateFromPortal)
	}

	api := r.Group("/api", middleware.RequireAuth())
	{
		api.GET("/auth/me", ctl.Auth.Me)

		api.GET("/dashboard", ctl.Dashboard.RoomBoard)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", ctl.Room.List)
			rooms.GET("/:id", ctl.Room.Get)
			rooms.POST("", ctl.Room.Create)
			rooms.PUT("/:id", ctl.Room.Update)
			rooms.PATCH("/:id/status", ctl.Room.SetStatus)
			rooms.DELETE("/:id", ctl.Room.Delete)
			rooms.GET("/:id/portal-url", ctl.Request.PortalURL)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", ctl.Guest.Search)
			guests.GET("/:id", ctl.Guest.Get)
			guests.POST("", ctl.Guest.Create)
			guests.PUT("/:id", ctl.Guest.Update)
			guests.POST("/:id/photos", ctl.Guest.UploadPhoto)
			guests.DELETE("/:id", ctl.Guest.Delete)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("/calendar", ctl.Reservation.Calendar)
			reservations.POST("", ctl.Reservation.Create)
			reservations.POST("/walk-in", ctl.Reservation.WalkIn)
			reservations.GET("/:id", ctl.Reservation.Get)
			reservations.POST("/:id/check-in", ctl.Reservation.CheckIn)
			reservations.POST("/:id/cancel", ctl.Reservation.Cancel)
			reservations.GET("/:id/bill", ctl.Reservation.BillPreview)
			reservations.POST("/:id/check-out", ctl.Reservation.CheckOut)
			reservations.POST("/:id/charges", ctl.Catalog.AddCharge)
			reservations.GET("/:id/charges", ctl.Catalog.ListCharges)
		}

		items := api.Group("/service-items")
		{
			items.GET("", ctl.Catalog.ListItems)
			items.POST("", ctl.Catalog.CreateItem)
			items.PUT("/:id", ctl.Catalog.UpdateItem)
			items.DELETE("/:id", ctl.Catalog.DeleteItem)
		}

		requests := api.Group("/requests")
		{
			requests.GET("", ctl.Request.ListOpen)
			requests.GET("/count-new", ctl.Request.CountNew)
			requests.POST("/:id/start", ctl.Request.Start)
			requests.POST("/:id/complete", ctl.Request.Complete)
		}

		schedules := api.Group("/schedules")
		{
			schedules.GET("/week", ctl.Schedule.Week)
			schedules.POST("", ctl.Schedule.Create)
			schedules.DELETE("/:id", ctl.Schedule.Delete)
		}

		manager := api.Group("", middleware.RequireManager())
		{
			manager.GET("/reports/monthly", ctl.Report.Monthly)
			manager.GET("/reports/registry.csv", ctl.Report.RegistryCSV)

			staff := manager.Group("/staff")
			{
				staff.GET("", ctl.Staff.List)
				staff.POST("", ctl.Staff.Create)
				staff.DELETE("/:id", ctl.Staff.Delete)
			}
		}
	}

	return r
}
