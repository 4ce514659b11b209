package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-pms/config"
	"hotel-pms/controllers"
	"hotel-pms/routes"
	"hotel-pms/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env not found; continuing with environment variables")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	logrus.Info("database connected, migrations applied")

	staffService := services.NewStaffService(db)
	roomService := services.NewRoomService(db)
	guestService := services.NewGuestService(db)
	reservationService := services.NewReservationService(db)
	dashboardService := services.NewDashboardService(db)
	catalogService := services.NewCatalogService(db)
	requestService := services.NewRequestService(db)
	scheduleService := services.NewScheduleService(db)
	reportService := services.NewReportService(db)
	exportService := services.NewExportService(db)

	router := routes.SetupRouter(routes.Controllers{
		Auth:        controllers.NewAuthController(staffService),
		Staff:       controllers.NewStaffController(staffService),
		Room:        controllers.NewRoomController(roomService),
		Guest:       controllers.NewGuestController(guestService),
		Reservation: controllers.NewReservationController(reservationService),
		Dashboard:   controllers.NewDashboardController(dashboardService),
		Catalog:     controllers.NewCatalogController(catalogService),
		Request:     controllers.NewRequestController(requestService, roomService),
		Schedule:    controllers.NewScheduleController(scheduleService),
		Report:      controllers.NewReportController(reportService, exportService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("forced shutdown: %v", err)
	}

	logrus.Info("server stopped")
}
