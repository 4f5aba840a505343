package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"touringplaces/config"
	"touringplaces/handlers"
	"touringplaces/middleware"
	"touringplaces/routes"
	"touringplaces/services/flights"
	"touringplaces/services/mailer"
	"touringplaces/services/stays"
	"touringplaces/services/tours"
	"touringplaces/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	flightService := &flights.DefaultFlightService{
		APIKey:     config.AppConfig.FlightsAPIKey,
		BaseURL:    config.AppConfig.FlightsAPIURL,
		PartnerTag: config.AppConfig.PartnerTag,
		Currency:   config.AppConfig.DefaultCurrency,
	}
	stayService := &stays.DefaultStayService{
		APIKey:       config.AppConfig.StaysAPIKey,
		LocationsURL: config.AppConfig.StaysLocationsURL,
		StaysURL:     config.AppConfig.StaysAPIURL,
		Currency:     config.AppConfig.DefaultCurrency,
	}
	tourService := &tours.DefaultTourService{}
	mailerService := &mailer.ResendMailer{
		APIKey: config.AppConfig.ResendAPIKey,
		From:   config.AppConfig.EmailFrom,
	}

	flightHandler := handlers.NewFlightHandler(flightService)
	stayHandler := handlers.NewStayHandler(stayService)
	tourHandler := handlers.NewTourHandler(tourService)
	emailHandler := handlers.NewEmailHandler(mailerService, config.AppConfig.EnquiryInbox)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SearchFlights: flightHandler.SearchFlights,
		SearchStays:   stayHandler.SearchStays,
		SearchTours:   tourHandler.SearchTours,
		SendEmail:     emailHandler.SendEmail,
		SubmitEnquiry: emailHandler.SubmitEnquiry,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
