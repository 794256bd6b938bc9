package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkoutVehicleHandler "github.com/parkwise/parking-service/internal/api/handlers/checkout_vehicle"
	findVehicleHandler "github.com/parkwise/parking-service/internal/api/handlers/find_vehicle"
	getActiveVehiclesHandler "github.com/parkwise/parking-service/internal/api/handlers/get_active_vehicles"
	getAllSlotsHandler "github.com/parkwise/parking-service/internal/api/handlers/get_all_slots"
	getAvailableSlotsHandler "github.com/parkwise/parking-service/internal/api/handlers/get_available_slots"
	getVehicleHistoryHandler "github.com/parkwise/parking-service/internal/api/handlers/get_vehicle_history"
	parkVehicleHandler "github.com/parkwise/parking-service/internal/api/handlers/park_vehicle"
	recordPaymentHandler "github.com/parkwise/parking-service/internal/api/handlers/record_payment"
	registerVehicleHandler "github.com/parkwise/parking-service/internal/api/handlers/register_vehicle"
	"github.com/parkwise/parking-service/internal/api/middleware"
	"github.com/parkwise/parking-service/internal/config"
	"github.com/parkwise/parking-service/internal/domain"
	slotRepo "github.com/parkwise/parking-service/internal/infra/storage/slotinv"
	vehicleRepo "github.com/parkwise/parking-service/internal/infra/storage/vehicle"
	"github.com/parkwise/parking-service/internal/infra/txmanager"
	slotsService "github.com/parkwise/parking-service/internal/service/slots"
	vehiclesService "github.com/parkwise/parking-service/internal/service/vehicles"
	checkoutVehicleUC "github.com/parkwise/parking-service/internal/usecase/checkout_vehicle"
	parkVehicleUC "github.com/parkwise/parking-service/internal/usecase/park_vehicle"
	registerVehicleUC "github.com/parkwise/parking-service/internal/usecase/register_vehicle"
	"github.com/parkwise/parking-service/pkg/logger"
	"github.com/parkwise/parking-service/pkg/metrics"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting parking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// In-memory storage; all state lives for the process duration
	vehicleRepository := vehicleRepo.NewRepository()
	slotRepository := slotRepo.NewRepository()
	log.Info("Slot inventory generated: %d floors, %d slots", domain.Floors, domain.TotalSlots)

	if cfg.Metrics.Enabled {
		metrics.RegisterOccupancyGauge(cfg.Metrics.ServiceName, func() float64 {
			return float64(slotRepository.OccupiedCount())
		})
	}

	// Services
	vehicleSvc := vehiclesService.NewService(vehicleRepository, log)
	slotSvc := slotsService.NewService(slotRepository, log)

	// One serialization boundary for the park/checkout flows, which touch
	// both repositories
	txManager := txmanager.New()

	// Use cases
	registerVehicleUseCase := registerVehicleUC.NewUseCase(vehicleSvc, log)
	parkVehicleUseCase := parkVehicleUC.NewUseCase(vehicleRepository, slotRepository, txManager, log)
	checkoutVehicleUseCase := checkoutVehicleUC.NewUseCase(vehicleRepository, slotRepository, txManager, log)

	// Handlers
	registerVehicle := registerVehicleHandler.NewHandler(registerVehicleUseCase, log)
	parkVehicle := parkVehicleHandler.NewHandler(parkVehicleUseCase, log)
	checkoutVehicle := checkoutVehicleHandler.NewHandler(checkoutVehicleUseCase, log)
	recordPayment := recordPaymentHandler.NewHandler(vehicleSvc, log)
	findVehicle := findVehicleHandler.NewHandler(vehicleSvc, log)
	getActiveVehicles := getActiveVehiclesHandler.NewHandler(vehicleSvc, log)
	getVehicleHistory := getVehicleHistoryHandler.NewHandler(vehicleSvc, log)
	getAllSlots := getAllSlotsHandler.NewHandler(slotSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Vehicles
	api.HandleFunc("/vehicles", registerVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", getActiveVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/history", getVehicleHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/plate/{plateNumber}", findVehicle.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}/park", parkVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleId}/checkout", checkoutVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vehicles/{vehicleId}/payment", recordPayment.Handle).Methods(http.MethodPost)

	// Slots
	api.HandleFunc("/slots", getAllSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
