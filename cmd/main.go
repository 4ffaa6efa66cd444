package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addOccupiedDateHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/add_occupied_date"
	adminLoginHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/admin_login"
	deleteLeadHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/delete_lead"
	deleteLeadsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/delete_leads"
	getCalendarHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_calendar"
	getLeadHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_lead"
	getLeadStatsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_lead_stats"
	getLeadsHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_leads"
	getOccupiedDatesHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/get_occupied_dates"
	removeOccupiedDateHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/remove_occupied_date"
	submitContactHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/submit_contact"
	updateLeadStatusHandler "github.com/m04kA/SMC-VenueBookingService/internal/api/handlers/update_lead_status"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/auth"
	"github.com/m04kA/SMC-VenueBookingService/internal/config"
	leadsRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/leads"
	occupiedDatesRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/occupieddates"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/mailrelay"
	leadsService "github.com/m04kA/SMC-VenueBookingService/internal/service/leads"
	occupiedDatesService "github.com/m04kA/SMC-VenueBookingService/internal/service/occupieddates"
	submitLeadUC "github.com/m04kA/SMC-VenueBookingService/internal/usecase/submit_lead"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/logger"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент email relay
	mailClient := mailrelay.NewClient(
		cfg.MailRelay.URL,
		cfg.MailRelay.APIKey,
		time.Duration(cfg.MailRelay.Timeout)*time.Second,
		log,
	)
	log.Info("Mail relay client initialized (url=%s timeout=%ds)",
		cfg.MailRelay.URL, cfg.MailRelay.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		leadRepository         *leadsRepo.Repository
		occupiedDateRepository *occupiedDatesRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		leadRepository = leadsRepo.NewRepository(wrappedDB)
		occupiedDateRepository = occupiedDatesRepo.NewRepository(wrappedDB)
	} else {
		leadRepository = leadsRepo.NewRepository(db)
		occupiedDateRepository = occupiedDatesRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	leadsSvc := leadsService.NewService(leadRepository, log)
	occupiedDatesSvc := occupiedDatesService.NewService(occupiedDateRepository, log)

	// Инициализируем менеджер админских сессий
	sessions := auth.NewManager(
		cfg.Auth.AdminToken,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute,
	)

	// Инициализируем use cases
	submitLeadUseCase := submitLeadUC.NewUseCase(
		leadRepository,
		mailClient,
		submitLeadUC.NotificationConfig{
			From:            cfg.MailRelay.From,
			AdminRecipients: cfg.MailRelay.AdminRecipients,
		},
		log,
	)

	// Инициализируем handlers
	submitContact := submitContactHandler.NewHandler(submitLeadUseCase, log)
	getOccupiedDates := getOccupiedDatesHandler.NewHandler(occupiedDatesSvc, log)
	getCalendar := getCalendarHandler.NewHandler(occupiedDateRepository, log)
	adminLogin := adminLoginHandler.NewHandler(sessions, log)
	getLeads := getLeadsHandler.NewHandler(leadsSvc, log)
	getLead := getLeadHandler.NewHandler(leadsSvc, log)
	getLeadStats := getLeadStatsHandler.NewHandler(leadsSvc, log)
	updateLeadStatus := updateLeadStatusHandler.NewHandler(leadsSvc, log)
	deleteLead := deleteLeadHandler.NewHandler(leadsSvc, log)
	deleteLeads := deleteLeadsHandler.NewHandler(leadsSvc, log)
	addOccupiedDate := addOccupiedDateHandler.NewHandler(occupiedDatesSvc, log)
	removeOccupiedDate := removeOccupiedDateHandler.NewHandler(occupiedDatesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Отправка заявки с публичной формы
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)

	// Список занятых дат
	api.HandleFunc("/occupied-dates", getOccupiedDates.Handle).Methods(http.MethodGet)

	// Сетка календаря на месяц
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Вход в админку
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют действительной сессии)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(sessions))

	// --- Лиды ---
	// Список лидов с фильтрацией
	admin.HandleFunc("/leads", getLeads.Handle).Methods(http.MethodGet)

	// Сводная статистика по лидам
	admin.HandleFunc("/leads/stats", getLeadStats.Handle).Methods(http.MethodGet)

	// Карточка лида
	admin.HandleFunc("/leads/{leadId}", getLead.Handle).Methods(http.MethodGet)

	// Смена статуса лида
	admin.HandleFunc("/leads/{leadId}/status", updateLeadStatus.Handle).Methods(http.MethodPatch)

	// Удаление лида
	admin.HandleFunc("/leads/{leadId}", deleteLead.Handle).Methods(http.MethodDelete)

	// Массовое удаление лидов
	admin.HandleFunc("/leads/delete", deleteLeads.Handle).Methods(http.MethodPost)

	// --- Занятые даты ---
	// Пометить дату занятой
	admin.HandleFunc("/occupied-dates", addOccupiedDate.Handle).Methods(http.MethodPost)

	// Снять пометку с даты
	admin.HandleFunc("/occupied-dates/{date}", removeOccupiedDate.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
