package api

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/moodmate/backend/internal/ai"
	"github.com/moodmate/backend/internal/api/middleware"
	"github.com/moodmate/backend/internal/api/recovery"
	"github.com/moodmate/backend/internal/auth"
	"github.com/moodmate/backend/internal/config"
	"github.com/moodmate/backend/internal/health"
	"github.com/moodmate/backend/internal/services"
	"github.com/moodmate/backend/internal/store"
)

// NewRouter wires domain services onto the HTTP routes.
func NewRouter(cfg *config.Config, st store.Store, aiSvc *ai.Service, serviceHealth *health.ServiceHealthChecker, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	metrics := middleware.NewMetrics()
	registry := prometheus.NewRegistry()
	if err := metrics.Register(registry); err != nil {
		log.Error().Err(err).Msg("failed to register http metrics")
	} else {
		router.Use(middleware.HTTPMetrics(metrics))
	}

	// Domain services
	tokens := auth.NewAdminTokenService(cfg.JWTSecret, time.Duration(cfg.AdminTokenTTLHours)*time.Hour)
	userSvc := services.NewUserService(st)
	moodSvc := services.NewMoodService(st)
	convSvc := services.NewConversationService(st, aiSvc, log)
	journalSvc := services.NewJournalService(st, aiSvc, log)
	interventionSvc := services.NewInterventionService(st)
	crisisSvc := services.NewCrisisService(st)
	analyticsSvc := services.NewAnalyticsService(st, log)

	// Handlers
	healthHandler := NewHealthHandler(serviceHealth, st)
	userHandler := NewUserHandler(userSvc, moodSvc, tokens, cfg)
	convHandler := NewConversationHandler(convSvc)
	wellnessHandler := NewWellnessHandler(moodSvc, journalSvc, interventionSvc, analyticsSvc)
	adminHandler := NewAdminHandler(analyticsSvc, crisisSvc, tokens)

	// Health and metrics
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/db", healthHandler.CheckStoreHealth).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods("GET")

	// Auth and personas
	router.HandleFunc("/api/auth/user", userHandler.UpsertAuthUser).Methods("POST")
	router.HandleFunc("/api/auth/user", userHandler.GetAuthUser).Methods("GET")
	router.HandleFunc("/api/admin/login", userHandler.AdminLogin).Methods("POST")
	router.HandleFunc("/api/personas", userHandler.ListPersonas).Methods("GET")
	router.HandleFunc("/api/user/persona", userHandler.UpdatePersona).Methods("PUT")

	// Conversations
	router.HandleFunc("/api/conversations", convHandler.CreateConversation).Methods("POST")
	router.HandleFunc("/api/conversations", convHandler.ListConversations).Methods("GET")
	router.HandleFunc("/api/conversations/{conversationId}", convHandler.GetConversation).Methods("GET")
	router.HandleFunc("/api/conversations/{conversationId}/messages", convHandler.SendMessage).Methods("POST")

	// Mood tracking
	router.HandleFunc("/api/mood-entries", wellnessHandler.CreateMoodEntry).Methods("POST")
	router.HandleFunc("/api/mood-entries", wellnessHandler.ListMoodEntries).Methods("GET")
	router.HandleFunc("/api/mood-entries/latest", wellnessHandler.LatestMoodEntry).Methods("GET")

	// Journaling
	router.HandleFunc("/api/journal-entries", wellnessHandler.CreateJournalEntry).Methods("POST")
	router.HandleFunc("/api/journal-entries", wellnessHandler.ListJournalEntries).Methods("GET")
	router.HandleFunc("/api/journal-entries/{entryId}", wellnessHandler.GetJournalEntry).Methods("GET")
	router.HandleFunc("/api/journal-prompts", wellnessHandler.JournalPrompts).Methods("POST")

	// Interventions
	router.HandleFunc("/api/interventions", wellnessHandler.CreateIntervention).Methods("POST")
	router.HandleFunc("/api/interventions", wellnessHandler.ListInterventions).Methods("GET")
	router.HandleFunc("/api/interventions/{interventionId}/complete", wellnessHandler.CompleteIntervention).Methods("POST")

	// User dashboard and notifications
	router.HandleFunc("/api/analytics/dashboard", wellnessHandler.Dashboard).Methods("GET")
	router.HandleFunc("/api/notifications", userHandler.ListNotifications).Methods("GET")

	// Admin (JWT-guarded)
	router.HandleFunc("/api/admin/analytics", adminHandler.GetAnalytics).Methods("GET")
	router.HandleFunc("/api/admin/users/risk-assessment", adminHandler.GetRiskAssessment).Methods("GET")
	router.HandleFunc("/api/admin/crisis-alerts", adminHandler.ListCrisisAlerts).Methods("GET")
	router.HandleFunc("/api/admin/crisis-alerts/{alertId}", adminHandler.UpdateCrisisAlert).Methods("PUT")

	return router
}
