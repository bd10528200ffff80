package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/devlink/devlink/internal/api/ratelimit"
	"github.com/devlink/devlink/internal/api/recovery"
	"github.com/devlink/devlink/internal/auth"
	"github.com/devlink/devlink/internal/config"
	"github.com/devlink/devlink/internal/github"
	"github.com/devlink/devlink/internal/health"
	"github.com/devlink/devlink/internal/metrics"
	"github.com/devlink/devlink/internal/services"
	"github.com/devlink/devlink/internal/store"
)

// Deps carries everything the router needs wired up by main.
type Deps struct {
	Config   *config.Config
	Store    store.Store
	Tokens   *auth.TokenService
	Monitor  *health.Monitor
	Log      zerolog.Logger
	Metrics  prometheus.Registerer
	Gatherer prometheus.Gatherer
}

// NewRouter builds the full HTTP surface: public credential routes,
// token-gated profile and post routes, and operational endpoints.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	router.Use(recovery.Middleware)
	if d.Metrics != nil {
		collector := metrics.NewCollector(d.Metrics)
		router.Use(collector.Middleware)
	}

	authSvc := services.NewAuthService(d.Store, d.Tokens)
	postSvc := services.NewPostService(d.Store)
	profileSvc := services.NewProfileService(d.Store)
	ghClient := github.NewClient(d.Config.GithubAPIURL, d.Config.GithubToken)

	userHandler := NewUserHandler(authSvc)
	authHandler := NewAuthHandler(authSvc)
	postHandler := NewPostHandler(postSvc)
	profileHandler := NewProfileHandler(profileSvc, ghClient)
	healthHandler := NewHealthHandler(d.Monitor)

	requireToken := auth.Middleware(d.Tokens)
	limiter := ratelimit.New(d.Config.AuthRatePerMinute, d.Log)
	limited := func(h http.HandlerFunc) http.Handler {
		return limiter.Middleware(h)
	}

	// Operational endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/db", healthHandler.CheckStoreHealth).Methods("GET")
	router.HandleFunc("/api/health/ready", healthHandler.CheckReadiness).Methods("GET")
	if d.Gatherer != nil {
		router.Handle("/metrics", metrics.Handler(d.Gatherer)).Methods("GET")
	}

	// Credential endpoints, public, rate-limited per client IP
	router.Handle("/api/users", limited(userHandler.Register)).Methods("POST")
	router.Handle("/api/auth", limited(authHandler.Login)).Methods("POST")
	router.Handle("/api/auth", requireToken(http.HandlerFunc(authHandler.Current))).Methods("GET")

	// Profile endpoints
	router.Handle("/api/profile/me", requireToken(http.HandlerFunc(profileHandler.GetMine))).Methods("GET")
	router.Handle("/api/profile", requireToken(http.HandlerFunc(profileHandler.Upsert))).Methods("POST")
	router.HandleFunc("/api/profile", profileHandler.List).Methods("GET")
	router.HandleFunc("/api/profile/user/{userID}", profileHandler.GetByUser).Methods("GET")
	router.Handle("/api/profile", requireToken(http.HandlerFunc(profileHandler.DeleteAccount))).Methods("DELETE")
	router.Handle("/api/profile/experience", requireToken(http.HandlerFunc(profileHandler.AddExperience))).Methods("PUT")
	router.Handle("/api/profile/experience/{expID}", requireToken(http.HandlerFunc(profileHandler.RemoveExperience))).Methods("DELETE")
	router.Handle("/api/profile/education", requireToken(http.HandlerFunc(profileHandler.AddEducation))).Methods("PUT")
	router.Handle("/api/profile/education/{eduID}", requireToken(http.HandlerFunc(profileHandler.RemoveEducation))).Methods("DELETE")
	router.HandleFunc("/api/profile/github/{username}", profileHandler.GithubRepos).Methods("GET")

	// Post endpoints
	router.Handle("/api/posts", requireToken(http.HandlerFunc(postHandler.Create))).Methods("POST")
	router.Handle("/api/posts", requireToken(http.HandlerFunc(postHandler.List))).Methods("GET")
	router.Handle("/api/posts/{id}", requireToken(http.HandlerFunc(postHandler.Get))).Methods("GET")
	router.Handle("/api/posts/{id}", requireToken(http.HandlerFunc(postHandler.Delete))).Methods("DELETE")
	router.Handle("/api/posts/like/{id}", requireToken(http.HandlerFunc(postHandler.ToggleLike))).Methods("PUT")
	router.Handle("/api/posts/comment/{id}", requireToken(http.HandlerFunc(postHandler.AddComment))).Methods("POST")
	router.Handle("/api/posts/comment/{id}/{commentID}", requireToken(http.HandlerFunc(postHandler.RemoveComment))).Methods("DELETE")

	return router
}
