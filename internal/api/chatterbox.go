package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/chatterhq/chatterbox/internal/config"
	"github.com/chatterhq/chatterbox/internal/database"
	"github.com/chatterhq/chatterbox/internal/metrics"
	"github.com/gorilla/handlers"
)

type ChatterboxApp struct {
	log *log.Logger
	db  database.ChatterboxRepository
	mux *http.Server
}

func NewChatterboxApp(mux *http.ServeMux, logger *log.Logger, db database.ChatterboxRepository, cfg *config.Config) *ChatterboxApp {
	s := &ChatterboxApp{
		log: logger,
		db:  db,
	}

	mux.HandleFunc("GET /healthz", s.healthCheck)
	mux.HandleFunc("GET /chatrooms", s.listChatRooms)
	mux.HandleFunc("GET /chatrooms/distinct", s.distinctCategories)
	mux.HandleFunc("GET /chatrooms/{id}", s.getChatRoom)
	mux.HandleFunc("POST /chatrooms", s.basicAuth(s.createChatRoom))
	mux.HandleFunc("PUT /chatrooms/{id}", s.basicAuth(s.updateChatRoom))
	mux.HandleFunc("DELETE /chatrooms/{id}", s.basicAuth(s.deleteChatRoom))
	mux.HandleFunc("GET /users", s.listUsers)
	mux.HandleFunc("POST /users", s.createUser)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	h := handlers.CORS(
		handlers.MaxAge(3600),
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Origin", "Content-Type", "Accept", "Authorization"}),
		handlers.AllowCredentials(),
	)(mux)

	h = s.httpMetrics(h)
	h = s.requestId(h)
	h = s.errorHandler(h)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: h,
	}

	s.mux = srv
	return s
}

func (s *ChatterboxApp) Start() error {
	s.log.Printf("starting server on %s\n", s.mux.Addr)
	return s.mux.ListenAndServe()
}

func (s *ChatterboxApp) Shutdown(ctx context.Context) error {
	s.log.Println("shutting down HTTP server...")
	if err := s.mux.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}
