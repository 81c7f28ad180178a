// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the composition root: the in-memory DB, the services, the GraphQL
// schema, and the handlers are all wired together here, so main.go stays
// minimal and every other package receives its dependencies explicitly.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kmalikov/social-api/internal/config"
	"github.com/kmalikov/social-api/internal/graph"
	"github.com/kmalikov/social-api/internal/handler"
	"github.com/kmalikov/social-api/internal/middleware"
	"github.com/kmalikov/social-api/internal/service"
	"github.com/kmalikov/social-api/internal/store"
)

// Server represents the HTTP server and all its dependencies. It owns the
// single in-memory DB for the process lifetime — the data layer needs no
// teardown beyond process exit.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *store.DB
}

// New creates a new Server with the given config and wires the full
// dependency chain: store.DB → services → schema/handlers → routes.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     store.New(nil),
	}

	if err := s.setupRoutes(); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}
	return s, nil
}

// setupRoutes configures middleware and all route handlers.
//
// ROUTE STRUCTURE:
//
//	GET    /api/users                       list users
//	POST   /api/users                       create user
//	GET    /api/users/full                  aggregated view of all users
//	GET    /api/users/{id}                  get user
//	PATCH  /api/users/{id}                  update user
//	DELETE /api/users/{id}                  delete user (returns removed record)
//	GET    /api/users/{id}/full             aggregated view of one user
//	POST   /api/users/{id}/subscribeTo      add subscription edge
//	POST   /api/users/{id}/unsubscribeFrom  remove subscription edge
//	GET/POST /api/profiles, GET/PATCH/DELETE /api/profiles/{id}
//	GET/POST /api/posts,    GET/PATCH/DELETE /api/posts/{id}
//	GET /api/member-types,  GET/PATCH /api/member-types/{id}
//	POST   /api/graphql                     GraphQL endpoint
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	userService := service.NewUserService(s.db, s.logger)
	profileService := service.NewProfileService(s.db, s.logger)
	postService := service.NewPostService(s.db, s.logger)
	memberTypeService := service.NewMemberTypeService(s.db, s.logger)
	resolver := service.NewResolver(s.db, s.logger)

	schema, err := graph.NewSchema(graph.Services{
		Users:       userService,
		Profiles:    profileService,
		Posts:       postService,
		MemberTypes: memberTypeService,
		Resolver:    resolver,
	})
	if err != nil {
		return fmt.Errorf("building graphql schema: %w", err)
	}

	userHandler := handler.NewUserHandler(userService, resolver, s.logger)
	profileHandler := handler.NewProfileHandler(profileService, s.logger)
	postHandler := handler.NewPostHandler(postService, s.logger)
	memberTypeHandler := handler.NewMemberTypeHandler(memberTypeService, s.logger)
	graphqlHandler := handler.NewGraphQLHandler(schema, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.HandleList)
			r.Post("/", userHandler.HandleCreate)
			r.Get("/full", userHandler.HandleListFull)
			r.Get("/{id}", userHandler.HandleGetByID)
			r.Patch("/{id}", userHandler.HandleUpdate)
			r.Delete("/{id}", userHandler.HandleDelete)
			r.Get("/{id}/full", userHandler.HandleGetFull)
			r.Post("/{id}/subscribeTo", userHandler.HandleSubscribe)
			r.Post("/{id}/unsubscribeFrom", userHandler.HandleUnsubscribe)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", profileHandler.HandleList)
			r.Post("/", profileHandler.HandleCreate)
			r.Get("/{id}", profileHandler.HandleGetByID)
			r.Patch("/{id}", profileHandler.HandleUpdate)
			r.Delete("/{id}", profileHandler.HandleDelete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.HandleList)
			r.Post("/", postHandler.HandleCreate)
			r.Get("/{id}", postHandler.HandleGetByID)
			r.Patch("/{id}", postHandler.HandleUpdate)
			r.Delete("/{id}", postHandler.HandleDelete)
		})

		r.Route("/member-types", func(r chi.Router) {
			r.Get("/", memberTypeHandler.HandleList)
			r.Get("/{id}", memberTypeHandler.HandleGetByID)
			r.Patch("/{id}", memberTypeHandler.HandleUpdate)
		})

		r.Post("/graphql", graphqlHandler.HandleQuery)
	})

	return nil
}

// Start starts the HTTP server and blocks until shutdown. On SIGINT/SIGTERM
// in-flight requests get 30 seconds to drain; the in-memory data is gone
// with the process, which is the documented lifecycle.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
