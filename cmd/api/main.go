package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/config"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/handler"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/middleware"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/migrate"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/repository"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/service"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	st := openStore(ctx, cfg)

	if err := store.Seed(ctx, st); err != nil {
		slog.Error("seeding collections failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(st)
	sessionRepo := repository.NewSessionRepository(st)
	recipeRepo := repository.NewRecipeRepository(st)
	favoriteRepo := repository.NewFavoriteRepository(st)

	authService := service.NewAuthService(userRepo, sessionRepo, cfg.JWTSecret, cfg.JWTExpiry)
	recipeService := service.NewRecipeService(recipeRepo, favoriteRepo)

	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Get("/api/v1/recipes", recipeHandler.HandleList)
	r.Get("/api/v1/recipes/{recipe_id}", recipeHandler.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)
		r.Post("/api/v1/auth/logout", authHandler.HandleLogout)

		r.Post("/api/v1/recipes", recipeHandler.HandleCreate)
		r.Patch("/api/v1/recipes/{recipe_id}", recipeHandler.HandleUpdate)
		r.Delete("/api/v1/recipes/{recipe_id}", recipeHandler.HandleDelete)

		r.Get("/api/v1/favorites", recipeHandler.HandleListFavorites)
		r.Post("/api/v1/favorites/{recipe_id}", recipeHandler.HandleAddFavorite)
		r.Delete("/api/v1/favorites/{recipe_id}", recipeHandler.HandleRemoveFavorite)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openStore opens the configured backend, falling back to the
// in-memory store when the database is unreachable so the API stays
// usable in development.
func openStore(ctx context.Context, cfg config.Config) store.Store {
	if cfg.StoreBackend != "mysql" {
		slog.Info("using in-memory store")
		return store.NewMemory()
	}

	mysqlStore, err := store.OpenMySQL(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, falling back to in-memory store", "error", err)
		return store.NewMemory()
	}

	if err := migrate.Up(ctx, mysqlStore.DB()); err != nil {
		slog.Error("running migrations failed", "error", err)
		os.Exit(1)
	}

	return mysqlStore
}
