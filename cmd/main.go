package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"article_board/internal/handlers"
	"article_board/internal/logger"
	"article_board/internal/repository"
	"article_board/internal/repository/db"
	"article_board/internal/server"
	"article_board/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// optional .env for local runs, then config.yml + environment
	if err := godotenv.Load(); err != nil {
		log.Infow("no .env file found; relying on environment")
	}
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// the signing secret is loaded exactly once here; running without it
	// would issue unverifiable tokens, so treat absence as misconfiguration
	secret := viper.GetString("jwt.secret")
	if secret == "" {
		log.Fatalw("JWT_SECRET is not set")
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: secret,
		TokenTTL:   time.Hour,
	})
	apiHandler := handlers.NewHandler(services, log, viper.GetStringSlice("cors.allowed_origins"))

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.BindEnv("jwt.secret", "JWT_SECRET"); err != nil {
		return err
	}
	if err := viper.BindEnv("port", "PORT"); err != nil {
		return err
	}
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "articles.db")
		dbPath = "articles.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
