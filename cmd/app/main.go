package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/hueyvil/inkpost/internal/blogservice"
	"github.com/hueyvil/inkpost/internal/common"
	"github.com/hueyvil/inkpost/internal/session"
	"github.com/hueyvil/inkpost/internal/userservice"
	"github.com/hueyvil/inkpost/internal/view"
)

type application struct {
	config      *Config
	logger      *slog.Logger
	userService *userservice.UserService
	blogService *blogservice.BlogService
	sessions    *session.Manager
	view        view.Renderer
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.SessionSecret == "" {
		logger.Error("SESSION_SECRET must be set")
		os.Exit(1)
	}

	db, err := common.NewDB(cfg.DatabaseDSN, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	// Create the schema if it is not there yet.
	if err := common.MigrateUp("file://migrations", cfg.DatabaseDSN); err != nil {
		logger.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		logger.Error("failed to parse templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db),
		blogService: blogservice.NewBlogService(db),
		sessions:    session.NewManager(cfg.SessionSecret),
		view:        renderer,
	}

	if err := app.serve(cfg.Port); err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
