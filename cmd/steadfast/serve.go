package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/steadfast/internal/api"
	"github.com/terraincognita07/steadfast/internal/db"
	"github.com/terraincognita07/steadfast/internal/logging"
)

const shutdownTimeout = 10 * time.Second

const accessLogFormat = "${time} | ${status} | ${latency} | ${ip} | ${method} ${path} | ${locals:requestid}\n"

func newServeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadServeConfig(cmd)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), config)
		},
	}
	command.Flags().String("port", "", "listen port (env PORT)")
	return command
}

func runServer(parent context.Context, config appConfig) error {
	output, err := logging.New(config.Logging, os.Stderr)
	if err != nil {
		return err
	}
	defer output.Close()
	log := output.Logger

	time.Local = config.Location

	config.Database.Logger = logging.GormWriter(log)
	database, err := db.Open(config.Database)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	handler, err := api.NewHandler(database, config.SecretKey, config.Location, config.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	handler.WithLogger(log)

	app := newServerApp(handler, output)

	if parent == nil {
		parent = context.Background()
	}
	sigCtx, stopSignals := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "err", err)
		}
	}()

	log.Info("steadfast listening",
		"addr", "0.0.0.0:"+config.Port,
		"db_driver", config.Database.Driver,
		"tz", config.Location.String(),
	)
	if err := app.Listen(":" + config.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func newServerApp(handler *api.Handler, output *logging.Output) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Steadfast",
		DisableStartupMessage: true,
		ErrorHandler:          jsonErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     accessLogFormat,
		TimeFormat: time.RFC3339,
		Output:     output.Writer,
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

// jsonErrorHandler keeps framework errors in the same {"error": ...} shape as
// handler errors.
func jsonErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
