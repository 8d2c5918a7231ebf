package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"
	"gorm.io/gorm"

	"shikshaksangh_backend/internals/configs"
	database "shikshaksangh_backend/internals/databases"
	adminService "shikshaksangh_backend/internals/features/users/admin/service"
	mailer "shikshaksangh_backend/internals/helpers/mailer"
	middlewares "shikshaksangh_backend/internals/middlewares"
	routes "shikshaksangh_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		BodyLimit:               10 * 1024 * 1024, // multipart uploads (voucher/certificate)
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()
	if err := database.MigrateAll(database.DB); err != nil {
		log.Fatalf("migrate error: %v", err)
	}

	app.Use(middlewares.DBMiddleware(database.DB))

	mailer.Init()

	// optional admin bootstrap via ADMIN_SEED_EMAIL / ADMIN_SEED_PASSWORD
	if err := adminService.SeedFromEnv(database.DB); err != nil {
		log.Printf("[WARN] admin seed: %v", err)
	}

	// uploaded artifacts are served back as static files
	app.Static("/uploads", configs.UploadRoot())

	app.Get("/health", func(c *fiber.Ctx) error {
		if db, ok := c.Locals("db").(*gorm.DB); ok {
			sqlDB, err := db.DB()
			if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
				return c.Status(fiber.StatusServiceUnavailable).SendString("db down")
			}
		}
		return c.SendString("ok")
	})

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
