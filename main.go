// file: main.go
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"guruku_backend/internals/configs"
	database "guruku_backend/internals/databases"
	bookingSvc "guruku_backend/internals/features/lessons/bookings/service"
	"guruku_backend/internals/middlewares"
	routes "guruku_backend/internals/route"
)

func main() {
	// 1) ENV
	configs.LoadEnv()

	// 2) Fiber app — JSON pakai sonic biar encode/decode cepat
	app := fiber.New(fiber.Config{
		AppName:      "Guruku Backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))
	app.Use(etag.New())

	// 3) Middleware dasar (recovery, cors, rate limit)
	middlewares.SetupMiddlewares(app)

	// 4) Database
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 5) Payment gateway
	if configs.PaymentDisabled {
		log.Println("⚠️ Midtrans TIDAK diinisialisasi (PAYMENT_GATEWAY_DISABLED)")
	} else {
		bookingSvc.InitMidtrans(configs.MidtransServerKey, configs.MidtransUseProd)
		log.Println("✅ Midtrans Snap client siap")
	}

	// 6) Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 7) Routes
	routes.SetupRoutes(app, database.DB)

	// 8) Start + graceful shutdown
	port := configs.GetEnv("PORT", "8080")
	go func() {
		log.Printf("🚀 Server jalan di port %s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Server berhenti: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⏳ Shutdown server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown err: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("👋 Server berhenti dengan rapi")
}
