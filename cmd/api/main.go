package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-material-trade/internal/config"
	"go-material-trade/internal/handler"
	"go-material-trade/internal/model"
	"go-material-trade/internal/repository"
	"go-material-trade/internal/service"
	"go-material-trade/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	// Schema lifecycle is create/alter on boot, nothing more
	if err := db.AutoMigrate(&model.Material{}, &model.User{}, &model.Transaction{}); err != nil {
		log.Fatal("Failed to migrate schema: ", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	materialRepo := repository.NewMaterialRepo(db)
	userRepo := repository.NewUserRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	materialService := service.NewMaterialService(materialRepo)
	userService := service.NewUserService(userRepo)
	txService := service.NewTransactionService(txRepo)

	materialHandler := handler.NewMaterialHandler(materialService)
	userHandler := handler.NewUserHandler(userService)
	txHandler := handler.NewTransactionHandler(txService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	// Middleware
	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Limiter.Max,
		Expiration: cfg.Limiter.Window,
	}))

	// 5. Routes
	app.Post("/materials", materialHandler.Create)
	app.Get("/materials", materialHandler.List)
	app.Get("/materials/:id", materialHandler.Get)
	app.Put("/materials/:id", materialHandler.Update)
	app.Delete("/materials/:id", materialHandler.Delete)

	app.Post("/users", userHandler.Create)
	app.Get("/users", userHandler.List)
	app.Get("/users/:id", userHandler.Get)
	app.Put("/users/:id", userHandler.Update)
	app.Delete("/users/:id", userHandler.Delete)

	app.Post("/transactions", txHandler.Create)
	app.Get("/transactions", txHandler.List)
	app.Get("/transactions/:id", txHandler.Get)
	app.Put("/transactions/:id", txHandler.Update)
	app.Delete("/transactions/:id", txHandler.Delete)

	// 6. Graceful Shutdown
	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.App.Port)); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}
	if err := database.Close(db); err != nil {
		log.Println("Warning: failed to close database: ", err)
	}

	log.Println("Server exited")
}
