package main

import (
	"log"
	"time"

	"pos_manager/internal/config"
	"pos_manager/internal/database"
	"pos_manager/internal/handlers"
	"pos_manager/internal/migrations"
	"pos_manager/internal/redis"
	"pos_manager/internal/repository"
	"pos_manager/internal/services"
	"pos_manager/pkg/webhook"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if cfg.SeedData {
		if err := migrations.Seed(db); err != nil {
			log.Printf("Warning: failed to seed default data: %v", err)
		}
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Optional webhook for low stock alerts
	var alertClient *webhook.Client
	if cfg.AlertWebhookURL != "" {
		alertClient = webhook.NewClient(cfg.AlertWebhookURL, cfg.AlertWebhookUser, cfg.AlertWebhookPass)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	transactionRepo := repository.NewPaymentTransactionRepository(db)
	compensationRepo := repository.NewCompensationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	// Initialize services
	notificationService := services.NewNotificationService(cfg.NotificationSize, alertClient)
	menuService := services.NewMenuService(menuRepo, redisClient, time.Duration(cfg.MenuCacheTTL)*time.Second)
	branchService := services.NewBranchService(branchRepo)
	customerService := services.NewCustomerService(customerRepo)
	inventoryService := services.NewInventoryService(inventoryRepo, branchRepo, notificationService)
	loyaltyService := services.NewLoyaltyService(loyaltyRepo)
	paymentService := services.NewPaymentService(transactionRepo)
	orderService := services.NewOrderService(
		orderRepo, customerRepo, branchRepo, compensationRepo,
		menuService, inventoryService, loyaltyService, paymentService, notificationService,
	)

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	catalogHandler := handlers.NewCatalogHandler(menuService, branchService, customerService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/statistics", orderHandler.GetStatistics)
		api.GET("/orders/compensations", orderHandler.GetCompensations)
		api.GET("/orders/:id", orderHandler.GetOrder)
		api.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		api.POST("/orders/:id/cancel", orderHandler.CancelOrder)

		api.GET("/inventory", inventoryHandler.ListAll)
		api.GET("/inventory/low-stock", inventoryHandler.ListLowStock)
		api.GET("/inventory/branch/:branchId", inventoryHandler.ListByBranch)
		api.POST("/inventory/restock", inventoryHandler.Restock)
		api.PUT("/inventory/threshold", inventoryHandler.UpdateThreshold)

		api.GET("/loyalty", loyaltyHandler.ListAccounts)
		api.GET("/loyalty/top", loyaltyHandler.TopMembers)
		api.GET("/loyalty/customer/:customerId", loyaltyHandler.GetBalance)

		api.GET("/payments/statistics", paymentHandler.GetStatistics)
		api.GET("/payments/order/:orderId", paymentHandler.GetTransactionsByOrder)
		api.GET("/payments/:id", paymentHandler.GetTransaction)

		api.GET("/menu", catalogHandler.ListMenuItems)
		api.POST("/menu", catalogHandler.CreateMenuItem)
		api.GET("/menu/:id", catalogHandler.GetMenuItem)
		api.GET("/branches", catalogHandler.ListBranches)
		api.POST("/branches", catalogHandler.CreateBranch)
		api.GET("/customers", catalogHandler.ListCustomers)
		api.POST("/customers", catalogHandler.CreateCustomer)

		api.GET("/notifications", notificationHandler.Recent)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
