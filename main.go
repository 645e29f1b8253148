package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/azazahmad08/kayesbackend/cache"
	"github.com/azazahmad08/kayesbackend/config"
	"github.com/azazahmad08/kayesbackend/logging"
	"github.com/azazahmad08/kayesbackend/middleware"
	"github.com/azazahmad08/kayesbackend/models"
	"github.com/azazahmad08/kayesbackend/orders"
	"github.com/azazahmad08/kayesbackend/routes"
	"github.com/azazahmad08/kayesbackend/store"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Init(cfg.App.Name, cfg.Log.File)
	logger.Info("starting application", "http_addr", cfg.App.HTTPAddr)

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Color{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("automigrate failed: %v", err)
	}

	// Optional Redis-backed dashboard cache
	var statsCache *cache.StatsCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
		})
		statsCache = cache.NewStatsCache(rdb, cfg.Redis.StatsTTL)
		logger.Info("dashboard cache enabled", "redis_addr", cfg.Redis.Addr)
	}

	// Gin setup
	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.From(c).Error("panic recovered", "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			gin.H{"message": "internal server error"})
	}))
	r.Use(middleware.RequestLogger(logging.New("http")))
	r.Use(middleware.Metrics())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.Uploads.Dir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Wire stores and the order workflow explicitly
	catalog := store.NewCatalogStore(db)
	orderStore := store.NewOrderStore(db)
	orderService := orders.NewService(catalog, orderStore, logging.New("orders"))

	routes.SetupRoutes(r, routes.Deps{
		Orders:     orderService,
		OrderStore: orderStore,
		Catalog:    catalog,
		Colors:     store.NewColorStore(db),
		Dashboard:  store.NewDashboard(db),
		Stats:      statsCache,
		UploadsDir: cfg.Uploads.Dir,
	})

	// Daily uploads backup at 2 AM, pruning old backups per retention
	go startDailyBackupAtFixedTime(cfg.Uploads.Dir, cfg.Uploads.BackupDir,
		cfg.Uploads.BackupRetention, 2, 0)

	logger.Info("server listening", "addr", cfg.App.HTTPAddr)
	if err := r.Run(cfg.App.HTTPAddr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("db connection failed: %v", err)
		}
		return db
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connection failed: %v", err)
	}
	return db
}
