package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"pickandtip/backend/internal/api/handler"
	"pickandtip/backend/internal/dataset"
	"pickandtip/backend/internal/livehub"
	"pickandtip/backend/internal/localization"
	"pickandtip/backend/internal/models"
	"pickandtip/backend/internal/notify"
	"pickandtip/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies() (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost user=user password=password dbname=pickandtip port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	if err := db.AutoMigrate(&models.ContactSubmission{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Pick & Tip Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set!")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// 1. Dependencies
	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	// 2. Datasets and translations. A failed initial load is terminal:
	// the API never serves partial data.
	loader := dataset.NewLoader(dataDir)
	store := dataset.NewStore()
	if err := store.Reload(loader); err != nil {
		log.Fatalf("Failed to load datasets: %v", err)
	}

	localizer, err := localization.NewLocalizer(loader.I18nDir())
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// 3. Live hub
	hub := livehub.NewManagerService()
	go hub.Run()

	// 4. Optional Telegram notifications
	var notifier *notify.Notifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_ADMIN_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_ADMIN_CHAT_ID is not a valid chat ID: %v", err)
		}
		notifier, err = notify.NewNotifier(token, chatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
	}

	// 5. Gin and routing
	r := gin.Default()
	h := handler.NewHandler(store, loader, localizer, s, hub, notifier, []byte(jwtSecret))

	r.GET("/api/anonid", h.GetAnonID)
	r.GET("/api/countries", h.GetCountries)
	r.GET("/api/i18n/:lang", h.GetDictionary)
	r.GET("/api/stats", h.GetStats)
	r.GET("/api/topics/:topic", h.GetTopicRows)
	r.POST("/api/contact", h.PostContact)
	r.GET("/api/preferences/language", h.GetLanguagePreference)
	r.PUT("/api/preferences/language", h.PutLanguagePreference)
	r.POST("/api/admin/reload", h.PostReload)
	r.GET("/ws", h.ServeWebSocket)

	server := &http.Server{
		Addr:           ":8080",
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
