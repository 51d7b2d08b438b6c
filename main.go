package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guregu/null/v5"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"civictrack/application/auth"
	"civictrack/application/complaints"
	"civictrack/application/health"
	"civictrack/common"
	"civictrack/middleware"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	logger := NewLogger()
	defer logger.Sync()

	db, err := setupDatabase()
	if err != nil {
		logger.Fatal("failed to setup database", zap.Error(err))
	}

	if err := db.AutoMigrate(&common.Complaint{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := seedData(db, logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	r := SetupRouter(db, logger)

	srv := &http.Server{
		Addr:         getEnv("HTTP_ADDR", ":8080"),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func NewLogger() *zap.Logger {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return zapLogger
}

// setupDatabase opens the backing store. SQLite is the default; set
// DB_DRIVER=mysql plus the DB_* variables for MySQL. TranslateError is on
// so the ticket_code unique index surfaces as gorm.ErrDuplicatedKey.
func setupDatabase() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}

	driver := getEnv("DB_DRIVER", "sqlite")
	switch driver {
	case "sqlite":
		dsn := getEnv("DB_DSN", "civictrack.db")
		db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect sqlite database: %w", err)
		}
		return db, nil

	case "mysql":
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "3306")
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		dbname := os.Getenv("DB_NAME")
		if user == "" || dbname == "" {
			return nil, fmt.Errorf("missing required mysql environment variables")
		}

		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, dbname)
		db, err := gorm.Open(mysql.Open(dsn), gormConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect mysql database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)

		return db, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// seedData inserts two demo complaints when the table is empty, going
// through the service so they get real ticket codes.
func seedData(db *gorm.DB, logger *zap.Logger) error {
	var count int64
	if err := db.Model(&common.Complaint{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger.Info("seeding database")
	svc := complaints.NewService(complaints.NewRepository(db), complaints.NewTicketCodeGenerator(), logger)

	seeds := []complaints.CreateComplaintPayload{
		{
			Name:        "John Doe",
			Mobile:      "9876543210",
			Category:    "Roads",
			Description: "Huge pothole on Main St near the post office.",
			Area:        "Downtown",
		},
		{
			Name:        "Jane Smith",
			Mobile:      "9123456780",
			Category:    "Water Supply",
			Description: "No water supply since yesterday morning.",
			Area:        "Uptown",
			Status:      null.StringFrom(common.StatusInProgress),
		},
	}
	for i := range seeds {
		if _, err := svc.Create(context.Background(), &seeds[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetupRouter wires the HTTP layer over the given database handle.
func SetupRouter(db *gorm.DB, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestInit())
	r.Use(middleware.RequestLogger(logger))

	healthRepo := health.NewRepository(db)
	healthSvc := health.NewService(healthRepo)
	healthHandler := health.NewHandler(healthSvc)

	complaintsRepo := complaints.NewRepository(db)
	complaintsSvc := complaints.NewService(complaintsRepo, complaints.NewTicketCodeGenerator(), logger)
	complaintsHandler := complaints.NewHandler(complaintsSvc)

	authSvc := auth.NewService(getEnv("AUTH_USERNAME", "admin"), getEnv("AUTH_PASSWORD", "admin"))
	authHandler := auth.NewHandler(authSvc)

	healthHandler.RegisterRoutes(r.Group(""))

	api := r.Group("/api")
	complaintsHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	return r
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
