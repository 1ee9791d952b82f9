package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/auditrepo"
	"fulfillment/internal/adapters/out/postgres/earningsrepo"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/qcrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	config := getConfig()

	db := connectDB(config)

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func getConfig() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envVar("HTTP_PORT"),
		DBHost:     envVar("DB_HOST"),
		DBPort:     envVar("DB_PORT"),
		DBUser:     envVar("DB_USER"),
		DBPassword: envVar("DB_PASSWORD"),
		DBName:     envVar("DB_NAME"),
		DBSslMode:  envVar("DB_SSLMODE"),

		KafkaHost:             envVar("KAFKA_HOST"),
		KafkaStatusEventTopic: envVar("KAFKA_ORDER_STATUS_TOPIC"),

		OfferTTL:    envDuration("OFFER_TTL"),
		ReworkLimit: int(envInt("REWORK_LIMIT")),

		BasePayCents:       envInt("BASE_PAY_CENTS"),
		PerUnitBonusCents:  envInt("PER_UNIT_BONUS_CENTS"),
		ReworkPenaltyCents: envInt("REWORK_PENALTY_CENTS"),
	}
}

func envVar(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("environment variable %s is not set", key)
	}
	return value
}

func envInt(key string) int64 {
	value, err := strconv.ParseInt(envVar(key), 10, 64)
	if err != nil {
		log.Fatalf("environment variable %s is not an integer: %v", key, err)
	}
	return value
}

func envDuration(key string) time.Duration {
	value, err := time.ParseDuration(envVar(key))
	if err != nil {
		log.Fatalf("environment variable %s is not a duration: %v", key, err)
	}
	return value
}

func connectDB(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.DeclineDTO{},
		&inventoryrepo.ItemDTO{},
		&earningsrepo.RecordDTO{},
		&qcrepo.RecordDTO{},
		&auditrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(root.CreateServerHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
