package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	notifier := createNotifier(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, logger)

	jobManager := jobs.NewJobManager(app.CreateAssignAgentCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaAgentAssignedTopic: goDotEnvVariable("KAFKA_AGENT_ASSIGNED_TOPIC"),
		SearchRadiusMeters:      goDotEnvVariable("SEARCH_RADIUS_METERS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

// createNotifier builds the Kafka notification sink. With no Kafka host
// configured the service runs without assignment notifications.
func createNotifier(configs cmd.Config, logger *slog.Logger) ports.NotificationSink {
	if configs.KafkaHost == "" {
		logger.Info("Kafka host not configured, assignment notifications disabled")
		return nil
	}

	notifier, err := kafka.NewNotificationSink(
		strings.Split(configs.KafkaHost, ","), configs.KafkaAgentAssignedTopic)
	if err != nil {
		log.Fatalf("Failed to create Kafka notification sink: %v", err)
	}
	return notifier
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateRestaurantCommandHandler(),
		app.CreateCreateZoneCommandHandler(),
		app.CreateDeleteZoneCommandHandler(),
		app.CreateCreateAgentCommandHandler(),
		app.CreateUpdateAgentAvailabilityCommandHandler(),
		app.CreateMoveAgentCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetAllAgentsQueryHandler(),
		app.CreateGetUncompletedOrdersQueryHandler(),
		app.CreateGetZonesByRestaurantQueryHandler(),
		app.CreateCheckServabilityQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
