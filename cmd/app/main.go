package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"resumeflow/cmd"
	httpin "resumeflow/internal/adapters/in/http"
	"resumeflow/internal/adapters/out/postgres/automationrepo"
	"resumeflow/internal/adapters/out/postgres/contactrepo"
	"resumeflow/internal/adapters/out/postgres/feedrepo"
	"resumeflow/internal/adapters/out/postgres/resumerepo"
	"resumeflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(app.CreateDispatchDueResumesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		IntakeURL:            goDotEnvVariable("INTAKE_URL"),
		ObjectStoreURL:       goDotEnvVariable("OBJECT_STORE_URL"),
		ObjectStoreAuthToken: goDotEnvVariable("OBJECT_STORE_AUTH_TOKEN"),
		DispatchWorkers:      intEnvVariable("DISPATCH_WORKERS"),
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

// intEnvVariable reads an optional integer setting. Zero means "use the
// handler default".
func intEnvVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer value for %s: %v", key, err)
	}
	return value
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&automationrepo.SettingDTO{},
		&resumerepo.ResumeDTO{},
		&contactrepo.ProfileDTO{},
		&feedrepo.SourceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateDispatchDueResumesCommandHandler(),
		app.CreateUploadResumeCommandHandler(),
		app.CreateDeleteResumeCommandHandler(),
		app.CreateSaveAutomationSettingCommandHandler(),
		app.CreateSaveContactProfileCommandHandler(),
		app.CreateAddFeedSourceCommandHandler(),
		app.CreateSendResumeCommandHandler(),
		app.CreateGetResumesQueryHandler(),
		app.CreateGetFeedSourcesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
