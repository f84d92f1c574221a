package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fulfillment/cmd"
	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/employeerepo"
	"fulfillment/internal/adapters/out/postgres/inventoryrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/rosterrepo"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Policy defaults used when the environment leaves a knob unset.
const (
	defaultInventoryCapacity   = 20
	defaultWindowLengthMinutes = 60
	defaultMinHeadcount        = 5
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		InventoryDefaultCapacity: goDotEnvIntVariable("INVENTORY_DEFAULT_CAPACITY", defaultInventoryCapacity),
		InventoryWindowLength:    time.Duration(goDotEnvIntVariable("INVENTORY_WINDOW_MINUTES", defaultWindowLengthMinutes)) * time.Minute,
		RosterMinHeadcount:       goDotEnvIntVariable("ROSTER_MIN_HEADCOUNT", defaultMinHeadcount),
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

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&inventoryrepo.InventoryWindowDTO{},
		&rosterrepo.DutyAssignmentDTO{},
		&catalogrepo.DinnerDTO{},
		&catalogrepo.DinnerComponentDTO{},
		&catalogrepo.MenuItemDTO{},
		&employeerepo.EmployeeDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateModifyOrderItemsCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateAssignOrderStaffCommandHandler(),
		app.CreateRestockInventoryCommandHandler(),
		app.CreateAssignDailyRosterCommandHandler(),
		app.CreateCheckInventoryAvailabilityQueryHandler(),
		app.CreateCheckAvailabilityBatchQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateGetInventorySnapshotQueryHandler(),
		app.CreateGetDayRosterQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
