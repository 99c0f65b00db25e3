package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ruboard/cmd"
	httpin "ruboard/internal/adapters/in/http"
	postgresadapter "ruboard/internal/adapters/out/postgres"
	"ruboard/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	envFile := flag.String("env", ".env", "path to the .env file")
	flag.Parse()

	configs, err := cmd.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(configs.LogLevel, configs.LogFormat)

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if configs.DBAutoMigrate {
		if err = postgresadapter.Migrate(gormDB); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
	}

	rdb, err := redisClient(configs, logger)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, rdb)
	startWebServer(&app, configs.HTTPPort, logger)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// redisClient returns nil when no address is configured.
func redisClient(configs cmd.Config, logger logrus.FieldLogger) (redis.UniversalClient, error) {
	if configs.RedisAddress == "" {
		logging.Component(logger, "app").Warn("REDIS_ADDRESS is empty, order locks are process-local")
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: configs.RedisAddress})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *logrus.Logger) {
	doc, err := httpin.LoadOpenAPI()
	if err != nil {
		log.Fatalf("%v", err)
	}
	e, err := httpin.NewEcho(app.NewHTTPServer(), logger, doc)
	if err != nil {
		log.Fatalf("build http server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Component(logger, "app").WithField("port", port).Info("http server starting")
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.LogError(logger, "app", "startWebServer", "shutdown", nil, err)
	}
}
