package main

import (
	"context"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/tyrehub/tyrehub/internal/pkg/config"
	"github.com/tyrehub/tyrehub/internal/pkg/database"
	"github.com/tyrehub/tyrehub/internal/pkg/health"
	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/internal/pkg/middleware"
	"github.com/tyrehub/tyrehub/internal/pkg/nsq"
	"github.com/tyrehub/tyrehub/internal/pkg/retry"
	"github.com/tyrehub/tyrehub/internal/pkg/server"

	appointmentsgateway "github.com/tyrehub/tyrehub/services/appointments/gateway"
	appointmentshandler "github.com/tyrehub/tyrehub/services/appointments/handler"
	appointmentsrepo "github.com/tyrehub/tyrehub/services/appointments/repository"
	appointmentsuc "github.com/tyrehub/tyrehub/services/appointments/usecase"
	authhandler "github.com/tyrehub/tyrehub/services/auth/handler"
	authrepo "github.com/tyrehub/tyrehub/services/auth/repository"
	authuc "github.com/tyrehub/tyrehub/services/auth/usecase"
	emergencygateway "github.com/tyrehub/tyrehub/services/emergency/gateway"
	emergencyhandler "github.com/tyrehub/tyrehub/services/emergency/handler"
	emergencyrepo "github.com/tyrehub/tyrehub/services/emergency/repository"
	emergencyuc "github.com/tyrehub/tyrehub/services/emergency/usecase"
	shopshandler "github.com/tyrehub/tyrehub/services/shops/handler"
	shopsrepo "github.com/tyrehub/tyrehub/services/shops/repository"
	shopsuc "github.com/tyrehub/tyrehub/services/shops/usecase"
	vehicleshandler "github.com/tyrehub/tyrehub/services/vehicles/handler"
	vehiclesrepo "github.com/tyrehub/tyrehub/services/vehicles/repository"
	vehiclesuc "github.com/tyrehub/tyrehub/services/vehicles/usecase"
)

const serviceName = "tyrehub-api"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.InitConfig(configPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.NewAppLogger(cfg.Logger, serviceName)
	if err != nil {
		panic(err)
	}
	defer log.Close()

	pg, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pg.Close()

	rdb, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	defer rdb.Close()

	producer, err := nsq.NewProducer(cfg.NSQ.Address, log.Logger)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to nsq")
	}
	defer producer.Stop()

	db := pg.GetDB()
	authRepo := authrepo.NewAuthRepo(db)
	shopRepo := shopsrepo.NewShopRepo(db)
	shopCache := shopsrepo.NewShopCache(rdb)
	requestRepo := emergencyrepo.NewRequestRepo(db)
	vehicleRepo := vehiclesrepo.NewVehicleRepo(db)
	appointmentRepo := appointmentsrepo.NewAppointmentRepo(db)

	tokens := jwtpkg.NewTokenService(cfg.JWT)
	retrier := retry.NewWithDefaults(log.Logger)

	authUC := authuc.NewAuthUC(authRepo, tokens, cfg)
	shopUC := shopsuc.NewShopUC(shopRepo, shopCache, cfg, log)
	emergencyUC := emergencyuc.NewEmergencyUC(
		requestRepo, shopRepo, emergencygateway.NewNotifierGW(producer, retrier), cfg, log)
	vehicleUC := vehiclesuc.NewVehicleUC(vehicleRepo)
	appointmentUC := appointmentsuc.NewAppointmentUC(
		appointmentRepo, shopRepo, appointmentsgateway.NewEventGW(producer, retrier), log)

	// Seed the geo index so proximity search is warm from the first request
	if err := shopUC.SyncGeoIndex(context.Background()); err != nil {
		log.WithError(err).Warn("failed to sync shop geo index")
	}

	gate := middleware.NewAccessGate(tokens, authUC, middleware.DefaultRouteRules(), log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestLogger(log))
	e.Use(gate.Middleware())

	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version)
	authhandler.NewAuthHandler(authUC).RegisterRoutes(e)
	shopshandler.NewShopHandler(shopUC).RegisterRoutes(e)
	emergencyhandler.NewEmergencyHandler(emergencyUC).RegisterRoutes(e)
	vehicleshandler.NewVehicleHandler(vehicleUC).RegisterRoutes(e)
	appointmentshandler.NewAppointmentHandler(appointmentUC).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, log, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		log.WithError(err).Fatal("server exited with error")
	}
}
