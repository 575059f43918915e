package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/blacdimirr/traccarsavekid/children"
	"github.com/blacdimirr/traccarsavekid/devices"
	. "github.com/blacdimirr/traccarsavekid/shared"
	. "github.com/blacdimirr/traccarsavekid/store"
	"github.com/blacdimirr/traccarsavekid/store/migrations"

	"github.com/facebookgo/inject"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/pkg/errors"
)

var (
	ctx    = context.Background()
	logger = NewLogger("savekid")
	config *AppConfig
	db     *gorm.DB

	childService  = &children.ChildService{}
	deviceService = &devices.DeviceService{}

	childrenHandlerFactory = &children.HandlerFactory{}
	devicesHandlerFactory  = &devices.HandlerFactory{}

	dbStore = &Store{}
)

func init() {
	checkErrAndExit(initAppConfiguration())
	checkErrAndExit(initPostgresConnection())
	checkErrAndExit(initApplicationGraph())
}

func initAppConfiguration() (err error) {
	config, err = InitAppConfiguration()
	return
}

func initPostgresConnection() (err error) {
	db, err = gorm.Open("postgres", config.ConnectString())
	if err != nil {
		return
	}

	db.LogMode(config.LogSql)
	db.SetLogger(logger)
	return
}

func initApplicationGraph() error {
	g := inject.Graph{}
	g.Provide(
		&inject.Object{Value: config},
		&inject.Object{Value: childService},
		&inject.Object{Value: deviceService},
		&inject.Object{Value: childrenHandlerFactory},
		&inject.Object{Value: devicesHandlerFactory},
		&inject.Object{Value: db},
		&inject.Object{Value: dbStore},
		&inject.Object{Value: logger},
	)
	if err := g.Populate(); err != nil {
		return errors.Wrap(err, "failed to populate")
	}
	return nil
}

func main() {
	if config.StartupMigration {
		applySqlSchemaMigrations(ctx)
	}
	startHttpServer(ctx)
}

func applySqlSchemaMigrations(ctx context.Context) {
	logger.Info(ctx, "applying sql schema migrations")
	applied, err := migrations.Up(config)
	checkErrAndExit(err)
	if !applied {
		logger.Info(ctx, "no new migrations applied")
	}
}

func startHttpServer(ctx context.Context) {
	childrenOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(children.EncodeError),
	}

	devicesOpts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(devices.EncodeError),
	}

	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	router.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	apiRouter := router.PathPrefix("/api").Subrouter()

	apiRouter.Handle("/savekid/children", childrenHandlerFactory.Add(childrenOpts)).Methods(http.MethodPost)
	apiRouter.Handle("/savekid/children", childrenHandlerFactory.List(childrenOpts)).Methods(http.MethodGet)
	apiRouter.Handle("/savekid/children/by-device/{deviceId}", childrenHandlerFactory.GetByDevice(childrenOpts)).Methods(http.MethodGet)
	apiRouter.Handle("/savekid/children/{childId}", childrenHandlerFactory.Get(childrenOpts)).Methods(http.MethodGet)
	apiRouter.Handle("/savekid/children/{childId}", childrenHandlerFactory.Update(childrenOpts)).Methods(http.MethodPut)
	apiRouter.Handle("/savekid/children/{childId}", childrenHandlerFactory.Delete(childrenOpts)).Methods(http.MethodDelete)

	apiRouter.Handle("/devices", devicesHandlerFactory.List(devicesOpts)).Methods(http.MethodGet)

	checkErrAndExit(http.ListenAndServe(config.ListenAddress,
		logger.RequestLoggerMiddleware(router),
	))
}

func checkErrAndExit(err error) {
	if err == nil {
		return
	}
	fmt.Println(err.Error())
	os.Exit(1)
}
