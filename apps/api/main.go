package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/edulearn/apps/api/echo"
	"github.com/trezcool/edulearn/core"
	"github.com/trezcool/edulearn/core/catalog"
	"github.com/trezcool/edulearn/core/session"
	"github.com/trezcool/edulearn/core/user"
	emailsvc "github.com/trezcool/edulearn/services/email"
	logsvc "github.com/trezcool/edulearn/services/logger"
	dummydb "github.com/trezcool/edulearn/storage/database/dummy"
	"github.com/trezcool/edulearn/storage/seed"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger, err := logsvc.NewRollbarLogger("api", conf)
	if err != nil {
		log.Fatalf("setting up logger: %v", err)
	}
	logger.Enable(!conf.Debug)
	defer logger.Sync()

	dbLogger, err := logsvc.NewRollbarLogger("db", conf)
	if err != nil {
		log.Fatalf("setting up db logger: %v", err)
	}
	dbLogger.Enable(!conf.Debug)

	// set up DB
	db := dummydb.Open()
	courseRepo := dummydb.NewCourseRepository(db)
	accountRepo := dummydb.NewAccountRepository(db)

	if err = seed.Accounts(accountRepo); err != nil {
		dbLogger.Fatal(fmt.Sprintf("seeding accounts: %v", err), err)
	}
	n, err := seed.Catalog(courseRepo, conf.CatalogSeedFile)
	if err != nil {
		dbLogger.Fatal(fmt.Sprintf("seeding catalog: %v", err), err)
	}
	dbLogger.Info(fmt.Sprintf("catalog seeded with %d courses", n))

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc := user.NewService(accountRepo)
	catalogSvc := catalog.NewService(courseRepo, usrSvc, mailSvc, logger)
	sessionSvc := session.NewService(dummydb.NewSessionRepository(db), conf.Server.JWTExpirationDelta)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	catalog.InitValidators(validate, translator)

	core.ParseEmailTemplates(logger, conf.Debug)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			UserSvc:    usrSvc,
			CatalogSvc: catalogSvc,
			SessionSvc: sessionSvc,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		logger.Info(fmt.Sprintf("API listening on %s", conf.Server.Address()))
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
