package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lachapa-pdv/broker"
	"github.com/yeremiapane/lachapa-pdv/cart"
	"github.com/yeremiapane/lachapa-pdv/catalog"
	"github.com/yeremiapane/lachapa-pdv/config"
	"github.com/yeremiapane/lachapa-pdv/database"
	"github.com/yeremiapane/lachapa-pdv/gateway"
	"github.com/yeremiapane/lachapa-pdv/kds"
	"github.com/yeremiapane/lachapa-pdv/lifecycle"
	"github.com/yeremiapane/lachapa-pdv/printer"
	"github.com/yeremiapane/lachapa-pdv/router"
	"github.com/yeremiapane/lachapa-pdv/services"
	"github.com/yeremiapane/lachapa-pdv/store"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.GinMode != gin.ReleaseMode)
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := buildApp(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to start: %v", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: app.Router}
	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Printf("Shutdown: %v", err)
	}
}

// App holds the wired process: router plus the background workers to stop.
type App struct {
	Router  *gin.Engine
	Store   *store.Store
	Orders  *services.OrderService
	Hub     *kds.Hub
	Spooler *printer.Spooler
	Monitor *services.GatewayMonitor
	Sync    *services.OrderSync
	Rabbit  *broker.Rabbit
}

func buildApp(cfg *config.Config) (*App, error) {
	gw, err := newGateway(cfg)
	if err != nil {
		return nil, err
	}

	st := store.New()
	spooler := printer.NewSpooler(newPrinter(cfg), cfg.APITimeout)
	hub := kds.NewHub()

	rabbit, err := broker.NewRabbit(cfg.RabbitURL, cfg.RabbitExchange)
	if err != nil {
		utils.ErrorLogger.Printf("RabbitMQ disabled: %v", err)
		rabbit = nil
	}

	statusNotifiers := []lifecycle.Notifier{hub}
	submitNotifiers := []services.SubmitNotifier{hub}
	if rabbit != nil {
		statusNotifiers = append(statusNotifiers, rabbit)
		submitNotifiers = append(submitNotifiers, rabbit)
	}

	machine := lifecycle.NewMachine(st, spooler, statusNotifiers...)
	monitor := services.NewGatewayMonitor(gw, st, cfg.APITimeout)
	monitor.Start(cfg.RetryInterval)

	sync := services.NewOrderSync(gw, st, cfg.APITimeout)
	sync.Interval = cfg.SyncInterval
	sync.Pending = monitor
	sync.Start()

	cat := catalog.Default()
	orders := services.NewOrderService(cat, cart.NewRegistry(st), st, machine, monitor, spooler, submitNotifiers...)
	orders.Alerts = hub
	reports := services.NewReportService(st)

	r := router.SetupRouter(router.Dependencies{
		Catalog:    cat,
		Orders:     orders,
		Reports:    reports,
		Monitor:    monitor,
		Hub:        hub,
		JWTSecret:  []byte(cfg.JWTSecret),
		PINHash:    cfg.PINHash,
		CORSOrigin: cfg.CORSOrigin,
		RateLimit:  cfg.RateLimit,
		RateBurst:  cfg.RateBurst,
	})

	return &App{
		Router:  r,
		Store:   st,
		Orders:  orders,
		Hub:     hub,
		Spooler: spooler,
		Monitor: monitor,
		Sync:    sync,
		Rabbit:  rabbit,
	}, nil
}

func (a *App) Close() {
	a.Sync.Stop()
	a.Monitor.Stop()
	a.Spooler.Wait()
	if err := a.Rabbit.Close(); err != nil {
		utils.ErrorLogger.Printf("Closing RabbitMQ: %v", err)
	}
}

func newGateway(cfg *config.Config) (gateway.OrderGateway, error) {
	switch cfg.OrderGateway {
	case config.GatewayDatabase:
		db, err := config.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, err
		}
		return gateway.NewDatabase(db), nil
	case config.GatewayMock, "":
		return gateway.NewMock(cfg.MockAPIDelay, gateway.DemoOrders(time.Now())), nil
	}
	return nil, errors.New("unknown ORDER_GATEWAY " + cfg.OrderGateway)
}

func newPrinter(cfg *config.Config) printer.Printer {
	if cfg.PrinterKind == config.PrinterPDF {
		p, err := printer.NewPDF(cfg.PrintSpoolDir)
		if err == nil {
			return p
		}
		utils.ErrorLogger.Printf("PDF printer unavailable, logging tickets instead: %v", err)
	}
	return printer.Log{}
}
