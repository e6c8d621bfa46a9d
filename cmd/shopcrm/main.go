package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/shop-crm/internal/application/session"
	"github.com/jhoicas/shop-crm/internal/application/usecase"
	"github.com/jhoicas/shop-crm/internal/infrastructure/api"
	"github.com/jhoicas/shop-crm/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/shop-crm/internal/infrastructure/pdf"
	"github.com/jhoicas/shop-crm/internal/infrastructure/storage"
	"github.com/jhoicas/shop-crm/internal/interfaces/cli"
	"github.com/jhoicas/shop-crm/pkg/config"
	"github.com/jhoicas/shop-crm/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return cli.ExitError
	}

	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Output: os.Stderr,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Str("session_backend", cfg.Session.Backend).
		Msg("iniciando cliente")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("almacenamiento de sesión")
		fmt.Fprintln(os.Stderr, "error:", err)
		return cli.ExitError
	}
	defer closeStore()

	sess := session.New(store)
	if err := sess.Init(ctx); err != nil {
		log.Error().Err(err).Msg("hidratar sesión")
		fmt.Fprintln(os.Stderr, "error:", err)
		return cli.ExitError
	}

	navigator := cli.NewNavigator(os.Stderr)
	notifier := notify.NewWriterNotifier(os.Stdout, log.Component("notify"))

	opts := []api.Option{
		api.WithNotifier(notifier),
		api.WithNavigator(navigator),
		api.WithLogger(log.Component("api").Zerolog()),
	}
	if cfg.API.Timeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.API.Timeout))
	}
	client := api.NewClient(cfg.API.BaseURL, sess, opts...)

	shopUC := usecase.NewShopUseCase(client, notifier)
	employeeUC := usecase.NewEmployeeUseCase(client, notifier)
	itemUC := usecase.NewItemUseCase(client, notifier)

	app := cli.New(cli.Deps{
		Auth:      usecase.NewAuthUseCase(client, sess, notifier, navigator, log.Component("auth")),
		Shops:     shopUC,
		Employees: employeeUC,
		Items:     itemUC,
		Users:     usecase.NewUserUseCase(client, notifier),
		Dashboard: usecase.NewDashboardUseCase(shopUC, employeeUC, itemUC),
		Reports:   usecase.NewReportUseCase(shopUC, itemUC, infrapdf.NewInventoryReport()),
		Navigator: navigator,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Log:       log.Component("cli"),
	})
	return app.Run(ctx, os.Args[1:])
}

// openStore elige el backend de sesión según SESSION_BACKEND.
func openStore(ctx context.Context, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		rs, err := storage.NewRedisStore(ctx, cfg.Redis.URL, cfg.Redis.KeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil
	case config.SessionBackendMemory:
		return session.NewMemoryStore(), func() {}, nil
	default:
		return storage.NewFileStore(cfg.Session.FilePath), func() {}, nil
	}
}
