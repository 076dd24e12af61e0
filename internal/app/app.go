package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive

	"github.com/funketh/shinobu-bot/internal/bot"
	"github.com/funketh/shinobu-bot/internal/chat"
	"github.com/funketh/shinobu-bot/internal/chat/react"
	"github.com/funketh/shinobu-bot/internal/config"
	"github.com/funketh/shinobu-bot/internal/repository/pgrepo"
	"github.com/funketh/shinobu-bot/internal/repository/repoargs"
	"github.com/funketh/shinobu-bot/internal/service"
	"github.com/funketh/shinobu-bot/internal/transport/api"
	"github.com/funketh/shinobu-bot/pkg/uow"
)

type App struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Gateway chat.Gateway
}

// New собирает приложение. gateway - адаптер чат-платформы; nil допустим,
// тогда поднимается только HTTP API без командного цикла бота.
func New(conf *config.Config, l *logrus.Logger, gateway chat.Gateway) *App {
	return &App{
		Config:  conf,
		Logger:  l,
		Gateway: gateway,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		Currency: a.Config.Currency,
		Income:   a.Config.Income,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:       a.Logger,
		UserService:  services.UserService,
		WaifuService: services.WaifuService,
		PackService:  services.PackService,
		Currency:     a.Config.Currency,
		JWTSecretKey: []byte(a.Config.JWTSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	if a.Gateway != nil {
		engine := react.New(a.Gateway, a.Logger)
		b := bot.New(a.Gateway, engine, services, a.Logger, bot.Config{
			Currency:       a.Config.Currency,
			ConfirmTimeout: a.Config.ConfirmTimeout,
		})
		go b.Run(notifyCtx)
	} else {
		a.Logger.Warn("chat gateway is not configured, running HTTP API only")
	}

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName:      func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) },
		repoargs.RarityRepoName:    func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewRarityRepository(dbtx) },
		repoargs.PackRepoName:      func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPackRepository(dbtx) },
		repoargs.CharacterRepoName: func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewCharacterRepository(dbtx) },
		repoargs.WaifuRepoName:     func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewWaifuRepository(dbtx) },
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
