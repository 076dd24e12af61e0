package main

import (
	"context"
	"errors"
	"os"

	"github.com/funketh/shinobu-bot/internal/app"
	"github.com/funketh/shinobu-bot/internal/config"
	"github.com/funketh/shinobu-bot/internal/logger"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout)

	// Адаптер конкретной чат-платформы подключается здесь; без него
	// приложение поднимает только HTTP API.
	if err := app.New(conf, l, nil).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		panic(err)
	}
}
