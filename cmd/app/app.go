package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/econopapi/terraza-zocalo-hosts/internal/api"
	"github.com/econopapi/terraza-zocalo-hosts/internal/config"
	"github.com/econopapi/terraza-zocalo-hosts/internal/db"
	"github.com/econopapi/terraza-zocalo-hosts/internal/logger"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if conf.API.SeedDemoData {
		if err = dao.SeedDemoData(postgresDB); err != nil {
			return fmt.Errorf("failed to seed demo data -> %w", err)
		}
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
