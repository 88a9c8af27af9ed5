package main

import (
	"context"

	"github.com/clubsphere/backend/config"
	"github.com/clubsphere/backend/internal/entity"
	"github.com/clubsphere/backend/pkg/logger"
	"github.com/clubsphere/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type seedTool struct {
	app     *cli.App
	configs config.Configs
	db      *gorm.DB
}

func (s *seedTool) loadApp() {
	s.app = cli.NewApp()
	s.app.Name = "clubsphere"
	s.app.Usage = "database tooling for the club management gateway"
	s.app.Action = cli.ShowAppHelp
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the TOML configuration file",
			Value: "config.toml",
		},
	}
	s.app.Commands = []*cli.Command{
		{
			Name:        "migrate",
			Usage:       "Create or update the gateway tables",
			Action:      s.migrate,
			Description: `Applies the table definitions to the configured database.`,
		},
		{
			Name:        "seed",
			Usage:       "Insert demo clubs and events",
			Action:      s.seed,
			Description: `Fills an empty database with a demo campus so the app has something to show.`,
		},
	}
}

func (s *seedTool) prepare(cliCtx *cli.Context) (context.Context, error) {
	cfg, err := config.Load(cliCtx.String("config"))
	if err != nil {
		return nil, err
	}
	s.configs = cfg

	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                      cfg.Database.ConnectionString(),
		DefaultStringSize:        256,
		DisableDatetimePrecision: true,
		DontSupportRenameIndex:   true,
		DontSupportRenameColumn:  true,
	}), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.INFO))
	ctx = xcontext.WithDB(ctx, s.db)

	return ctx, nil
}

func (s *seedTool) migrate(cliCtx *cli.Context) error {
	ctx, err := s.prepare(cliCtx)
	if err != nil {
		return err
	}

	if err := entity.MigrateTable(s.db); err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Migrated all tables")
	return nil
}

func (s *seedTool) seed(cliCtx *cli.Context) error {
	ctx, err := s.prepare(cliCtx)
	if err != nil {
		return err
	}

	if err := entity.MigrateTable(s.db); err != nil {
		return err
	}

	if err := insertDemoData(ctx); err != nil {
		return err
	}

	xcontext.Logger(ctx).Infof("Seeded demo clubs and events")
	return nil
}
