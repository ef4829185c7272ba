package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	appRepos "github.com/cariesreview/catalog/internal/app/repositories"
	appServices "github.com/cariesreview/catalog/internal/app/services"
	"github.com/cariesreview/catalog/internal/bootstrap"
	"github.com/cariesreview/catalog/internal/pkg/auth"
	"github.com/cariesreview/catalog/internal/pkg/logger"
	"github.com/cariesreview/catalog/internal/seed"
	"github.com/cariesreview/catalog/internal/server"
)

// @title Canadian Dental Caries Review API
// @version 1.0
// @description Catalog, statistics and editing API for the systematic review of dental caries studies in Canada

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	configFlag := &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to the YAML configuration file",
		Value:   filepath.Join("configs", "config.yaml"),
		EnvVars: []string{"CONFIG_PATH"},
	}

	return &cli.App{
		Name:   "caries-catalog",
		Usage:  "Canadian dental caries systematic review catalog",
		Flags:  []cli.Flag{configFlag},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate, seed defaults and serve HTTP",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending schema migrations",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "create default project metadata",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "demo", Usage: "also insert demo studies"},
				},
				Action: seedData,
			},
			{
				Name:      "hash-password",
				Usage:     "print a bcrypt hash for an editor password",
				ArgsUsage: "<password>",
				Action:    hashPassword,
			},
		},
	}
}

func serve(c *cli.Context) error {
	srv, err := server.NewServer(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	if err := srv.Run(); err != nil {
		return err
	}
	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrate(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}
	database, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(c.Context, time.Minute)
	defer cancel()
	return bootstrap.Migrate(ctx, database, lgr)
}

func seedData(c *cli.Context) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}
	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	if !c.Bool("demo") {
		return nil
	}
	admin := appServices.NewStudyAdminService(appRepos.NewStudyRepository(database.Pool))
	_, err = seed.CreateDemoStudies(c.Context, admin, lgr)
	return err
}

func hashPassword(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: hash-password <password>", 2)
	}
	hash, err := auth.HashPassword(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hash)
	return nil
}
