package main

import (
	"log"
	"os"

	"github.com/spf13/afero"

	"github.com/Pesokrava/product_catalog/internal/config"
	"github.com/Pesokrava/product_catalog/internal/delivery/cli"
	"github.com/Pesokrava/product_catalog/internal/i18n"
	"github.com/Pesokrava/product_catalog/internal/pkg/logger"
	"github.com/Pesokrava/product_catalog/internal/repository/file"
	"github.com/Pesokrava/product_catalog/internal/usecase/catalog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Infof("Starting catalog shop, data folder %s", cfg.Catalog.DataFolder)

	store := file.NewStore(afero.NewOsFs(), cfg.Catalog.DataFolder, cfg.Catalog.FilePattern, appLogger)
	formats := i18n.NewRegistry(cfg.Catalog.DefaultLocale)

	svc := catalog.NewService(store, formats, appLogger)
	if err := svc.LoadAll(); err != nil {
		appLogger.Fatal("Failed to load catalog", err)
	}

	menu := cli.New(svc, os.Stdin, os.Stdout, appLogger, cfg.Catalog.DefaultLocale)
	menu.Run()

	appLogger.Info("Shop closed")
}
