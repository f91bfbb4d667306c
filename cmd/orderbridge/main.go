// Command orderbridge maps Shopify order JSON into Bitrix24 deal
// payloads. It reads one order per input file (or stdin) and writes one
// conversion result per line to stdout; diagnostics go to the log.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	appintegration "github.com/crmbridge/backend/internal/application/integration"
	"github.com/crmbridge/backend/internal/domain/shopify"
	"github.com/crmbridge/backend/internal/infrastructure/config"
	"github.com/crmbridge/backend/internal/infrastructure/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: search for config.toml)")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting order bridge",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("mapped_skus", len(cfg.Mapping.SKUProducts)),
	)

	converter := appintegration.NewOrderConverter(cfg.Mapping.ToDomain(), log, logger.NewSKUDiagnostics(log))

	encoder := json.NewEncoder(os.Stdout)
	if *pretty {
		encoder.SetIndent("", "  ")
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	for _, path := range paths {
		order, err := readOrder(path)
		if err != nil {
			log.Error("Failed to read order", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}

		if err := encoder.Encode(converter.Convert(order)); err != nil {
			log.Error("Failed to write conversion result", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// readOrder reads one Shopify order from the given path, "-" meaning
// stdin.
func readOrder(path string) (*shopify.Order, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var order shopify.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("invalid order payload: %w", err)
	}
	return &order, nil
}
