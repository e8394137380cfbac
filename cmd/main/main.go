package main

import (
	"flag"
	"fmt"
	"os"

	"etf-matcher-loader/src/config"
	"etf-matcher-loader/src/fetcher"
	"etf-matcher-loader/src/interfaces"
	"etf-matcher-loader/src/logger"
	"etf-matcher-loader/src/network"
	"etf-matcher-loader/src/resolver"
	"etf-matcher-loader/src/server"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "", "path to YAML config file (optional, defaults to the production data site)")
	listKeys := flag.Bool("list", false, "list manifest dataset keys and exit")
	fetchKey := flag.String("fetch", "", "fetch the dataset for this manifest key and exit")
	outPath := flag.String("out", "dataset.bin", "output file for -fetch")
	flag.Parse()

	// Load config from YAML file, or fall back to production defaults
	var conf *config.Config
	var err error
	if *configPath != "" {
		conf, err = config.NewConfig(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		conf = config.DefaultConfig()
	}

	// Setup logger
	appLogger := logger.NewLogger(conf.MConfig, conf.Name)

	// Setup Components
	var netMgr interfaces.INetworkManager = network.NewNetworkManager(conf.MConfig, appLogger)
	var res interfaces.IConfigResolver = resolver.NewConfigResolver(conf.MConfig, netMgr, appLogger)
	var fet interfaces.IResourceFetcher = fetcher.NewResourceFetcher(conf.MConfig, netMgr, res, appLogger)

	// One-shot modes
	if *listKeys {
		configs, err := res.GetAllConfigs()
		if err != nil {
			appLogger.Critical("Failed to load manifest: %v", err)
		}
		for _, key := range configs.SortedKeys() {
			fmt.Println(key)
		}
		return
	}

	if *fetchKey != "" {
		data, err := fet.FetchDatasetByKey(*fetchKey)
		if err != nil {
			appLogger.Critical("Failed to fetch dataset '%s': %v", *fetchKey, err)
		}
		if err := os.WriteFile(*outPath, data, 0644); err != nil {
			appLogger.Critical("Failed to write '%s': %v", *outPath, err)
		}
		appLogger.Info("Wrote %d bytes to %s", len(data), *outPath)
		return
	}

	// Serve the API
	srv := server.NewAPIServer(conf.MConfig, appLogger, res, fet)
	if err := srv.Start(); err != nil {
		appLogger.Critical("Server failed: %v", err)
	}
}
