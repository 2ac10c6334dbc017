// cmd/quill/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/quill/internal/app"
	"github.com/bethropolis/quill/internal/config"
	"github.com/bethropolis/quill/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	logOutput, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log output: %v", err)
	}
	defer logOutput.Close()
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}
	for _, key := range cfg.Undecoded {
		logger.Warnf("Unknown config key '%s' ignored", key)
	}
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	quillApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logOutput.Close()
		stlog.Fatalf("Error initializing application: %v", err)
	}

	if err := quillApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logOutput.Close()
		os.Exit(1)
	}

	logger.Infof("Quill editor finished.")
}
