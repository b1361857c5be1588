package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/fintrack/cmd/add"
	"fjacquet/fintrack/cmd/categories"
	"fjacquet/fintrack/cmd/classify"
	"fjacquet/fintrack/cmd/dedupe"
	"fjacquet/fintrack/cmd/edit"
	"fjacquet/fintrack/cmd/export"
	"fjacquet/fintrack/cmd/list"
	"fjacquet/fintrack/cmd/reclassify"
	"fjacquet/fintrack/cmd/remove"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/cmd/rules"
	"fjacquet/fintrack/cmd/simulate"
	"fjacquet/fintrack/cmd/summary"
	"fjacquet/fintrack/cmd/sync"
	"fjacquet/fintrack/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	logLevel := configureLogLevelDirectly()

	// 3. Force this level on ALL existing and future loggers
	logging.SetAllLogLevels(logLevel)

	// 4. Now that logging is properly configured, initialize root command
	root.Init()

	// 5. Add all subcommands
	root.Cmd.AddCommand(sync.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(reclassify.Cmd)
	root.Cmd.AddCommand(dedupe.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(simulate.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
// and returns the configured level
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv("FINTRACK_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = os.Getenv("LOG_LEVEL")
	}
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	// Set the global logrus level before any logging happens
	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
