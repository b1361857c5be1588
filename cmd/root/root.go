// Package root contains the root command for the application
package root

import (
	"errors"
	"sync"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/tracker"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	DataDir  string
	Backend  string
	LogLevel string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A CLI tool to track and categorize personal bank transactions.",
		Long: `fintrack keeps a local ledger of bank transactions. It imports records
from bank exports, categorizes them with keyword rules, removes duplicates
between banks and summarizes spending.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintrack!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := GetContainer()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if err := CloseContainer(); err != nil {
				Log.WithError(err).Warn("Failed to close container")
			}
		},
	}

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	initOnce sync.Once

	mu           sync.Mutex
	appContainer *container.Container
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVar(&SharedFlags.DataDir, "data-dir", "", "Directory holding the ledger and rules files")
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Backend, "backend", "b", "", "Ledger backend (csv or sqlite)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	})
}

// applyFlags copies explicitly set persistent flags over the loaded config.
func applyFlags(cfg *config.Config) {
	if SharedFlags.DataDir != "" {
		cfg.Data.Directory = SharedFlags.DataDir
	}
	if SharedFlags.Backend != "" {
		cfg.Data.Backend = SharedFlags.Backend
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
}

// GetContainer returns the application container, building it from the
// configuration on first use.
func GetContainer() (*container.Container, error) {
	mu.Lock()
	defer mu.Unlock()

	if appContainer != nil {
		return appContainer, nil
	}

	config.LoadEnv()
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	applyFlags(cfg)

	c, err := container.NewContainer(cfg)
	if err != nil {
		return nil, err
	}
	appContainer = c
	Log = c.GetLogger()
	return c, nil
}

// SetContainer installs c as the application container. Tests use it to
// run commands against a temporary data directory.
func SetContainer(c *container.Container) {
	mu.Lock()
	defer mu.Unlock()
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}

// CloseContainer releases the container resources and forgets it.
func CloseContainer() error {
	mu.Lock()
	defer mu.Unlock()
	if appContainer == nil {
		return nil
	}
	err := appContainer.Close()
	appContainer = nil
	return err
}

// GetService returns the tracker service of the application container.
func GetService() (*tracker.Service, error) {
	c, err := GetContainer()
	if err != nil {
		return nil, err
	}
	svc := c.GetService()
	if svc == nil {
		return nil, errors.New("tracker service is not initialized")
	}
	return svc, nil
}
