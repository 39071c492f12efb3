package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configPath string

	// cfg is the merged configuration, set before any command runs.
	cfg = config.Default()
	// cfgDir anchors relative paths found in cfg.
	cfgDir string
)

var rootCmd = &cobra.Command{
	Use:   "netguard",
	Short: "Network access guard for test suites",
	Long: `netguard blocks internet access from test processes while letting
loopback traffic and a small allow-list of data hosts through.

Remote data modes:
  none     - Only localhost is reachable (default)
  github   - Code-hosting domains are reachable
  astropy  - Data-hosting and code-hosting domains are reachable
  any      - The guard is not installed`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		logging.Setup(verbose || cfg.Verbose, jsonOutput || cfg.JSON, os.Stderr)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs and results in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .netguard.toml or .netguard.yaml in the current directory)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)

// loadConfig reads the --config file, or the first default file in the
// working directory, into cfg.
func loadConfig() error {
	cfg = config.Default()
	cfgDir = ""

	wd, err := os.Getwd()
	if err != nil {
		return errors.ConfigError("failed to get working directory", err)
	}

	path := configPath
	if path == "" {
		path = config.Find(wd)
		if path == "" {
			cfgDir = wd
			return nil
		}
	} else if path, err = config.ResolvePath(wd, path); err != nil {
		return errors.ConfigError("invalid --config path", err)
	}

	loaded, err := config.Load(path)
	if err != nil {
		return errors.ConfigError("failed to load config", err)
	}
	cfg = loaded
	cfgDir = filepath.Dir(path)

	logging.Debug("loaded config", "path", path, "remote_data", cfg.RemoteData)
	return nil
}
