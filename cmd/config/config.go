package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tidydrive/namerule/pkg/catalog"
	"github.com/tidydrive/namerule/pkg/store"
)

var (
	cfgFile string
	logger  *logrus.Logger
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "namerule")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NAMERULE")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "namerule"))
	viper.SetDefault("catalog_file", "")

	if err := viper.ReadInConfig(); err == nil {
		// Do not print this in normal operation, it's noisy.
		// fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Logger returns the shared CLI logger, warn level on stderr.
func Logger() *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// OpenStore opens the rule store under the configured data directory.
func OpenStore() (*store.Store, error) {
	return store.Open(viper.GetString("data_dir"))
}

// LoadCatalog loads the variable catalog, merging the configured custom
// catalog file when present. A broken custom file degrades to the builtins
// with a warning rather than failing the command.
func LoadCatalog() *catalog.Catalog {
	path := viper.GetString("catalog_file")
	cat, err := catalog.Load(path)
	if err != nil {
		Logger().Warnf("could not load custom catalog, using builtins: %v", err)
		return catalog.Builtin()
	}
	return cat
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/namerule/config.yaml)")
}
