package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/civicdocs/agendarchive/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

// GetConfig returns the loaded configuration.
func GetConfig() config.Config {
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "agendarchive",
	Short: "agendarchive: a city council meeting document archiver",
	Long: `agendarchive downloads publicly posted meeting documents (agendas,
minutes, packets) from a city council's AgendaCenter portal, naming each
file by meeting date and document type and skipping files already present.

Commands:
  fetch  Download documents for the configured year range`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func initConfig() {
	// Start with defaults
	cfg = config.Defaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/agendarchive")
		viper.AddConfigPath(".")
	}

	// Environment variable overrides
	// AGENDARCHIVE_ARCHIVE_ROOT -> archive.root
	viper.SetEnvPrefix("AGENDARCHIVE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("portal.base_url", "AGENDARCHIVE_PORTAL_BASE_URL")
	viper.BindEnv("portal.listing_path", "AGENDARCHIVE_PORTAL_LISTING_PATH")
	viper.BindEnv("portal.meeting_path", "AGENDARCHIVE_PORTAL_MEETING_PATH")
	viper.BindEnv("fetcher.user_agent", "AGENDARCHIVE_FETCHER_USER_AGENT")
	viper.BindEnv("fetcher.page_timeout", "AGENDARCHIVE_FETCHER_PAGE_TIMEOUT")
	viper.BindEnv("fetcher.download_timeout", "AGENDARCHIVE_FETCHER_DOWNLOAD_TIMEOUT")
	viper.BindEnv("fetcher.delay", "AGENDARCHIVE_FETCHER_DELAY")
	viper.BindEnv("archive.root", "AGENDARCHIVE_ARCHIVE_ROOT")
	viper.BindEnv("archive.from_year", "AGENDARCHIVE_ARCHIVE_FROM_YEAR")
	viper.BindEnv("archive.to_year", "AGENDARCHIVE_ARCHIVE_TO_YEAR")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("config file error", "error", err)
		}
		// No config file - use defaults + env vars
	}

	// Unmarshal into struct (merges config file with defaults)
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Warn("failed to parse config", "error", err)
	}
}
