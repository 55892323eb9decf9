package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golangdaddy/topgear/pkg/config"
	"github.com/golangdaddy/topgear/pkg/log"
)

const envPrefix = "TOPGEAR"

var (
	cfgFile   string
	cfg       = config.Default()
	configErr error // set by initConfig, reported once the logger is up
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "topgear",
	Short:        "Pseudo-3D arcade racer",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
			return err
		}
		return configErr
	},
	RunE: runRace,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Error("topgear failed", log.ErrorField(err))
	}
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.topgear.yml)")
	rootCmd.PersistentFlags().StringVar(&cfg.ResultsDir, "results-dir", cfg.ResultsDir,
		"Directory of the race result store")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel,
		"Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat,
		"Log format (console, json)")

	addRaceFlags(rootCmd.Flags())

	rootCmd.AddCommand(newRaceCmd())
	rootCmd.AddCommand(newResultsCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = readConfig(viper.GetViper(), cfgFile, cfg)

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// readConfig loads the config file into v and its tuning section into c.
// Only a missing default config file is tolerated; a file named with
// --config must exist and parse.
func readConfig(v *viper.Viper, file string, c *config.Config) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to find home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".topgear")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}

	// keys missing from the tuning section keep their defaults
	if v.IsSet("tuning") {
		if err := v.UnmarshalKey("tuning", &c.Tuning); err != nil {
			return fmt.Errorf("failed to read tuning section: %w", err)
		}
	}
	return nil
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --results-dir to TOPGEAR_RESULTS_DIR
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
