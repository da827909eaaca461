package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/confio/mask/runtime"
)

var (
	cfgFile   string
	storePath string
	chainID   string
	verbose   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mask",
	Short: "Development host for the mask contract",
	Long: `mask runs the access-controlled message-forwarding contract against a
local store and keyring, so ownership and forwarding can be exercised
without a chain: initialize, send transactions, and query state.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mask/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", `state store: "mem" or a sqlite path (default $HOME/.mask/state.db)`)
	rootCmd.PersistentFlags().StringVar(&chainID, "chain-id", "", "chain id stamped into the call environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(homeDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MASK")
	viper.AutomaticEnv()
	viper.BindEnv("store", "MASK_STORE")
	viper.BindEnv("chain_id", "MASK_CHAIN_ID")

	// The config file is optional; env bindings apply either way
	_ = viper.ReadInConfig()

	// Flags win over config and environment
	if storePath == "" {
		storePath = viper.GetString("store")
	}
	if chainID == "" {
		chainID = viper.GetString("chain_id")
	}
	if storePath == "" {
		storePath = filepath.Join(homeDir(), "state.db")
	}
	if chainID == "" {
		chainID = "mask-local"
	}

	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
			os.Exit(1)
		}
		runtime.SetLogger(logger)
	}
}

// homeDir is the mask config directory, created on demand
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot resolve home directory: %v\n", err)
		os.Exit(1)
	}
	dir := filepath.Join(home, ".mask")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", dir, err)
		os.Exit(1)
	}
	return dir
}
