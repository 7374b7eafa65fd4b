// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxfi/deployer/cmd/configcmd"
	"github.com/luxfi/deployer/cmd/consortiumcmd"
	"github.com/luxfi/deployer/cmd/contractcmd"
	"github.com/luxfi/deployer/cmd/keycmd"
	"github.com/luxfi/deployer/cmd/networkcmd"
	"github.com/luxfi/deployer/pkg/application"
	"github.com/luxfi/deployer/pkg/config"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app *application.Deployer

	logLevel       string
	Version        = "0.1.0"
	cfgFile        string
	nonInteractive bool
	verboseFlag    bool
	debugFlag      bool
	quietFlag      bool
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "deployer",
		Long: `Deployer - compile and migrate smart contracts to local, public and
managed blockchain networks.

COMMAND OVERVIEW:

  contract     Deploy the contracts of a truffle project
  network      Manage known networks and the local test chain
  consortium   Create managed consortium members
  key          List saved mnemonic references
  config       Read and write deployer settings

QUICK START:

  # Deploy the project in the current directory
  deployer contract deploy

  # Register a public testnet
  deployer network add --kind testnet --name ropsten --url https://ropsten.example

For detailed command help, use: deployer <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.deployer/deployer.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "console log level for the application")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false,
		"Disable prompts; fail if required values are missing (also enabled when stdin is not a TTY or CI=1)")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Show verbose output (info level logs)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug output (debug level logs)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Show only errors (quiet mode)")

	rootCmd.AddCommand(contractcmd.NewCmd(app))
	rootCmd.AddCommand(networkcmd.NewCmd(app))
	rootCmd.AddCommand(consortiumcmd.NewCmd(app))
	rootCmd.AddCommand(keycmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))

	return rootCmd
}

func createApp(*cobra.Command, []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	if err := initConfig(baseDir); err != nil {
		return err
	}

	// Interactive by default on TTY, non-interactive when:
	// DEPLOYER_NON_INTERACTIVE=1, CI=1, --non-interactive flag, or stdin is piped
	prompts.SetNonInteractive(nonInteractive)
	app.Setup(baseDir, log, config.New(nil), prompts.NewPrompterForMode(), afero.NewOsFs())
	return nil
}

func setupEnv() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get the home directory %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(home, constants.BaseDirName)

	for _, dir := range []string{baseDir, filepath.Join(baseDir, constants.LogDir), filepath.Join(baseDir, constants.RunDir)} {
		if err := os.MkdirAll(dir, constants.DefaultPerms755); err != nil {
			fmt.Printf("failed creating the directory %s: %s\n", dir, err)
			return "", err
		}
	}
	return baseDir, nil
}

// consoleLevel picks the console level from the flags. The most verbose flag wins.
func consoleLevel() (zapcore.Level, error) {
	switch {
	case debugFlag:
		return zapcore.DebugLevel, nil
	case verboseFlag:
		return zapcore.InfoLevel, nil
	case quietFlag:
		return zapcore.ErrorLevel, nil
	}
	return zapcore.ParseLevel(logLevel)
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	level, err := consoleLevel()
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(baseDir, constants.LogDir, constants.LogFileName),
		MaxSize:    constants.MaxLogFileSize,
		MaxBackups: constants.MaxNumOfLogFiles,
		MaxAge:     constants.RetainOldFiles,
	}
	fileEncoder := zap.NewProductionEncoderConfig()
	fileEncoder.EncodeTime = zapcore.ISO8601TimeEncoder
	consoleEncoder := zap.NewDevelopmentEncoderConfig()

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoder), zapcore.AddSync(fileWriter), zapcore.DebugLevel),
		// logs go to stderr, user output to stdout
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoder), zapcore.Lock(os.Stderr), level),
	)
	log := zap.New(core, zap.AddCaller())

	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig(baseDir string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(baseDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	// DEPLOYER_AZURE_CLIENT_SECRET -> azure.client-secret, etc.
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed reading config file: %w", err)
		}
		// no config file is normal; later writes create it
		if cfgFile == "" {
			viper.SetConfigFile(filepath.Join(baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType))
		}
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if ux.Logger != nil {
			ux.Logger.PrintError("%s", err)
		} else {
			fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		}
		os.Exit(1)
	}
}
