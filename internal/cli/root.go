// Package cli implements the sitectl command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/internal/site"
)

var (
	cfgFile    string
	contentDir string
	siteFile   string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Tooling for the AKS Labs documentation site",
	Long: `sitectl validates and exports the documentation site without running
the server.

It works on the same content tree the server loads: markdown documents
under content/docs, the category manifest and the site metadata file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sitectl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "content", "content directory")
	rootCmd.PersistentFlags().StringVar(&siteFile, "site-config", "site.yaml", "site metadata file, absolute or relative to the content directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Bind flags to viper for config file support
	viper.BindPFlag("content", rootCmd.PersistentFlags().Lookup("content"))
	viper.BindPFlag("site-config", rootCmd.PersistentFlags().Lookup("site-config"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Search config in home directory with name ".sitectl" (without extension)
		viper.AddConfigPath(home + "/.sitectl")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("SITECTL")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if debug {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newLogger builds the CLI logger: quiet by default, verbose with --debug.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadContent builds the content service and site metadata from the
// configured content directory.
func loadContent(log *slog.Logger) (*docs.Service, *site.Site, *config.Config, error) {
	cfg := &config.Config{Content: config.ContentConfig{
		Dir:      viper.GetString("content"),
		SiteFile: viper.GetString("site-config"),
	}}

	svc, err := docs.NewService(cfg, log, nil)
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := site.Load(cfg.Content.SitePath())
	if err != nil {
		return nil, nil, nil, err
	}

	return svc, s, cfg, nil
}
