package main

import (
	"path/filepath"
	"strings"

	"newelem/internal/config"
	"newelem/internal/content"
	"newelem/internal/log"
	"newelem/internal/registry"
	"newelem/internal/resolve"
	"newelem/internal/vfs"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "newelem",
		Short: "Manage new-element creation for page authoring",
		Long: `Newelem reads the XML configuration document that declares which
prototype resources, destination folders, and naming patterns each
content type uses, and hands out the next free numbered filename when
a new element is created.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				log.Warnf("could not load config: %v, using defaults", configErr)
				cfg = config.New()
			}
			log.SetDebug(cfg.Debug)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/newelem/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewTypesCmd())
	rootCmd.AddCommand(NewElementsCmd())
	rootCmd.AddCommand(NewNameCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}

// loadResolver builds the resolver and its collaborators from the active
// application config.
func loadResolver() (*resolve.Resolver, *vfs.Store, error) {
	store := vfs.New(cfg.Repository.Root, vfs.WithTempPrefix(cfg.Naming.TempPrefix))

	reg, err := registry.Load(cfg.Repository.Registry)
	if err != nil {
		return nil, nil, err
	}

	return resolve.New(store, reg), store, nil
}

// documentPath maps the configured document's repository path onto the
// filesystem.
func documentPath() string {
	return filepath.Join(cfg.Repository.Root, filepath.FromSlash(strings.TrimPrefix(cfg.Repository.Document, "/")))
}

// loadConfiguration parses and resolves the configuration document.
func loadConfiguration() (*resolve.TypeConfiguration, *vfs.Store, error) {
	resolver, store, err := loadResolver()
	if err != nil {
		return nil, nil, err
	}

	doc, err := content.ParseFile(documentPath())
	if err != nil {
		return nil, nil, err
	}

	typeCfg, err := resolver.Resolve(doc, cfg.Locales.Requested, cfg.Locales.Default)
	if err != nil {
		return nil, nil, err
	}
	return typeCfg, store, nil
}
