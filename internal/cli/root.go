// Package cli provides the command-line interface for accent.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/accent/internal/cache"
	"github.com/jmylchreest/accent/internal/colour"
	"github.com/jmylchreest/accent/internal/config"
	"github.com/jmylchreest/accent/internal/palette"
	"github.com/jmylchreest/accent/internal/version"
)

var (
	flagInput   string
	flagConfig  string
	flagVerbose bool
	flagNoCache bool
)

// NewRootCmd builds the root command. Running it executes the full
// selection pipeline.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "accent",
		Short: "Select accent colours distinct from an existing palette",
		Long: `Accent selects a small set of accent colours that are maximally
perceptually distinct from a caller-supplied list of base colours, from each
other, and from a large reference palette.

Colour lists are JSON arrays of hex strings. The base list is selected with
--input (default "base-colors"); the reference palette is always loaded from
"pantone-colors". Each classification round is cached on disk, so repeat
runs skip recomputation until the cache is removed.`,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE:         runSelect,
	}

	rootCmd.Flags().StringVarP(&flagInput, "input", "i", palette.DefaultBaseListName, "base colour list name (without .json extension)")
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", config.DefaultPath, "path to TOML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "recompute every round, ignoring cached results")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// runSelect executes the three-round pipeline and prints the final set.
func runSelect(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	level := hclog.Info
	if flagVerbose {
		level = hclog.Debug
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:   "accent",
		Output: os.Stderr,
		Level:  level,
	})

	base, err := palette.Load(conf.PaletteDir, flagInput)
	if err != nil {
		return err
	}
	reference, err := palette.Load(conf.PaletteDir, palette.ReferenceListName)
	if err != nil {
		return err
	}
	log.Debug("colour lists loaded", "base", len(base), "reference", len(reference))

	var store cache.Store
	if flagNoCache {
		store = cache.NewMemStore()
	} else {
		store, err = cache.NewFileStore(conf.CacheDir)
		if err != nil {
			return err
		}
	}

	pipeline := &colour.Pipeline{
		Log:         log,
		Store:       store,
		SampleLimit: conf.SampleLimit,
	}
	selected, err := pipeline.Run(flagInput, base, reference)
	if err != nil {
		return err
	}

	printSelection(log, selected, conf.LookupURL)
	return nil
}
