// Package main is the teambuilder command line tool
package main

import (
	"fmt"
	"os"

	"github.com/nathanieltooley/pokeroster/global"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configDir    string
	debug        bool
	saveDir      string
	cacheBackend string
)

var rootCmd = &cobra.Command{
	Use:   "teambuilder",
	Short: "Build Pokemon teams from PokeAPI data",
	Long:  `teambuilder walks you through picking Pokemon, natures, EVs, IVs, moves, abilities and items, then saves the team as JSON.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		global.GlobalInit(configDir, true)
		applyFlags(cmd)
	},
	SilenceUsage: true,
}

// applyFlags lets flags win over the config file and environment
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("debug") {
		global.Opt.Debug = debug
		if debug {
			global.UpdateLogLevel(zerolog.DebugLevel)
		}
	}
	if flags.Changed("save-dir") {
		global.Opt.TeamSaveLocation = saveDir
	}
	if flags.Changed("cache") {
		global.Opt.CacheBackend = cacheBackend
	}
	if flags.Changed("partial-evs") {
		global.Opt.AllowPartialEVs = partialEVs
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", global.DefaultConfigDir(), "directory holding config.json, logs and the response cache")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&saveDir, "save-dir", "", "directory teams are saved in")
	rootCmd.PersistentFlags().StringVar(&cacheBackend, "cache", "", "response cache backend: sqlite, memory or redis")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cacheCmd)
}
