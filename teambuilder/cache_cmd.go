package main

import (
	"fmt"

	"github.com/nathanieltooley/pokeroster/cache"
	"github.com/nathanieltooley/pokeroster/global"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the PokeAPI response cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached response",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.Open(global.Opt.CacheConfig())
		if err != nil {
			return fmt.Errorf("opening response cache: %w", err)
		}
		defer store.Close()

		if err := store.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clearing response cache: %w", err)
		}

		log.Info().Str("backend", global.Opt.CacheBackend).Msg("cleared response cache")
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared the %s cache\n", global.Opt.CacheBackend)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
