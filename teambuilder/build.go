package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/nathanieltooley/pokeroster/cache"
	"github.com/nathanieltooley/pokeroster/global"
	"github.com/nathanieltooley/pokeroster/pokeapi"
	"github.com/nathanieltooley/pokeroster/prompt"
	"github.com/nathanieltooley/pokeroster/roster"
	"github.com/nathanieltooley/pokeroster/teamfs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var partialEVs bool

var buildCmd = &cobra.Command{
	Use:   "build [team-name]",
	Short: "Interactively build a team and save it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&partialEVs, "partial-evs", false, `allow typing "done" to stop spending EVs early`)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	buildLogger := log.With().Str("location", "build").Logger()

	if len(args) == 1 {
		if err := teamfs.ValidateTeamName(args[0]); err != nil {
			return err
		}
	}

	store, err := cache.Open(global.Opt.CacheConfig())
	if err != nil {
		return fmt.Errorf("opening response cache: %w", err)
	}
	defer store.Close()

	client, err := pokeapi.New(global.Opt.ClientConfig(store))
	if err != nil {
		return err
	}

	terminal := prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	assembler := roster.NewAssembler(roster.AssemblerConfig{
		Client:          client,
		Prompter:        terminal,
		VersionGroup:    global.Opt.VersionGroup,
		Language:        global.Opt.Language,
		AllowPartialEVs: global.Opt.AllowPartialEVs,
	})

	buildLogger.Info().Str("cache", global.Opt.CacheBackend).Bool("partialEvs", global.Opt.AllowPartialEVs).Msg("starting build")

	team, err := assembler.BuildRoster(ctx)
	if errors.Is(err, prompt.ErrAborted) {
		buildLogger.Info().Msg("build cancelled")
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing was saved")
		return nil
	}
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = terminal.Input("What should this team be called?", teamfs.ValidateTeamName)
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled, nothing was saved")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := teamfs.SaveTeam(global.Opt.TeamSaveLocation, name, team); err != nil {
		return fmt.Errorf("saving team %s: %w", name, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", name, teamfs.TeamPath(global.Opt.TeamSaveLocation, name))
	return nil
}
