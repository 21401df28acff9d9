package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/pokeroster/global"
	"github.com/nathanieltooley/pokeroster/roster"
	"github.com/nathanieltooley/pokeroster/teamfs"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
	fadedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

var showCmd = &cobra.Command{
	Use:   "show [team-name]",
	Short: "Show a saved team with its stats at its level",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		team, err := teamfs.LoadTeam(global.Opt.TeamSaveLocation, args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderTeam(args[0], team))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved teams",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		teams, err := teamfs.LoadTeamMap(global.Opt.TeamSaveLocation)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderTeamList(teams))
		return nil
	},
}

func renderTeam(name string, team roster.Roster) string {
	cards := lo.Map(team, func(creature roster.Creature, _ int) string {
		return cardStyle.Render(renderCreature(creature))
	})

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{headerStyle.Render(name)}, cards...)...) + "\n"
}

func renderCreature(c roster.Creature) string {
	title := fmt.Sprintf("%s  Lv. %d  %s", headerStyle.Render(roster.DisplayName(c.Name)), c.Level, fadedStyle.Render(strings.Join(lo.Map(c.Types, func(t string, _ int) string {
		return roster.DisplayName(t)
	}), "/")))

	details := []string{
		title,
		fmt.Sprintf("Nature: %s", roster.NatureLabel(c.Nature)),
		fmt.Sprintf("Ability: %s", roster.DisplayName(c.Ability.Name)),
		fmt.Sprintf("Item: %s", lo.Ternary(c.Item == "", roster.NO_ITEM_CHOICE, roster.DisplayName(c.Item))),
	}

	statLines := lo.Map(roster.Stats[:], func(stat roster.Stat, _ int) string {
		return fmt.Sprintf("%-16s %4d  %s", roster.DisplayName(string(stat)), c.CalcStat(stat), fadedStyle.Render(fmt.Sprintf("(%d EV, %d IV)", c.Evs[stat], c.Ivs[stat])))
	})

	moveLines := lo.Map(c.Moves, func(m roster.Move, _ int) string {
		return "- " + roster.DisplayName(m.Name)
	})

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, append(details, moveLines...)...),
		"    ",
		lipgloss.JoinVertical(lipgloss.Left, statLines...),
	)
}

func renderTeamList(teams teamfs.SavedTeams) string {
	if len(teams) == 0 {
		return fadedStyle.Render("No saved teams yet") + "\n"
	}

	names := lo.Keys(teams)
	slices.Sort(names)

	lines := lo.Map(names, func(name string, _ int) string {
		members := lo.Map(teams[name], func(c roster.Creature, _ int) string {
			return roster.DisplayName(c.Name)
		})
		return fmt.Sprintf("%s  %s", headerStyle.Render(name), fadedStyle.Render(strings.Join(members, ", ")))
	})

	return strings.Join(lines, "\n") + "\n"
}
