package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nathanieltooley/pokeroster/pokeapi"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrCreatureNotFound     = errors.New("pokemon not found")
	ErrReferenceUnavailable = errors.New("reference data unavailable")
	ErrNoLearnableMoves     = errors.New("pokemon has no learnable moves")
)

const (
	NO_ITEM_CHOICE = "None"
	STOP_EVS_INPUT = "done"
)

// Prompter is whatever asks the user questions.
// Input re-asks until validate returns nil.
type Prompter interface {
	Input(message string, validate func(string) error) (string, error)
	Select(message string, choices []string) (int, error)
	MultiSelect(message string, choices []string, min int, max int) ([]int, error)
	Notify(message string)
}

type AssemblerConfig struct {
	Client          pokeapi.Client
	Prompter        Prompter
	VersionGroup    string
	Language        string
	AllowPartialEVs bool
}

// Assembler walks the user through configuring creatures and collects them into a Roster
type Assembler struct {
	client       pokeapi.Client
	prompter     Prompter
	resolver     *Resolver
	allowPartial bool
}

func NewAssembler(cfg AssemblerConfig) *Assembler {
	return &Assembler{
		client:       cfg.Client,
		prompter:     cfg.Prompter,
		resolver:     NewResolver(cfg.Client, cfg.VersionGroup, cfg.Language),
		allowPartial: cfg.AllowPartialEVs,
	}
}

// BuildRoster asks for a team size and then fills every slot.
// Identifiers that can't be resolved are asked for again and don't use up a slot.
func (a *Assembler) BuildRoster(ctx context.Context) (Roster, error) {
	sizeInput, err := a.prompter.Input(fmt.Sprintf("How many Pokemon on your team? (%d-%d)", MIN_TEAM_SIZE, MAX_TEAM_SIZE), TeamSizeValidator)
	if err != nil {
		return nil, err
	}

	size, err := ParseAllocation(sizeInput)
	if err != nil {
		return nil, err
	}

	internalLogger.Info("building roster", "size", size)

	roster := make(Roster, 0, size)
	for len(roster) < size {
		identifier, err := a.prompter.Input(fmt.Sprintf("Which Pokemon do you want for slot %d (ID/name)?", len(roster)+1), identifierValidator)
		if err != nil {
			return nil, err
		}

		creature, err := a.BuildCreature(ctx, identifier)
		if err != nil {
			switch {
			case errors.Is(err, ErrCreatureNotFound):
				a.prompter.Notify(fmt.Sprintf("Invalid Pokemon name/ID: %s. Please try again.", identifier))
			case errors.Is(err, ErrReferenceUnavailable):
				a.prompter.Notify(fmt.Sprintf("Couldn't reach PokeAPI for %q, try again", identifier))
			case errors.Is(err, ErrNoLearnableMoves):
				a.prompter.Notify(fmt.Sprintf("%q can't learn any moves in %s, try another", identifier, a.resolver.versionGroup))
			default:
				return nil, err
			}

			internalLogger.Info("slot not filled", "identifier", identifier, "reason", err.Error())
			continue
		}

		roster = append(roster, *creature)
		internalLogger.Info("filled slot", "slot", len(roster), "pokemon", creature.Name)
	}

	return roster, nil
}

// BuildCreature fetches a Pokemon and prompts for the rest of its configuration
func (a *Assembler) BuildCreature(ctx context.Context, identifier string) (*Creature, error) {
	pokemon, err := a.client.GetPokemon(ctx, identifier)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCreatureNotFound, identifier)
		}

		return nil, fmt.Errorf("%w: %w", ErrReferenceUnavailable, err)
	}

	moveChoices := a.resolver.MoveChoices(*pokemon)
	if len(moveChoices) == 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrNoLearnableMoves, pokemon.Name, a.resolver.versionGroup)
	}

	creature := &Creature{
		Id:    pokemon.Id,
		Name:  pokemon.Name,
		Types: TypesFromApi(*pokemon),
		Stats: BaseStatsFromApi(*pokemon),
	}

	if creature.Nature, err = a.pickNature(creature.Name); err != nil {
		return nil, err
	}

	if creature.Evs, err = a.allocateEvs(creature.Name); err != nil {
		return nil, err
	}

	if creature.Ivs, err = a.allocateIvs(creature.Name); err != nil {
		return nil, err
	}

	if creature.Level, err = a.pickLevel(creature.Name); err != nil {
		return nil, err
	}

	if creature.Moves, err = a.pickMoves(ctx, creature.Name, moveChoices); err != nil {
		return nil, err
	}

	if creature.Ability, err = a.pickAbility(ctx, *pokemon); err != nil {
		return nil, err
	}

	if creature.Item, err = a.pickItem(creature.Name); err != nil {
		return nil, err
	}

	return creature, nil
}

func (a *Assembler) pickNature(name string) (Nature, error) {
	labels := lo.Map(NATURES[:], func(n Nature, _ int) string {
		return NatureLabel(n)
	})

	choice, err := a.prompter.Select(fmt.Sprintf("Which nature should %s have?", DisplayName(name)), labels)
	if err != nil {
		return Nature{}, err
	}

	return ResolveNature(NATURES[choice].Name)
}

func (a *Assembler) allocateEvs(name string) (StatBlock, error) {
	allocator := NewEffortAllocator(a.allowPartial)

	for {
		stat, pass, ok := allocator.Next()
		if !ok {
			break
		}

		message := fmt.Sprintf("%s EVs for %s (0-%d, %d left, pass %d)", DisplayName(string(stat)), DisplayName(name), allocator.Ceiling(stat), allocator.Remaining(), pass)
		validate := allocator.Validator(stat)
		if allocator.CanStop() {
			message += fmt.Sprintf(", or %q to stop", STOP_EVS_INPUT)
			validate = stoppable(validate)
		}

		input, err := a.prompter.Input(message, validate)
		if err != nil {
			return nil, err
		}

		if isStopInput(input) && allocator.Stop() {
			break
		}

		amount, err := ParseAllocation(input)
		if err != nil {
			return nil, err
		}

		if err := allocator.Propose(stat, amount); err != nil {
			return nil, err
		}
	}

	return allocator.Evs(), nil
}

func (a *Assembler) allocateIvs(name string) (StatBlock, error) {
	ivs := NewStatBlock()

	for _, stat := range Stats {
		input, err := a.prompter.Input(fmt.Sprintf("%s IVs for %s (0-%d)", DisplayName(string(stat)), DisplayName(name), MAX_IV), PotentialValidator(stat))
		if err != nil {
			return nil, err
		}

		amount, err := ParseAllocation(input)
		if err != nil {
			return nil, err
		}

		if ivs[stat], err = ProposePotential(stat, amount); err != nil {
			return nil, err
		}
	}

	return ivs, nil
}

func (a *Assembler) pickLevel(name string) (int, error) {
	input, err := a.prompter.Input(fmt.Sprintf("What level is %s? (%d-%d)", DisplayName(name), MIN_LEVEL, MAX_LEVEL), LevelValidator)
	if err != nil {
		return 0, err
	}

	return ResolveLevel(input)
}

func (a *Assembler) pickMoves(ctx context.Context, name string, choices []pokeapi.PokemonMove) ([]Move, error) {
	labels := lo.Map(choices, func(m pokeapi.PokemonMove, _ int) string {
		return DisplayName(m.Move.Name)
	})
	maxMoves := min(MAX_MOVES, len(choices))

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		picked, err := a.prompter.MultiSelect(fmt.Sprintf("Which moves should %s know? (%d-%d)", DisplayName(name), MIN_MOVES, maxMoves), labels, MIN_MOVES, maxMoves)
		if err != nil {
			return nil, err
		}

		resolutions, err := a.resolver.ResolveMoves(ctx, lo.Map(picked, func(i int, _ int) pokeapi.PokemonMove {
			return choices[i]
		}))
		if err != nil {
			a.prompter.Notify(err.Error())
			continue
		}

		moves := make([]Move, 0, len(resolutions))
		for _, r := range resolutions {
			if !r.Resolved() {
				a.prompter.Notify(fmt.Sprintf("Couldn't load %s (%s), it was left out", DisplayName(r.Name), r.Outcome))
				continue
			}

			moves = append(moves, r.Value)
		}

		if len(moves) > 0 {
			return moves, nil
		}

		a.prompter.Notify("None of those moves could be loaded, pick again")
	}
}

func (a *Assembler) pickAbility(ctx context.Context, pokemon pokeapi.Pokemon) (Ability, error) {
	choices := a.resolver.AbilityChoices(pokemon)
	labels := lo.Map(choices, func(ab pokeapi.PokemonAbility, _ int) string {
		return AbilityLabel(ab)
	})

	for {
		if err := ctx.Err(); err != nil {
			return Ability{}, err
		}

		choice, err := a.prompter.Select(fmt.Sprintf("Which ability should %s have?", DisplayName(pokemon.Name)), labels)
		if err != nil {
			return Ability{}, err
		}

		resolution := a.resolver.ResolveAbility(ctx, choices[choice])
		if resolution.Resolved() {
			return resolution.Value, nil
		}

		a.prompter.Notify(fmt.Sprintf("Couldn't load %s (%s), pick again", DisplayName(resolution.Name), resolution.Outcome))
	}
}

func (a *Assembler) pickItem(name string) (string, error) {
	labels := append([]string{NO_ITEM_CHOICE}, lo.Map(HeldItems[:], func(item string, _ int) string {
		return DisplayName(item)
	})...)

	choice, err := a.prompter.Select(fmt.Sprintf("What should %s hold?", DisplayName(name)), labels)
	if err != nil {
		return "", err
	}

	if choice == 0 {
		return ResolveItem("")
	}

	return ResolveItem(HeldItems[choice-1])
}

// DisplayName turns a PokeAPI name like "special-attack" into "Special Attack"
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func NatureLabel(n Nature) string {
	if n.Neutral() {
		return DisplayName(n.Name)
	}

	return fmt.Sprintf("%s (+%s, -%s)", DisplayName(n.Name), DisplayName(string(n.Up)), DisplayName(string(n.Down)))
}

func AbilityLabel(a pokeapi.PokemonAbility) string {
	if a.IsHidden {
		return DisplayName(a.Ability.Name) + " (hidden)"
	}

	return DisplayName(a.Ability.Name)
}

func identifierValidator(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("enter a pokedex number or name")
	}

	return nil
}

func isStopInput(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), STOP_EVS_INPUT)
}

func stoppable(validate func(string) error) func(string) error {
	return func(input string) error {
		if isStopInput(input) {
			return nil
		}

		return validate(input)
	}
}
