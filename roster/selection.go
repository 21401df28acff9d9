package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nathanieltooley/pokeroster/pokeapi"
	"github.com/samber/lo"
)

var (
	ErrMoveCount     = fmt.Errorf("pick between %d and %d moves", MIN_MOVES, MAX_MOVES)
	ErrUnknownNature = errors.New("unknown nature")
	ErrUnknownItem   = errors.New("unknown held item")
)

// Outcome is how a detail lookup ended
type Outcome int

const (
	OUTCOME_RESOLVED Outcome = iota
	OUTCOME_NOT_FOUND
	OUTCOME_FETCH_FAILED
)

func (o Outcome) String() string {
	switch o {
	case OUTCOME_RESOLVED:
		return "resolved"
	case OUTCOME_NOT_FOUND:
		return "not found"
	case OUTCOME_FETCH_FAILED:
		return "fetch failed"
	default:
		return "unknown"
	}
}

// Resolution is the result of looking up the details of one selected option.
// Value is only meaningful when Outcome is OUTCOME_RESOLVED.
type Resolution[T any] struct {
	Name    string
	Value   T
	Outcome Outcome
	Err     error
}

func (r Resolution[T]) Resolved() bool {
	return r.Outcome == OUTCOME_RESOLVED
}

func resolved[T any](name string, value T) Resolution[T] {
	return Resolution[T]{Name: name, Value: value, Outcome: OUTCOME_RESOLVED}
}

func failed[T any](name string, err error) Resolution[T] {
	outcome := OUTCOME_FETCH_FAILED
	if errors.Is(err, pokeapi.ErrNotFound) {
		outcome = OUTCOME_NOT_FOUND
	}

	return Resolution[T]{Name: name, Outcome: outcome, Err: err}
}

// Resolver turns the options a user picked into full records
type Resolver struct {
	client       pokeapi.Client
	versionGroup string
	language     string
}

func NewResolver(client pokeapi.Client, versionGroup string, language string) *Resolver {
	if versionGroup == "" {
		versionGroup = DEFAULT_VERSION_GROUP
	}
	if language == "" {
		language = DEFAULT_LANGUAGE
	}

	return &Resolver{
		client:       client,
		versionGroup: versionGroup,
		language:     language,
	}
}

// AbilityChoices lists a Pokemon's abilities in the order PokeAPI gave them
func (r *Resolver) AbilityChoices(pokemon pokeapi.Pokemon) []pokeapi.PokemonAbility {
	return pokemon.Abilities
}

// MoveChoices lists the moves the Pokemon can learn in the resolver's version group
func (r *Resolver) MoveChoices(pokemon pokeapi.Pokemon) []pokeapi.PokemonMove {
	return lo.Filter(pokemon.Moves, func(m pokeapi.PokemonMove, _ int) bool {
		return m.LearnableIn(r.versionGroup)
	})
}

func (r *Resolver) ResolveAbility(ctx context.Context, choice pokeapi.PokemonAbility) Resolution[Ability] {
	ability, err := r.client.GetAbility(ctx, choice.Ability.Url)
	if err != nil {
		internalLogger.Error(err, "couldn't get ability details", "ability", choice.Ability.Name)
		return failed[Ability](choice.Ability.Name, err)
	}

	return resolved(choice.Ability.Name, AbilityFromApi(*ability, r.language))
}

// ResolveMoves fetches details for each picked move. A failed lookup doesn't stop the others.
func (r *Resolver) ResolveMoves(ctx context.Context, choices []pokeapi.PokemonMove) ([]Resolution[Move], error) {
	if len(choices) < MIN_MOVES || len(choices) > MAX_MOVES {
		return nil, fmt.Errorf("%w: got %d", ErrMoveCount, len(choices))
	}

	resolutions := make([]Resolution[Move], 0, len(choices))
	for _, choice := range choices {
		move, err := r.client.GetMove(ctx, choice.Move.Url)
		if err != nil {
			internalLogger.Error(err, "couldn't get move details", "move", choice.Move.Name)
			resolutions = append(resolutions, failed[Move](choice.Move.Name, err))
			continue
		}

		resolutions = append(resolutions, resolved(choice.Move.Name, MoveFromApi(*move)))
	}

	return resolutions, nil
}

func ResolveNature(name string) (Nature, error) {
	nature, ok := LookupNature(strings.TrimSpace(name))
	if !ok {
		return Nature{}, fmt.Errorf("%w: %s", ErrUnknownNature, name)
	}

	return nature, nil
}

// ResolveItem checks name against the held item catalog. An empty name means no item.
func ResolveItem(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}

	if !IsHeldItem(name) {
		return "", fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}

	return name, nil
}

func ResolveLevel(input string) (int, error) {
	if err := LevelValidator(input); err != nil {
		return 0, err
	}

	return ParseAllocation(input)
}
