package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/nathanieltooley/pokeroster/pokeapi"
)

const (
	staticUrl        = "https://pokeapi.test/ability/9/"
	lightningRodUrl  = "https://pokeapi.test/ability/31/"
	thunderboltUrl   = "https://pokeapi.test/move/85/"
	thunderWaveUrl   = "https://pokeapi.test/move/86/"
	quickAttackUrl   = "https://pokeapi.test/move/98/"
	ironTailUrl      = "https://pokeapi.test/move/231/"
	voltTackleUrl    = "https://pokeapi.test/move/344/"
	scarletViolet    = "scarlet-violet"
	swordShield      = "sword-shield"
	englishLanguage  = "en"
	japaneseLanguage = "ja"
)

func intPtr(i int) *int {
	return &i
}

func learnable(name string, url string, versionGroups ...string) pokeapi.PokemonMove {
	move := pokeapi.PokemonMove{Move: pokeapi.NamedApiResource{Name: name, Url: url}}
	for _, group := range versionGroups {
		move.VersionGroupDetails = append(move.VersionGroupDetails, pokeapi.VersionGroupDetail{
			VersionGroup: pokeapi.NamedApiResource{Name: group},
		})
	}

	return move
}

func lang(name string) pokeapi.NamedApiResource {
	return pokeapi.NamedApiResource{Name: name}
}

func pikachuFixture() pokeapi.Pokemon {
	stat := func(name string, base int) pokeapi.PokemonStat {
		return pokeapi.PokemonStat{BaseStat: base, Stat: pokeapi.NamedApiResource{Name: name}}
	}

	return pokeapi.Pokemon{
		Id:   25,
		Name: "pikachu",
		Types: []pokeapi.PokemonType{
			{Slot: 1, Type: pokeapi.NamedApiResource{Name: "electric"}},
		},
		Stats: []pokeapi.PokemonStat{
			stat("hp", 35),
			stat("attack", 55),
			stat("defense", 40),
			stat("special-attack", 50),
			stat("special-defense", 50),
			stat("speed", 90),
		},
		Abilities: []pokeapi.PokemonAbility{
			{Ability: pokeapi.NamedApiResource{Name: "static", Url: staticUrl}, Slot: 1},
			{Ability: pokeapi.NamedApiResource{Name: "lightning-rod", Url: lightningRodUrl}, IsHidden: true, Slot: 3},
		},
		Moves: []pokeapi.PokemonMove{
			learnable("thunderbolt", thunderboltUrl, swordShield, scarletViolet),
			learnable("thunder-wave", thunderWaveUrl, scarletViolet),
			learnable("volt-tackle", voltTackleUrl, swordShield),
			learnable("quick-attack", quickAttackUrl, scarletViolet),
			learnable("iron-tail", ironTailUrl, scarletViolet),
		},
	}
}

func staticFixture() pokeapi.Ability {
	return pokeapi.Ability{
		Id:   9,
		Name: "static",
		EffectEntries: []pokeapi.VerboseEffect{
			{Effect: "Statique", ShortEffect: "paralysie", Language: lang("fr")},
			{Effect: "Whenever a move makes contact with this Pokemon, the move's user has a 30% chance of being paralyzed.", ShortEffect: "Has a 30% chance of paralyzing attacking Pokemon on contact.", Language: lang(englishLanguage)},
		},
		EffectChanges: []pokeapi.AbilityEffectChange{
			{
				VersionGroup: pokeapi.NamedApiResource{Name: "black-white"},
				EffectEntries: []pokeapi.Effect{
					{Effect: "Old static text", Language: lang(englishLanguage)},
					{Effect: "せいでんき", Language: lang(japaneseLanguage)},
				},
			},
		},
	}
}

func moveFixture(id int, name string, power *int) pokeapi.Move {
	return pokeapi.Move{
		Id:          id,
		Name:        name,
		Power:       power,
		PP:          intPtr(15),
		Priority:    intPtr(0),
		Accuracy:    intPtr(100),
		DamageClass: pokeapi.NamedApiResource{Name: "special"},
		Meta:        json.RawMessage(`{"ailment":{"name":"paralysis"},"ailment_chance":10}`),
		StatChanges: json.RawMessage(`[]`),
		Target:      pokeapi.NamedApiResource{Name: "selected-pokemon"},
		Type:        pokeapi.NamedApiResource{Name: "electric"},
	}
}

// fakeClient serves fixtures from memory. Anything missing is ErrNotFound.
type fakeClient struct {
	pokemon   map[string]pokeapi.Pokemon
	abilities map[string]pokeapi.Ability
	moves     map[string]pokeapi.Move
	failures  map[string]error
}

func newFakeClient() *fakeClient {
	pikachu := pikachuFixture()

	return &fakeClient{
		pokemon: map[string]pokeapi.Pokemon{
			"25":      pikachu,
			"pikachu": pikachu,
		},
		abilities: map[string]pokeapi.Ability{
			staticUrl:       staticFixture(),
			lightningRodUrl: {Id: 31, Name: "lightning-rod"},
		},
		moves: map[string]pokeapi.Move{
			thunderboltUrl: moveFixture(85, "thunderbolt", intPtr(90)),
			thunderWaveUrl: moveFixture(86, "thunder-wave", nil),
			quickAttackUrl: moveFixture(98, "quick-attack", intPtr(40)),
			ironTailUrl:    moveFixture(231, "iron-tail", intPtr(100)),
			voltTackleUrl:  moveFixture(344, "volt-tackle", intPtr(120)),
		},
		failures: map[string]error{},
	}
}

func (c *fakeClient) GetPokemon(_ context.Context, idOrName string) (*pokeapi.Pokemon, error) {
	key := strings.ToLower(strings.TrimSpace(idOrName))
	if err, ok := c.failures[key]; ok {
		return nil, err
	}

	pokemon, ok := c.pokemon[key]
	if !ok {
		return nil, fmt.Errorf("GET pokemon/%s: %w", key, pokeapi.ErrNotFound)
	}

	return &pokemon, nil
}

func (c *fakeClient) GetAbility(_ context.Context, abilityUrl string) (*pokeapi.Ability, error) {
	if err, ok := c.failures[abilityUrl]; ok {
		return nil, err
	}

	ability, ok := c.abilities[abilityUrl]
	if !ok {
		return nil, fmt.Errorf("GET %s: %w", abilityUrl, pokeapi.ErrNotFound)
	}

	return &ability, nil
}

func (c *fakeClient) GetMove(_ context.Context, moveUrl string) (*pokeapi.Move, error) {
	if err, ok := c.failures[moveUrl]; ok {
		return nil, err
	}

	move, ok := c.moves[moveUrl]
	if !ok {
		return nil, fmt.Errorf("GET %s: %w", moveUrl, pokeapi.ErrNotFound)
	}

	return &move, nil
}

// scriptedPrompter answers prompts from fixed scripts. Answers that fail
// validation are recorded and the next answer is tried, like a real user retyping.
type scriptedPrompter struct {
	t        *testing.T
	inputs   []string
	selects  []int
	multis   [][]int
	rejected []string
	messages []string
	notices  []string
}

func (p *scriptedPrompter) Input(message string, validate func(string) error) (string, error) {
	p.messages = append(p.messages, message)

	for len(p.inputs) > 0 {
		input := p.inputs[0]
		p.inputs = p.inputs[1:]

		if err := validate(input); err != nil {
			p.rejected = append(p.rejected, input)
			continue
		}

		return input, nil
	}

	p.t.Fatalf("ran out of scripted input at %q", message)
	return "", nil
}

func (p *scriptedPrompter) Select(message string, choices []string) (int, error) {
	p.messages = append(p.messages, message)

	if len(p.selects) == 0 {
		p.t.Fatalf("ran out of scripted selections at %q", message)
	}

	choice := p.selects[0]
	p.selects = p.selects[1:]

	if choice < 0 || choice >= len(choices) {
		p.t.Fatalf("scripted selection %d out of range for %q (%d choices)", choice, message, len(choices))
	}

	return choice, nil
}

func (p *scriptedPrompter) MultiSelect(message string, choices []string, min int, max int) ([]int, error) {
	p.messages = append(p.messages, message)

	for len(p.multis) > 0 {
		picked := p.multis[0]
		p.multis = p.multis[1:]

		if len(picked) < min || len(picked) > max {
			p.rejected = append(p.rejected, fmt.Sprint(picked))
			continue
		}

		return picked, nil
	}

	p.t.Fatalf("ran out of scripted multi selections at %q", message)
	return nil, nil
}

func (p *scriptedPrompter) Notify(message string) {
	p.notices = append(p.notices, message)
}

func natureIndex(t *testing.T, name string) int {
	for i, nature := range NATURES {
		if nature.Name == name {
			return i
		}
	}

	t.Fatalf("no nature called %s", name)
	return -1
}

// pikachuAnswers fills one slot with the same pikachu every time:
// timid, 4 hp / 252 special attack / 252 speed, 31 IVs, level 50, no item
func pikachuAnswers(t *testing.T) ([]string, []int, [][]int) {
	inputs := []string{
		"4", "0", "0", "252", "0", "252",
		"31", "31", "31", "31", "31", "31",
		"50",
	}
	selects := []int{natureIndex(t, "timid"), 0, 0}
	multis := [][]int{{0, 1, 2, 3}}

	return inputs, selects, multis
}
