package roster

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/nathanieltooley/pokeroster/pokeapi"
	"github.com/samber/lo"
)

// Creature is one fully configured team member, as it is saved
type Creature struct {
	Id      int       `json:"id"`
	Name    string    `json:"name"`
	Types   []string  `json:"types"`
	Stats   StatBlock `json:"stats"`
	Nature  Nature    `json:"nature"`
	Evs     StatBlock `json:"evs"`
	Ivs     StatBlock `json:"ivs"`
	Level   int       `json:"level"`
	Moves   []Move    `json:"moves"`
	Ability Ability   `json:"ability"`
	Item    string    `json:"item,omitempty"`
}

// CalcStat gives the in-game value of a stat at the creature's level
func (c Creature) CalcStat(stat Stat) int {
	base := c.Stats[stat]
	numerator := (2*base + c.Ivs[stat] + c.Evs[stat]/4) * c.Level

	if stat == STAT_HP {
		return numerator/100 + c.Level + 10
	}

	statValue := (float32(numerator)/100 + 5) * c.Nature.Modifier(stat)
	return int(statValue)
}

// Move is a move's details exactly as PokeAPI reported them.
// For values that are pointers, they are nullable
type Move struct {
	Id          int             `json:"id"`
	Name        string          `json:"name"`
	Power       *int            `json:"power"`
	PP          *int            `json:"pp"`
	Priority    *int            `json:"priority"`
	Accuracy    *int            `json:"accuracy"`
	DamageClass string          `json:"damage_class"`
	Meta        json.RawMessage `json:"meta"`
	StatChanges json.RawMessage `json:"stat_changes"`
	Target      string          `json:"target"`
	Type        string          `json:"type"`
}

type EffectEntry struct {
	Effect      string `json:"effect"`
	ShortEffect string `json:"short_effect,omitempty"`
}

type EffectChange struct {
	VersionGroup  string        `json:"version_group"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Ability with its effect text limited to a single language
type Ability struct {
	Id            int            `json:"id"`
	Name          string         `json:"name"`
	EffectEntries []EffectEntry  `json:"effect_entries"`
	EffectChanges []EffectChange `json:"effect_changes"`
}

// Roster is an ordered team of creatures
type Roster []Creature

func MoveFromApi(m pokeapi.Move) Move {
	return Move{
		Id:          m.Id,
		Name:        m.Name,
		Power:       m.Power,
		PP:          m.PP,
		Priority:    m.Priority,
		Accuracy:    m.Accuracy,
		DamageClass: m.DamageClass.Name,
		Meta:        nullIfEmpty(m.Meta),
		StatChanges: nullIfEmpty(m.StatChanges),
		Target:      m.Target.Name,
		Type:        m.Type.Name,
	}
}

// AbilityFromApi projects an ability, keeping only entries written in language
func AbilityFromApi(a pokeapi.Ability, language string) Ability {
	entries := lo.Map(FilterLanguage(a.EffectEntries, language), func(e pokeapi.VerboseEffect, _ int) EffectEntry {
		return EffectEntry{Effect: e.Effect, ShortEffect: e.ShortEffect}
	})

	changes := lo.Map(a.EffectChanges, func(c pokeapi.AbilityEffectChange, _ int) EffectChange {
		return EffectChange{
			VersionGroup: c.VersionGroup.Name,
			EffectEntries: lo.Map(FilterLanguage(c.EffectEntries, language), func(e pokeapi.Effect, _ int) EffectEntry {
				return EffectEntry{Effect: e.Effect}
			}),
		}
	})

	return Ability{
		Id:            a.Id,
		Name:          a.Name,
		EffectEntries: entries,
		EffectChanges: changes,
	}
}

type localized interface {
	pokeapi.VerboseEffect | pokeapi.Effect
}

func languageOf[T localized](entry T) string {
	switch e := any(entry).(type) {
	case pokeapi.VerboseEffect:
		return e.Language.Name
	case pokeapi.Effect:
		return e.Language.Name
	}

	return ""
}

// FilterLanguage keeps the entries written in language, in their original order
func FilterLanguage[T localized](entries []T, language string) []T {
	return lo.Filter(entries, func(entry T, _ int) bool {
		return languageOf(entry) == language
	})
}

// TypesFromApi returns a Pokemon's type names ordered by slot
func TypesFromApi(p pokeapi.Pokemon) []string {
	types := slices.Clone(p.Types)
	slices.SortStableFunc(types, func(a, b pokeapi.PokemonType) int {
		return cmp.Compare(a.Slot, b.Slot)
	})

	return lo.Map(types, func(t pokeapi.PokemonType, _ int) string {
		return t.Type.Name
	})
}

// BaseStatsFromApi re-keys a Pokemon's base stats by Stat
func BaseStatsFromApi(p pokeapi.Pokemon) StatBlock {
	block := NewStatBlock()
	for _, s := range p.Stats {
		stat := Stat(s.Stat.Name)
		if stat.Valid() {
			block[stat] = s.BaseStat
		}
	}

	return block
}

func nullIfEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}

	return raw
}
