package pokeapi

import "encoding/json"

type NamedApiResource struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

// Pokemon is the subset of /pokemon/{id or name} this tool reads
type Pokemon struct {
	Id        int              `json:"id"`
	Name      string           `json:"name"`
	Types     []PokemonType    `json:"types"`
	Stats     []PokemonStat    `json:"stats"`
	Abilities []PokemonAbility `json:"abilities"`
	Moves     []PokemonMove    `json:"moves"`
}

type PokemonType struct {
	Slot int              `json:"slot"`
	Type NamedApiResource `json:"type"`
}

type PokemonStat struct {
	BaseStat int              `json:"base_stat"`
	Effort   int              `json:"effort"`
	Stat     NamedApiResource `json:"stat"`
}

type PokemonAbility struct {
	Ability  NamedApiResource `json:"ability"`
	IsHidden bool             `json:"is_hidden"`
	Slot     int              `json:"slot"`
}

type PokemonMove struct {
	Move                NamedApiResource     `json:"move"`
	VersionGroupDetails []VersionGroupDetail `json:"version_group_details"`
}

type VersionGroupDetail struct {
	LevelLearnedAt  int              `json:"level_learned_at"`
	MoveLearnMethod NamedApiResource `json:"move_learn_method"`
	VersionGroup    NamedApiResource `json:"version_group"`
}

type Ability struct {
	Id            int                   `json:"id"`
	Name          string                `json:"name"`
	EffectEntries []VerboseEffect       `json:"effect_entries"`
	EffectChanges []AbilityEffectChange `json:"effect_changes"`
}

type VerboseEffect struct {
	Effect      string           `json:"effect"`
	ShortEffect string           `json:"short_effect"`
	Language    NamedApiResource `json:"language"`
}

type Effect struct {
	Effect   string           `json:"effect"`
	Language NamedApiResource `json:"language"`
}

type AbilityEffectChange struct {
	EffectEntries []Effect         `json:"effect_entries"`
	VersionGroup  NamedApiResource `json:"version_group"`
}

// Move keeps meta and stat_changes as raw json since they're passed through untouched.
// For values that are pointers, they are nullable
type Move struct {
	Id          int              `json:"id"`
	Name        string           `json:"name"`
	Power       *int             `json:"power"`
	PP          *int             `json:"pp"`
	Priority    *int             `json:"priority"`
	Accuracy    *int             `json:"accuracy"`
	DamageClass NamedApiResource `json:"damage_class"`
	Meta        json.RawMessage  `json:"meta"`
	StatChanges json.RawMessage  `json:"stat_changes"`
	Target      NamedApiResource `json:"target"`
	Type        NamedApiResource `json:"type"`
}

// LearnableIn reports whether the move can be learned in the given version group
func (m PokemonMove) LearnableIn(versionGroup string) bool {
	for _, detail := range m.VersionGroupDetails {
		if detail.VersionGroup.Name == versionGroup {
			return true
		}
	}

	return false
}
