package roster

import "strings"

// Nature boosts one stat by 10% and lowers another by 10%.
// Neutral natures have neither and leave Up and Down empty.
type Nature struct {
	Name string `json:"name"`
	Up   Stat   `json:"up,omitempty"`
	Down Stat   `json:"down,omitempty"`
}

func (n Nature) Neutral() bool {
	return n.Up == "" && n.Down == ""
}

// Modifier gives the multiplier this nature applies to a stat
func (n Nature) Modifier(stat Stat) float32 {
	switch stat {
	case n.Up:
		return 1.1
	case n.Down:
		return .9
	default:
		return 1
	}
}

/// ======== No effect natures ========

var NATURE_HARDY = Nature{Name: "hardy"}
var NATURE_DOCILE = Nature{Name: "docile"}
var NATURE_BASHFUL = Nature{Name: "bashful"}
var NATURE_QUIRKY = Nature{Name: "quirky"}
var NATURE_SERIOUS = Nature{Name: "serious"}

/// ======== -Attack Natures ========

var NATURE_BOLD = Nature{"bold", STAT_DEFENSE, STAT_ATTACK}
var NATURE_MODEST = Nature{"modest", STAT_SPATTACK, STAT_ATTACK}
var NATURE_CALM = Nature{"calm", STAT_SPDEF, STAT_ATTACK}
var NATURE_TIMID = Nature{"timid", STAT_SPEED, STAT_ATTACK}

/// ======== -Defense Natures ========

var NATURE_LONELY = Nature{"lonely", STAT_ATTACK, STAT_DEFENSE}
var NATURE_MILD = Nature{"mild", STAT_SPATTACK, STAT_DEFENSE}
var NATURE_GENTLE = Nature{"gentle", STAT_SPDEF, STAT_DEFENSE}
var NATURE_HASTY = Nature{"hasty", STAT_SPEED, STAT_DEFENSE}

/// ======== -SpAttack Natures ========

var NATURE_ADAMANT = Nature{"adamant", STAT_ATTACK, STAT_SPATTACK}
var NATURE_IMPISH = Nature{"impish", STAT_DEFENSE, STAT_SPATTACK}
var NATURE_CAREFUL = Nature{"careful", STAT_SPDEF, STAT_SPATTACK}
var NATURE_JOLLY = Nature{"jolly", STAT_SPEED, STAT_SPATTACK}

/// ======== -SpDef Natures ========

var NATURE_NAUGHTY = Nature{"naughty", STAT_ATTACK, STAT_SPDEF}
var NATURE_LAX = Nature{"lax", STAT_DEFENSE, STAT_SPDEF}
var NATURE_RASH = Nature{"rash", STAT_SPATTACK, STAT_SPDEF}
var NATURE_NAIVE = Nature{"naive", STAT_SPEED, STAT_SPDEF}

/// ======== -Speed Natures ========

var NATURE_BRAVE = Nature{"brave", STAT_ATTACK, STAT_SPEED}
var NATURE_RELAXED = Nature{"relaxed", STAT_DEFENSE, STAT_SPEED}
var NATURE_QUIET = Nature{"quiet", STAT_SPATTACK, STAT_SPEED}
var NATURE_SASSY = Nature{"sassy", STAT_SPDEF, STAT_SPEED}

var NATURES = [...]Nature{
	NATURE_HARDY,
	NATURE_DOCILE,
	NATURE_BASHFUL,
	NATURE_QUIRKY,
	NATURE_SERIOUS,
	NATURE_BOLD,
	NATURE_MODEST,
	NATURE_CALM,
	NATURE_TIMID,
	NATURE_LONELY,
	NATURE_MILD,
	NATURE_GENTLE,
	NATURE_HASTY,
	NATURE_ADAMANT,
	NATURE_IMPISH,
	NATURE_CAREFUL,
	NATURE_JOLLY,
	NATURE_NAUGHTY,
	NATURE_LAX,
	NATURE_RASH,
	NATURE_NAIVE,
	NATURE_BRAVE,
	NATURE_RELAXED,
	NATURE_QUIET,
	NATURE_SASSY,
}

// LookupNature finds a nature by name, ignoring case
func LookupNature(name string) (Nature, bool) {
	for _, nature := range NATURES {
		if strings.EqualFold(nature.Name, name) {
			return nature, true
		}
	}

	return Nature{}, false
}
