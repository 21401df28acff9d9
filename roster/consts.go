package roster

const (
	MAX_IV       = 31
	MAX_EV       = 252
	MAX_TOTAL_EV = 508

	MIN_LEVEL = 1
	MAX_LEVEL = 100

	MIN_MOVES = 1
	MAX_MOVES = 4

	MIN_TEAM_SIZE = 1
	MAX_TEAM_SIZE = 6
)

const (
	DEFAULT_VERSION_GROUP = "scarlet-violet"
	DEFAULT_LANGUAGE      = "en"
)

// Stat is one of the six stat categories, named the way PokeAPI names them
type Stat string

const (
	STAT_HP       Stat = "hp"
	STAT_ATTACK   Stat = "attack"
	STAT_DEFENSE  Stat = "defense"
	STAT_SPATTACK Stat = "special-attack"
	STAT_SPDEF    Stat = "special-defense"
	STAT_SPEED    Stat = "speed"
)

// Stats is every stat category in the order they are prompted and displayed
var Stats = [...]Stat{
	STAT_HP,
	STAT_ATTACK,
	STAT_DEFENSE,
	STAT_SPATTACK,
	STAT_SPDEF,
	STAT_SPEED,
}

func (s Stat) Valid() bool {
	for _, stat := range Stats {
		if s == stat {
			return true
		}
	}

	return false
}

// StatBlock maps a stat category to a value. Used for base stats, EVs and IVs.
type StatBlock map[Stat]int

func NewStatBlock() StatBlock {
	block := make(StatBlock, len(Stats))
	for _, stat := range Stats {
		block[stat] = 0
	}

	return block
}

// FilledStatBlock returns a block where every stat is set to value
func FilledStatBlock(value int) StatBlock {
	block := NewStatBlock()
	for _, stat := range Stats {
		block[stat] = value
	}

	return block
}

func (b StatBlock) Total() int {
	total := 0
	for _, stat := range Stats {
		total += b[stat]
	}

	return total
}

func (b StatBlock) Clone() StatBlock {
	clone := make(StatBlock, len(b))
	for stat, value := range b {
		clone[stat] = value
	}

	return clone
}
