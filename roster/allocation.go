package roster

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNotANumber      = errors.New("value must be a whole number")
	ErrNegative        = errors.New("value cannot be negative")
	ErrStatCapExceeded = fmt.Errorf("a single stat cannot have more than %d EVs", MAX_EV)
	ErrBudgetExceeded  = fmt.Errorf("EVs cannot total more than %d", MAX_TOTAL_EV)
	ErrIvOutOfRange    = fmt.Errorf("IVs must be between 0 and %d", MAX_IV)
	ErrUnknownStat     = errors.New("unknown stat")
)

// ParseAllocation turns raw user input into a non-negative amount
func ParseAllocation(input string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}

	if parsed < 0 {
		return 0, ErrNegative
	}

	return parsed, nil
}

// ProposeEffort checks whether requested EVs can be added on top of current for stat.
// The per-stat cap is checked before the shared budget.
func ProposeEffort(current StatBlock, stat Stat, requested int) (int, error) {
	if !stat.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStat, stat)
	}

	if requested < 0 {
		return 0, ErrNegative
	}

	// compared against the space left so huge requests can't wrap around
	if statSpace := MAX_EV - current[stat]; requested > statSpace {
		return 0, fmt.Errorf("%w: %s only has room for %d more", ErrStatCapExceeded, stat, max(0, statSpace))
	}

	if budget := MAX_TOTAL_EV - current.Total(); requested > budget {
		return 0, fmt.Errorf("%w: only %d EVs left to spend", ErrBudgetExceeded, max(0, budget))
	}

	return requested, nil
}

// EffortCeiling is the most EVs that could still be added to stat.
// Only used for display; ProposeEffort does the actual checking.
func EffortCeiling(current StatBlock, stat Stat) int {
	return max(0, min(MAX_EV-current[stat], MAX_TOTAL_EV-current.Total()))
}

// ProposePotential checks a single IV. IVs don't share a budget.
func ProposePotential(stat Stat, requested int) (int, error) {
	if !stat.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownStat, stat)
	}

	if requested < 0 || requested > MAX_IV {
		return 0, fmt.Errorf("%w: got %d", ErrIvOutOfRange, requested)
	}

	return requested, nil
}

// EffortAllocator walks the stat categories over and over until the EV budget is spent.
// A category at MAX_EV is skipped on later passes.
type EffortAllocator struct {
	evs     StatBlock
	next    int
	pass    int
	stopped bool
	canStop bool
}

func NewEffortAllocator(allowPartial bool) *EffortAllocator {
	return &EffortAllocator{
		evs:     NewStatBlock(),
		canStop: allowPartial,
	}
}

// Done reports whether allocation is finished. Without partial EVs this is only
// true once the total is exactly MAX_TOTAL_EV.
func (a *EffortAllocator) Done() bool {
	return a.stopped || a.evs.Total() == MAX_TOTAL_EV
}

// Next returns the next stat to prompt for and which pass through the stats this is (starting at 1)
func (a *EffortAllocator) Next() (Stat, int, bool) {
	if a.Done() {
		return "", a.pass, false
	}

	for range Stats {
		if a.next == 0 {
			a.pass++
		}

		stat := Stats[a.next]
		a.next = (a.next + 1) % len(Stats)

		if EffortCeiling(a.evs, stat) > 0 {
			return stat, a.pass, true
		}
	}

	// Every stat is capped but the total isn't reached. Can't happen with 6*252 > 508.
	return "", a.pass, false
}

// Propose validates requested for stat and adds it to the running totals when accepted
func (a *EffortAllocator) Propose(stat Stat, requested int) error {
	accepted, err := ProposeEffort(a.evs, stat, requested)
	if err != nil {
		return err
	}

	a.evs[stat] += accepted
	internalLogger.V(1).Info("allocated evs", "stat", stat, "amount", accepted, "total", a.evs.Total())

	return nil
}

// Validator returns a prompt validation func for stat
func (a *EffortAllocator) Validator(stat Stat) func(string) error {
	return func(input string) error {
		amount, err := ParseAllocation(input)
		if err != nil {
			return err
		}

		_, err = ProposeEffort(a.evs, stat, amount)
		return err
	}
}

func (a *EffortAllocator) Ceiling(stat Stat) int {
	return EffortCeiling(a.evs, stat)
}

func (a *EffortAllocator) Remaining() int {
	return MAX_TOTAL_EV - a.evs.Total()
}

func (a *EffortAllocator) CanStop() bool {
	return a.canStop
}

// Stop ends allocation early. Only allowed when partial EVs are enabled.
func (a *EffortAllocator) Stop() bool {
	if !a.canStop {
		return false
	}

	a.stopped = true
	return true
}

func (a *EffortAllocator) Evs() StatBlock {
	return a.evs.Clone()
}

// PotentialValidator returns a prompt validation func for a single IV
func PotentialValidator(stat Stat) func(string) error {
	return func(input string) error {
		amount, err := ParseAllocation(input)
		if err != nil {
			return err
		}

		_, err = ProposePotential(stat, amount)
		return err
	}
}

func LevelValidator(input string) error {
	level, err := ParseAllocation(input)
	if err != nil {
		return err
	}

	if level < MIN_LEVEL || level > MAX_LEVEL {
		return fmt.Errorf("level must be between %d and %d", MIN_LEVEL, MAX_LEVEL)
	}

	return nil
}

func TeamSizeValidator(input string) error {
	size, err := ParseAllocation(input)
	if err != nil {
		return err
	}

	if size < MIN_TEAM_SIZE || size > MAX_TEAM_SIZE {
		return fmt.Errorf("team size must be between %d and %d", MIN_TEAM_SIZE, MAX_TEAM_SIZE)
	}

	return nil
}
