package engine

import (
	"fmt"
	"strings"
)

type Effort string

const (
	EffortSeed    Effort = "Seed (Quick)"
	EffortSapling Effort = "Sapling (Solid)"
	EffortOak     Effort = "Oak (Big Win)"
)

// DefaultEffort is used when user input is missing.
const DefaultEffort Effort = EffortSapling

func (e Effort) IsValid() bool {
	switch e {
	case EffortSeed, EffortSapling, EffortOak:
		return true
	default:
		return false
	}
}

// ParseEffort parses user input to an Effort.
// Supported: seed, sapling, oak (plus the full stored labels).
// Empty input returns DefaultEffort.
func ParseEffort(input string) (Effort, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultEffort, nil
	case "seed", "quick":
		return EffortSeed, nil
	case "sapling", "solid":
		return EffortSapling, nil
	case "oak", "big", "big win":
		return EffortOak, nil
	}
	if e := Effort(strings.TrimSpace(input)); e.IsValid() {
		return e, nil
	}
	return "", fmt.Errorf("invalid effort: %q (want seed|sapling|oak)", input)
}

// PointRange returns the inclusive reward range for an effort level.
func PointRange(e Effort) (low, high int, err error) {
	switch e {
	case EffortSeed:
		return 5, 15, nil
	case EffortSapling:
		return 20, 50, nil
	case EffortOak:
		return 60, 150, nil
	default:
		return 0, 0, fmt.Errorf("invalid effort: %q", e)
	}
}
