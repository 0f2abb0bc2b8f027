package engine

// Reward trees unlock by rarity tier as the player levels up. Higher
// tiers add to the pool; they never replace lower ones, so a level-15
// player can still draw a common tree.
var (
	treesCommon    = []string{"🌲", "🌳", "🌿"}
	treesUncommon  = []string{"🌴", "🌵", "🎍"}
	treesRare      = []string{"🌸", "🍂", "🍄", "🍀"}
	treesLegendary = []string{"🎋", "🎐", "⛲"}
)

// Tier unlock levels.
const (
	LevelUncommonTrees  = 3
	LevelRareTrees      = 7
	LevelLegendaryTrees = 15
)

// UnlockedTrees returns the cumulative reward pool for a level.
func UnlockedTrees(level int) []string {
	pool := make([]string, 0, len(treesCommon)+len(treesUncommon)+len(treesRare)+len(treesLegendary))
	pool = append(pool, treesCommon...)
	if level >= LevelUncommonTrees {
		pool = append(pool, treesUncommon...)
	}
	if level >= LevelRareTrees {
		pool = append(pool, treesRare...)
	}
	if level >= LevelLegendaryTrees {
		pool = append(pool, treesLegendary...)
	}
	return pool
}

// NextTierLevel returns the level at which the next rarity tier
// unlocks, or 0 when every tier is already unlocked.
func NextTierLevel(level int) int {
	switch {
	case level < LevelUncommonTrees:
		return LevelUncommonTrees
	case level < LevelRareTrees:
		return LevelRareTrees
	case level < LevelLegendaryTrees:
		return LevelLegendaryTrees
	default:
		return 0
	}
}

func selectTree(rng Rand, level int) string {
	pool := UnlockedTrees(level)
	return pool[rng.IntN(len(pool))]
}
