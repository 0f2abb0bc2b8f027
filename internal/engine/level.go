package engine

// PointsPerLevel is the width of one level band.
const PointsPerLevel = 500

// LevelForPoints returns the level for a running point total.
// Level 1 starts at 0 points; each 500-point band advances one level.
func LevelForPoints(totalPoints int) int {
	if totalPoints < 0 {
		totalPoints = 0
	}
	return totalPoints/PointsPerLevel + 1
}

// PointsForLevel returns the total-point threshold at which the given
// level starts. Level 1 starts at 0.
func PointsForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * PointsPerLevel
}
