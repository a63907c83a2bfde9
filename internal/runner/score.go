package runner

// ScoreKeeper counts points on a fixed tick cadence and tracks the best score.
type ScoreKeeper struct {
	score         int
	highScore     int
	ticksPerPoint int
	newHigh       bool
}

// NewScoreKeeper creates a keeper seeded with an externally stored high score.
func NewScoreKeeper(ticksPerPoint, highScore int) *ScoreKeeper {
	if highScore < 0 {
		highScore = 0
	}
	return &ScoreKeeper{
		ticksPerPoint: ticksPerPoint,
		highScore:     highScore,
	}
}

// Reset zeroes the score for a new run. The high score is kept.
func (k *ScoreKeeper) Reset() {
	k.score = 0
	k.newHigh = false
}

// Tick adds a point when frame lands on the cadence. Returns true if it did.
func (k *ScoreKeeper) Tick(frame int) bool {
	if frame <= 0 || frame%k.ticksPerPoint != 0 {
		return false
	}
	k.score++
	return true
}

// Finish closes the run: it returns the high score and whether this run set it.
func (k *ScoreKeeper) Finish() (highScore int, isNew bool) {
	if k.score > k.highScore {
		k.highScore = k.score
		k.newHigh = true
	}
	return k.highScore, k.newHigh
}

// Score returns the current score.
func (k *ScoreKeeper) Score() int { return k.score }

// HighScore returns the best known score.
func (k *ScoreKeeper) HighScore() int { return k.highScore }

// NewHighScore reports whether the last finished run set the high score.
func (k *ScoreKeeper) NewHighScore() bool { return k.newHigh }
