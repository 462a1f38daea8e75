package game

import (
	"math/rand"
	"time"
)

// Rand supplies uniform floats in [low, high)
type Rand interface {
	Uniform(low, high float64) float64
}

type mathRand struct {
	r *rand.Rand
}

// NewRand returns a seeded source. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Uniform(low, high float64) float64 {
	return low + m.r.Float64()*(high-low)
}

// launchVelocity draws a fresh vertical ball velocity
func launchVelocity(rng Rand) float64 {
	return rng.Uniform(-StartBallVelocity, StartBallVelocity)
}
