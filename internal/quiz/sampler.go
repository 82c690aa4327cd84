package quiz

import (
	"math/rand"
	"time"
)

// Sampler picks the active question sequence of a session from a bank.
type Sampler interface {
	Sample(bank Bank, maxCount int) []Question
}

// RandomSampler draws a uniformly random subset in random order.
type RandomSampler struct {
	rng *rand.Rand
}

func NewRandomSampler(rng *rand.Rand) *RandomSampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomSampler{rng: rng}
}

// Sample returns min(maxCount, len(bank)) distinct questions using a partial
// Fisher-Yates shuffle over bank indexes.
func (s *RandomSampler) Sample(bank Bank, maxCount int) []Question {
	if maxCount <= 0 || len(bank) == 0 {
		return []Question{}
	}

	target := maxCount
	if target > len(bank) {
		target = len(bank)
	}

	indexes := make([]int, len(bank))
	for idx := range indexes {
		indexes[idx] = idx
	}

	picked := make([]Question, 0, target)
	for idx := 0; idx < target; idx++ {
		j := idx + s.rng.Intn(len(indexes)-idx)
		indexes[idx], indexes[j] = indexes[j], indexes[idx]
		picked = append(picked, bank[indexes[idx]])
	}
	return picked
}
