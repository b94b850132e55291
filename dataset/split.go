package dataset

import (
	"math"
	"math/rand"
)

const (
	DefaultValidationFraction = 0.03
	DefaultSeed               = 42
)

// TrainValidationSplit
// Shuffles items with a generator seeded by seed and holds out
// ceil(fraction * len(items)) of them for validation. The same seed and
// input always produce the same split; items itself is left untouched.
func TrainValidationSplit[T any](items []T, fraction float64,
	seed int64) (train []T, validation []T) {
	if fraction <= 0 || len(items) == 0 {
		return append([]T(nil), items...), []T{}
	}
	if fraction > 1 {
		fraction = 1
	}
	numValidation := int(math.Ceil(fraction * float64(len(items))))
	order := rand.New(rand.NewSource(seed)).Perm(len(items))
	validation = make([]T, 0, numValidation)
	train = make([]T, 0, len(items)-numValidation)
	for rank, idx := range order {
		if rank < numValidation {
			validation = append(validation, items[idx])
		} else {
			train = append(train, items[idx])
		}
	}
	return train, validation
}
