package review

import (
	"math"
	"time"
)

// SM2Input holds all data needed for one SM-2 recalculation.
type SM2Input struct {
	CurrentEase     float64
	CurrentReps     int
	CurrentInterval int
	Quality         int
	Now             time.Time
	Config          SM2Config
}

// SM2Config holds the tunable SM-2 constants. Zero values are not usable;
// DefaultSM2Config returns the standard calibration.
type SM2Config struct {
	MinEase        float64
	FirstInterval  int // interval after the first successful review (days)
	SecondInterval int // interval after the second successful review (days)
}

// DefaultSM2Config returns the standard SM-2 constants: ease floor 1.3,
// interval ladder 1 day then 6 days.
func DefaultSM2Config() SM2Config {
	return SM2Config{
		MinEase:        1.3,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// SM2Output is the result of an SM-2 recalculation.
type SM2Output struct {
	NewEase      float64
	NewReps      int
	NewInterval  int
	NextReviewAt time.Time
}

// CalculateNextReview is a pure function. No DB, no context, no logger.
//
// The ease factor is recomputed first, for successes and lapses alike:
//
//	EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02))
//
// floored at Config.MinEase with no upper bound. Quality >= 3 is a successful
// recall: the repetition streak grows and the interval follows the ladder
// 1 day, 6 days, then round(previous * EF'). Quality < 3 is a lapse: the
// streak resets and the item comes back tomorrow regardless of how long its
// interval had grown.
//
// Quality outside 0-5 is not rejected; the arithmetic is total and the
// ease floor keeps the result sane.
func CalculateNextReview(input SM2Input) SM2Output {
	q := float64(input.Quality)
	newEase := input.CurrentEase + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if newEase < input.Config.MinEase {
		newEase = input.Config.MinEase
	}

	var newReps, newInterval int
	if input.Quality >= 3 {
		newReps = input.CurrentReps + 1
		switch {
		case newReps == 1:
			newInterval = input.Config.FirstInterval
		case newReps == 2:
			newInterval = input.Config.SecondInterval
		default:
			newInterval = int(math.Round(float64(input.CurrentInterval) * newEase))
		}
	} else {
		newReps = 0
		newInterval = 1
	}

	return SM2Output{
		NewEase:      newEase,
		NewReps:      newReps,
		NewInterval:  newInterval,
		NextReviewAt: input.Now.AddDate(0, 0, newInterval),
	}
}
