package game

import "math/rand/v2"

var (
	winPhrases = []string{
		"Nailed it!",
		"Brilliant!",
		"You cracked it!",
		"Well played!",
	}
	lossPhrases = []string{
		"So close!",
		"Out of lives!",
		"Better luck next time!",
		"The word got away!",
	}
)

// Phrase returns a cosmetic exclamation for a finished round, drawn from
// rng. It returns "" for a round still in progress.
func Phrase(o Outcome, rng *rand.Rand) string {
	var list []string
	switch o {
	case OutcomeWon:
		list = winPhrases
	case OutcomeLost:
		list = lossPhrases
	default:
		return ""
	}
	return list[rng.IntN(len(list))]
}
