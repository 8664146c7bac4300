package content

import (
	"math/rand"
)

// Shuffle returns a uniformly shuffled copy of items. The input is never
// mutated.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := append([]T(nil), items...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// SelectQuizSubset shuffles the pool, takes the first count questions (all of
// them if count exceeds the pool), and independently shuffles each selected
// question's options. Labels are reassigned in presentation order and
// CorrectLabel is moved to follow the correct option's text.
func SelectQuizSubset(pool []QuizItem, count int, rng *rand.Rand) []QuizItem {
	if count > len(pool) {
		count = len(pool)
	}
	picked := Shuffle(pool, rng)[:count]
	out := make([]QuizItem, 0, count)
	for _, q := range picked {
		out = append(out, shuffleOptions(q, rng))
	}
	return out
}

func shuffleOptions(q QuizItem, rng *rand.Rand) QuizItem {
	correctText := q.CorrectText()
	shuffled := q.clone()
	shuffled.Options = Shuffle(q.Options, rng)
	for i := range shuffled.Options {
		shuffled.Options[i].Label = string(rune('A' + i))
		if shuffled.Options[i].Text == correctText {
			shuffled.CorrectLabel = shuffled.Options[i].Label
		}
	}
	return shuffled
}

// BuildMatchDecks produces two independently shuffled orderings of the same
// saints, one for the image side and one for the name side.
func BuildMatchDecks(saints []Saint, rng *rand.Rand) (left, right []Saint) {
	return Shuffle(saints, rng), Shuffle(saints, rng)
}
