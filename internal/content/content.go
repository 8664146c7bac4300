package content

import (
	"fmt"
)

// Saint is one matchable item in the memory game. The table is fixed at
// build time and never mutated; rounds operate on shuffled copies.
type Saint struct {
	ID    int
	Name  string
	Image string
}

// Option is a single answer choice. Labels are presentation-order letters
// (A, B, C, ...) and are reassigned whenever options are shuffled.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuizItem is one emoji quiz question. CorrectLabel always references an
// existing option label, including after relabeling.
type QuizItem struct {
	ID           int      `json:"id"`
	Emojis       []string `json:"emojis"`
	Question     string   `json:"question"`
	Options      []Option `json:"options"`
	CorrectLabel string   `json:"correct_label"`
}

// Validate checks the structural invariants of a quiz item: at least two
// options, unique labels, and a correct label that matches exactly one option.
func (q QuizItem) Validate() error {
	if len(q.Options) < 2 {
		return fmt.Errorf("question %d: needs at least two options, got %d", q.ID, len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	correct := 0
	for _, opt := range q.Options {
		if seen[opt.Label] {
			return fmt.Errorf("question %d: duplicate option label %q", q.ID, opt.Label)
		}
		seen[opt.Label] = true
		if opt.Label == q.CorrectLabel {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("question %d: correct label %q matches %d options", q.ID, q.CorrectLabel, correct)
	}
	return nil
}

// CorrectText returns the text of the correct option, or "" if the item is
// malformed.
func (q QuizItem) CorrectText() string {
	for _, opt := range q.Options {
		if opt.Label == q.CorrectLabel {
			return opt.Text
		}
	}
	return ""
}

// clone returns a deep copy so shuffles never alias table storage.
func (q QuizItem) clone() QuizItem {
	out := q
	out.Emojis = append([]string(nil), q.Emojis...)
	out.Options = append([]Option(nil), q.Options...)
	return out
}

// Saints returns a copy of the saint table.
func Saints() []Saint {
	return append([]Saint(nil), saintTable...)
}

// Questions returns a deep copy of the full quiz pool.
func Questions() []QuizItem {
	out := make([]QuizItem, len(quizTable))
	for i, q := range quizTable {
		out[i] = q.clone()
	}
	return out
}

// ValidateTables verifies every built-in question at startup.
func ValidateTables() error {
	ids := make(map[int]bool, len(quizTable))
	for _, q := range quizTable {
		if ids[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		ids[q.ID] = true
		if err := q.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[int]bool, len(saintTable))
	for _, s := range saintTable {
		if seen[s.ID] {
			return fmt.Errorf("duplicate saint id %d", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}
