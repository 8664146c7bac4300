package codegate

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Penance checklist size: five acknowledgements, all required.
const penanceCount = 5

// Attempt threshold before the penance flow. The second wrong entry (or an
// explicit "forgot code") triggers it.
const maxAttempts = 2

// codeLength is the fixed width of issued codes.
const codeLength = 6

// GenerateCode returns a uniformly random 6-digit code as fixed-width text.
// Leading zeros are valid ("000042" can be issued).
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate security code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Outcome classifies a verification attempt.
type Outcome string

const (
	// OutcomeVerified: exact match, proceed to results.
	OutcomeVerified Outcome = "verified"
	// OutcomeRetry: wrong code with attempts remaining.
	OutcomeRetry Outcome = "retry"
	// OutcomePenance: attempt budget exhausted (or forgot-code pressed).
	OutcomePenance Outcome = "penance"
	// OutcomeIncomplete: fewer than six digits entered.
	OutcomeIncomplete Outcome = "incomplete"
)

// Result describes one verification attempt.
type Result struct {
	Outcome           Outcome
	AttemptsRemaining int
}

// Gate runs the verify-screen state machine: digit accumulation, exact-match
// verification with attempt counting, and the penance checklist. Not
// goroutine-safe; the flow runtime serializes access.
type Gate struct {
	code      string
	entry     string
	attempts  int
	inPenance bool
	checked   [penanceCount]bool
}

// NewGate creates a gate verifying against the issued code.
func NewGate(code string) *Gate {
	return &Gate{code: code}
}

// PressDigit appends one digit to the pending entry, capped at six.
// Returns the entry length and whether the entry is full (caller should
// debounce then Verify).
func (g *Gate) PressDigit(d rune) (int, bool) {
	if g.inPenance || d < '0' || d > '9' || len(g.entry) >= codeLength {
		return len(g.entry), len(g.entry) == codeLength
	}
	g.entry += string(d)
	return len(g.entry), len(g.entry) == codeLength
}

// Backspace removes the last pending digit.
func (g *Gate) Backspace() {
	if len(g.entry) > 0 {
		g.entry = g.entry[:len(g.entry)-1]
	}
}

// Clear drops the whole pending entry.
func (g *Gate) Clear() {
	g.entry = ""
}

// Entry returns the pending digits.
func (g *Gate) Entry() string { return g.entry }

// Verify compares the pending entry against the issued code. Wrong entries
// below the attempt threshold clear the entry for a retry; reaching the
// threshold enters penance.
func (g *Gate) Verify() Result {
	if g.inPenance {
		return Result{Outcome: OutcomePenance}
	}
	if len(g.entry) != codeLength {
		return Result{Outcome: OutcomeIncomplete, AttemptsRemaining: maxAttempts - g.attempts}
	}
	if g.entry == g.code {
		return Result{Outcome: OutcomeVerified}
	}

	g.attempts++
	g.entry = ""
	if g.attempts >= maxAttempts {
		g.inPenance = true
		return Result{Outcome: OutcomePenance}
	}
	return Result{Outcome: OutcomeRetry, AttemptsRemaining: maxAttempts - g.attempts}
}

// ForgotCode skips straight to penance.
func (g *Gate) ForgotCode() {
	g.inPenance = true
}

// InPenance reports whether the penance checklist is active.
func (g *Gate) InPenance() bool { return g.inPenance }

// TogglePenance flips one acknowledgement. Out-of-range indexes are ignored.
func (g *Gate) TogglePenance(i int) {
	if !g.inPenance || i < 0 || i >= penanceCount {
		return
	}
	g.checked[i] = !g.checked[i]
}

// PenanceChecked returns a copy of the checklist state.
func (g *Gate) PenanceChecked() []bool {
	return append([]bool(nil), g.checked[:]...)
}

// PenanceComplete reports whether all five acknowledgements are checked.
func (g *Gate) PenanceComplete() bool {
	for _, c := range g.checked {
		if !c {
			return false
		}
	}
	return true
}
