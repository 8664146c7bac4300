package codegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCodeShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
		seen[code] = true
	}
	// 200 draws from a million-value space colliding down to a handful would
	// mean a broken generator.
	assert.Greater(t, len(seen), 150)
}

func TestEntryAccumulationAndEditing(t *testing.T) {
	g := NewGate("042137")

	n, full := g.PressDigit('0')
	assert.Equal(t, 1, n)
	assert.False(t, full)

	for _, d := range "42137" {
		n, full = g.PressDigit(d)
	}
	assert.Equal(t, 6, n)
	assert.True(t, full)
	assert.Equal(t, "042137", g.Entry())

	// A seventh digit is dropped.
	n, full = g.PressDigit('9')
	assert.Equal(t, 6, n)
	assert.True(t, full)

	g.Backspace()
	assert.Equal(t, "04213", g.Entry())

	g.Clear()
	assert.Empty(t, g.Entry())

	// Backspace on empty is harmless.
	g.Backspace()
	assert.Empty(t, g.Entry())
}

func TestNonDigitsRejected(t *testing.T) {
	g := NewGate("123456")
	n, _ := g.PressDigit('x')
	assert.Equal(t, 0, n)
	n, _ = g.PressDigit('.')
	assert.Equal(t, 0, n)
}

func TestVerifyExactMatch(t *testing.T) {
	g := NewGate("000042")
	for _, d := range "000042" {
		g.PressDigit(d)
	}
	res := g.Verify()
	assert.Equal(t, OutcomeVerified, res.Outcome)
}

func TestVerifyIncompleteEntry(t *testing.T) {
	g := NewGate("123456")
	g.PressDigit('1')
	res := g.Verify()
	assert.Equal(t, OutcomeIncomplete, res.Outcome)
	assert.Equal(t, 2, res.AttemptsRemaining)
}

func TestOneFailureThenSuccess(t *testing.T) {
	g := NewGate("123456")

	for _, d := range "654321" {
		g.PressDigit(d)
	}
	res := g.Verify()
	require.Equal(t, OutcomeRetry, res.Outcome)
	assert.Equal(t, 1, res.AttemptsRemaining)
	assert.Empty(t, g.Entry(), "wrong entry clears for the retry")
	assert.False(t, g.InPenance())

	for _, d := range "123456" {
		g.PressDigit(d)
	}
	res = g.Verify()
	assert.Equal(t, OutcomeVerified, res.Outcome)
}

func TestTwoFailuresTriggerPenance(t *testing.T) {
	g := NewGate("123456")

	for i := 0; i < 2; i++ {
		for _, d := range "000000" {
			g.PressDigit(d)
		}
		res := g.Verify()
		if i == 0 {
			assert.Equal(t, OutcomeRetry, res.Outcome)
		} else {
			assert.Equal(t, OutcomePenance, res.Outcome)
		}
	}
	assert.True(t, g.InPenance())

	// Digits are dead once penance starts.
	n, _ := g.PressDigit('1')
	assert.Equal(t, 0, n)
	res := g.Verify()
	assert.Equal(t, OutcomePenance, res.Outcome)
}

func TestForgotCodeSkipsToPenance(t *testing.T) {
	g := NewGate("123456")
	g.ForgotCode()
	assert.True(t, g.InPenance())
}

func TestPenanceChecklist(t *testing.T) {
	g := NewGate("123456")
	g.ForgotCode()

	assert.False(t, g.PenanceComplete())
	for i := 0; i < 5; i++ {
		g.TogglePenance(i)
	}
	assert.True(t, g.PenanceComplete())

	// Unchecking one box revokes completion.
	g.TogglePenance(2)
	assert.False(t, g.PenanceComplete())
	checked := g.PenanceChecked()
	assert.False(t, checked[2])
	assert.True(t, checked[0])

	// Out-of-range toggles are ignored.
	g.TogglePenance(-1)
	g.TogglePenance(5)
	assert.Equal(t, checked, g.PenanceChecked())
}

func TestPenanceToggleInactiveBeforePenance(t *testing.T) {
	g := NewGate("123456")
	g.TogglePenance(0)
	assert.False(t, g.PenanceChecked()[0])
}

func TestPenanceCheckedReturnsCopy(t *testing.T) {
	g := NewGate("123456")
	g.ForgotCode()
	checked := g.PenanceChecked()
	checked[0] = true
	assert.False(t, g.PenanceChecked()[0])
}
