package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	uctx := &UserContext{Interest: "data entry", Balance: 10, History: []string{"hi", "hello"}}
	a := Fingerprint("What is data entry?", uctx)
	b := Fingerprint("What is data entry?", &UserContext{Interest: "data entry", Balance: 10, History: []string{"hi", "hello"}})
	assert.Equal(t, a, b)
}

func TestFingerprint_NormalizesWhitespaceAndCase(t *testing.T) {
	a := Fingerprint("What is data entry?", nil)
	b := Fingerprint("  what   IS data ENTRY? ", nil)
	assert.Equal(t, a, b)
}

func TestFingerprint_ContextDiscriminates(t *testing.T) {
	base := Fingerprint("which job suits me?", &UserContext{Interest: "sales & marketing", Balance: 3})

	assert.NotEqual(t, base, Fingerprint("which job suits me?", nil))
	assert.NotEqual(t, base, Fingerprint("which job suits me?", &UserContext{Interest: "software engineering", Balance: 3}))
	assert.NotEqual(t, base, Fingerprint("which job suits me?", &UserContext{Interest: "sales & marketing", Balance: 4}))
	assert.NotEqual(t, base, Fingerprint("which job suits me?", &UserContext{Interest: "sales & marketing", Balance: 3, History: []string{"hi"}}))
}

func TestFingerprint_OnlyTrailingHistoryCounts(t *testing.T) {
	long := &UserContext{History: []string{"a", "b", "c", "d", "e"}}
	trimmed := &UserContext{History: []string{"c", "d", "e"}}
	assert.Equal(t, Fingerprint("q", long), Fingerprint("q", trimmed))
}

func TestFingerprint_DifferentPromptsDiffer(t *testing.T) {
	assert.NotEqual(t, Fingerprint("a", nil), Fingerprint("b", nil))
}
