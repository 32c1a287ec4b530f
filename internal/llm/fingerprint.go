package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// historyDepth bounds how many trailing conversation turns feed the prompt
// and the cache key.
const historyDepth = 3

// Fingerprint derives a deterministic cache key from the normalized prompt
// plus the context fields that affect the answer. Identical prompt+context
// always map to the same key; users with different interest, balance, or
// recent history never share an entry.
func Fingerprint(prompt string, uctx *UserContext) string {
	h := sha256.New()
	h.Write([]byte(normalizePrompt(prompt)))
	if uctx != nil {
		fmt.Fprintf(h, "|interest=%s|balance=%d", strings.ToLower(strings.TrimSpace(uctx.Interest)), uctx.Balance)
		for _, turn := range lastTurns(uctx.History, historyDepth) {
			h.Write([]byte("|h="))
			h.Write([]byte(turn))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// normalizePrompt lowercases and collapses runs of whitespace so cosmetic
// differences in the same question hit the same entry.
func normalizePrompt(prompt string) string {
	return strings.Join(strings.Fields(strings.ToLower(prompt)), " ")
}

func lastTurns(history []string, n int) []string {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}
