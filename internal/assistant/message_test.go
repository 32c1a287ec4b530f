package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobalert/internal/llm"
)

func TestPersonalizedAlert_UsesModelReply(t *testing.T) {
	a := New(&fakeAsker{reply: "🔥 Great data entry role at Acme, apply now!"}, nil)
	out := a.PersonalizedAlert(context.Background(), testJob(), &llm.UserContext{Interest: "data entry", Balance: 4})
	assert.Equal(t, "🔥 Great data entry role at Acme, apply now!", out)
}

func TestPersonalizedAlert_FallsBackToTemplate(t *testing.T) {
	a := New(&fakeAsker{degraded: true}, nil)
	uctx := &llm.UserContext{Interest: "data entry", Balance: 4}
	out := a.PersonalizedAlert(context.Background(), testJob(), uctx)

	assert.Contains(t, out, "Junior Data Entry Clerk")
	assert.Contains(t, out, "Acme Ltd")
	assert.Contains(t, out, "Nairobi")
	assert.Contains(t, out, "Balance: 3")
}

func TestStandardAlert_FillsDefaults(t *testing.T) {
	out := StandardAlert(Job{}, nil)
	assert.Contains(t, out, "Job Opportunity")
	assert.Contains(t, out, "Kenya")
	assert.Contains(t, out, "*New Job Alert!*")
}

func TestFormatModelStats_Empty(t *testing.T) {
	out := FormatModelStats(llm.StatsReport{})
	assert.Contains(t, out, "No usage data yet")
}

func TestFormatModelStats_RendersRates(t *testing.T) {
	report := llm.StatsReport{
		Daily: llm.DailyUsage{Date: "2025-06-01", Requests: 10, CacheHits: 4, ModelSwitches: 1},
		Models: []llm.ModelUsage{
			{Model: "deepseek/deepseek-r1:free", Attempts: 8, Successes: 6},
			{Model: "gemini-2.0-flash", Attempts: 2, Successes: 0},
		},
	}
	out := FormatModelStats(report)

	assert.Contains(t, out, "deepseek/deepseek-r1:free")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "0.0%")
	assert.Contains(t, out, "2025-06-01")
	assert.Contains(t, out, "10 requests")
}
