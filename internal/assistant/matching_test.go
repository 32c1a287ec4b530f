package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJob() Job {
	return Job{
		Title:       "Junior Data Entry Clerk",
		Company:     "Acme Ltd",
		Location:    "Nairobi",
		Link:        "https://example.com/jobs/1",
		Description: "Enter data into spreadsheets all day.",
	}
}

func TestMatcher_ParsesScores(t *testing.T) {
	asker := &fakeAsker{reply: "match_score: 85\nreasoning: strong overlap\nquality_score: 70\nred_flags: none"}
	m, err := NewMatcher(asker)
	require.NoError(t, err)

	res := m.Match(context.Background(), testJob(), "data entry")
	assert.Equal(t, 85, res.MatchScore)
	assert.Equal(t, 70, res.QualityScore)
	assert.True(t, res.ShouldSend)
}

func TestMatcher_LowScoresSuppressSend(t *testing.T) {
	asker := &fakeAsker{reply: "match_score: 20\nquality_score: 90"}
	m, err := NewMatcher(asker)
	require.NoError(t, err)

	res := m.Match(context.Background(), testJob(), "software engineering")
	assert.False(t, res.ShouldSend)
}

func TestMatcher_BoundaryScoresSuppressSend(t *testing.T) {
	// ShouldSend needs match > 60 and quality > 50, strictly.
	asker := &fakeAsker{reply: "match_score: 60\nquality_score: 51"}
	m, err := NewMatcher(asker)
	require.NoError(t, err)
	assert.False(t, m.Match(context.Background(), testJob(), "data entry").ShouldSend)
}

func TestMatcher_CachesVerdictPerJobAndInterest(t *testing.T) {
	asker := &fakeAsker{reply: "match_score: 80\nquality_score: 80"}
	m, err := NewMatcher(asker)
	require.NoError(t, err)
	ctx := context.Background()

	m.Match(ctx, testJob(), "data entry")
	m.Match(ctx, testJob(), "data entry")
	assert.Equal(t, 1, asker.askCount(), "same job+interest must be analyzed once")

	m.Match(ctx, testJob(), "software engineering")
	assert.Equal(t, 2, asker.askCount(), "a different interest is a separate verdict")
}

func TestMatcher_DegradedBackendDefaultsToSend(t *testing.T) {
	asker := &fakeAsker{degraded: true}
	m, err := NewMatcher(asker)
	require.NoError(t, err)

	res := m.Match(context.Background(), testJob(), "data entry")
	assert.Equal(t, defaultScore, res.MatchScore)
	assert.Equal(t, defaultScore, res.QualityScore)
	assert.True(t, res.ShouldSend, "analysis failure must not suppress alerts")
}

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain", "match_score: 72", 72},
		{"mixed case", "Match_Score: 33", 33},
		{"markdown bold", "**match_score:** 90", 90},
		{"missing", "no scores here", defaultScore},
		{"clamped high", "match_score: 250", 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractScore(tt.text, "match_score"))
		})
	}
}
