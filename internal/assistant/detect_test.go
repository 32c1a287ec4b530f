package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJobRequest(t *testing.T) {
	jobRequests := []string{
		"I need a job urgently",
		"Do you have any software engineering jobs?",
		"Show me jobs please",
		"Looking for work in data entry",
		"Any new job alerts?",
		"Natafuta kazi ya sales",
		"Help me find employment opportunities",
		"Can you send me some job notifications for customer service roles?",
		"Are there any available positions in finance sector?",
	}
	for _, msg := range jobRequests {
		assert.True(t, IsJobRequest(msg), "expected job request: %q", msg)
	}

	notJobRequests := []string{
		"What's my balance?",
		"I want to check my account credits",
		"hello",
		"thanks",
	}
	for _, msg := range notJobRequests {
		assert.False(t, IsJobRequest(msg), "expected non-job message: %q", msg)
	}
}

func TestDetectJobRequest_ConfidenceBounds(t *testing.T) {
	_, confidence := DetectJobRequest("job job jobs work vacancy hiring apply urgent salary please?")
	assert.LessOrEqual(t, confidence, 1.0)
	assert.GreaterOrEqual(t, confidence, 0.0)

	_, confidence = DetectJobRequest("")
	assert.Zero(t, confidence)
}

func TestIsCareerQuestion(t *testing.T) {
	assert.True(t, IsCareerQuestion("What does a data entry clerk do?"))
	assert.True(t, IsCareerQuestion("help me choose a category"))
	assert.True(t, IsCareerQuestion("What salary should I expect?"))
	assert.False(t, IsCareerQuestion("send me jobs"))
	assert.False(t, IsCareerQuestion("hello"))
}
