package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Job is one scraped job posting as the matcher sees it.
type Job struct {
	Title       string
	Company     string
	Location    string
	Link        string
	Description string
}

// MatchResult is the AI's verdict on whether a posting fits a user's
// interest category.
type MatchResult struct {
	MatchScore   int
	QualityScore int
	Analysis     string
	ShouldSend   bool
}

// Matcher scores job postings against a user interest, caching verdicts so
// the same posting is not re-analyzed for every subscriber of a category.
type Matcher struct {
	asker Asker
	cache *lru.Cache[string, MatchResult]
}

func NewMatcher(asker Asker) (*Matcher, error) {
	cache, err := lru.New[string, MatchResult](256)
	if err != nil {
		return nil, err
	}
	return &Matcher{asker: asker, cache: cache}, nil
}

const defaultScore = 50

// Match analyzes how well a job fits the given interest. On any failure it
// returns neutral scores with ShouldSend=true, so a degraded AI backend
// never suppresses alerts.
func (m *Matcher) Match(ctx context.Context, job Job, interest string) MatchResult {
	key := strings.ToLower(job.Title) + "|" + strings.ToLower(interest)
	if cached, ok := m.cache.Get(key); ok {
		return cached
	}

	desc := job.Description
	if len(desc) > 500 {
		desc = desc[:500] + "..."
	}
	prompt := fmt.Sprintf(`Analyze if this job matches the user's interest category.

Job Title: %s
Job Description: %s
User Interest: %s

Consider:
1. Job responsibilities and required skills
2. Career progression opportunities
3. Relevance to the user's chosen category
4. Job quality and legitimacy

Respond with:
- match_score: 0-100 (how well it matches)
- reasoning: Brief explanation
- quality_score: 0-100 (job posting quality)
- red_flags: Any concerns about the job posting`, job.Title, desc, interest)

	ans := m.asker.Ask(ctx, prompt, nil)
	if isFallback(ans) {
		return MatchResult{
			MatchScore:   defaultScore,
			QualityScore: defaultScore,
			Analysis:     "Unable to analyze job matching",
			ShouldSend:   true,
		}
	}

	match := extractScore(ans.Content, "match_score")
	quality := extractScore(ans.Content, "quality_score")
	result := MatchResult{
		MatchScore:   match,
		QualityScore: quality,
		Analysis:     ans.Content,
		ShouldSend:   match > 60 && quality > 50,
	}
	m.cache.Add(key, result)
	return result
}

// extractScore pulls "name: NN" out of the model's reply, defaulting to a
// neutral 50 when the reply does not contain it.
func extractScore(text, name string) int {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(name) + `:?\**\s*(\d+)`)
	matches := re.FindStringSubmatch(text)
	if len(matches) < 2 {
		return defaultScore
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil {
		return defaultScore
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
