package assistant

import (
	"regexp"
	"strings"
)

// careerKeywords flag messages that are career questions worth an AI answer
// instead of a canned menu reply.
var careerKeywords = []string{
	"what does", "what is", "how to", "help me choose", "which job",
	"career advice", "job role", "responsibilities", "skills needed",
	"salary", "requirements", "qualification", "experience",
	"difference between", "better job", "should i", "recommend",
}

// IsCareerQuestion reports whether a message looks like a career-related
// question.
func IsCareerQuestion(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range careerKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Job request detection scores a message for job-seeking intent. The
// vocabulary includes the Swahili terms users actually write (kazi, ajira).

var jobRequestKeywords = []string{
	"jobs", "job", "work", "employment", "vacancy", "vacancies", "opening", "openings",
	"position", "positions", "opportunity", "opportunities", "role", "roles",
	"find job", "get job", "search job", "look for job", "need job", "want job",
	"job alert", "job alerts", "job notification", "job notifications",
	"new job", "latest job", "recent job", "fresh job", "available job",
	"hire", "hiring", "recruitment", "recruit", "career", "careers",
	"employ", "occupation",
	"apply", "applying", "application", "applications",
	"kazi", "ajira", "nafasi", "nafasi za kazi",
}

var jobRequestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(show|send|get|give|find|share|provide)\s+me\s+(job|jobs|work|kazi|ajira)`),
	regexp.MustCompile(`\b(i\s+)?(want|need|looking\s+for|search\s+for|find)\s+(job|jobs|work|kazi|ajira)`),
	regexp.MustCompile(`\b(any\s+)?(new|latest|recent|fresh|available)\s+(job|jobs|work|kazi|ajira)`),
	regexp.MustCompile(`\b(job\s+)?(alert|alerts|notification|notifications)`),
	regexp.MustCompile(`\b(seeking|looking\s+for|searching\s+for)\s+(employment|work|job|jobs)`),
	regexp.MustCompile(`\b(help\s+me\s+)?(find|get|search)\s+(work|job|jobs|employment)`),
	regexp.MustCompile(`\b(are\s+there|is\s+there)\s+.*(job|jobs|work|employment)`),
	regexp.MustCompile(`\b(any\s+)?(job|jobs|work)\s+(available|vacancy|vacancies|opening|openings)`),
	regexp.MustCompile(`\b(do\s+you\s+have|got\s+any)\s+(job|jobs|work)`),
	regexp.MustCompile(`\b(tafuta|natafuta|napenda|nina\s+haja)\s+(kazi|ajira)`),
	regexp.MustCompile(`\b(kuna|iko|ipo)\s+(kazi|ajira)`),
}

var contextStrengtheners = []string{
	"urgent", "urgently", "immediately", "asap", "now", "today", "tomorrow",
	"salary", "pay", "payment", "income", "money", "earning",
	"full time", "part time", "freelance", "remote", "office",
	"experience", "skills", "qualification", "requirements",
	"application", "apply", "cv", "resume", "interview",
}

// nonJobIndicators mark other intents (balance checks, support requests) so
// they do not trip the job detector.
var nonJobIndicators = []string{
	"balance", "credit", "credits", "account", "help", "support",
	"problem", "issue", "error", "bug", "question", "how to",
	"what is", "explain", "tell me about", "describe",
}

// jobRequestThreshold is the confidence above which a message counts as a
// job request.
const jobRequestThreshold = 0.3

// DetectJobRequest scores a message for job-seeking intent and returns the
// decision together with the confidence in [0,1].
func DetectJobRequest(message string) (bool, float64) {
	msg := strings.ToLower(strings.TrimSpace(message))
	confidence := keywordScore(msg) + patternScore(msg) + contextScore(msg) + structureBonus(msg) - nonJobPenalty(msg)
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return confidence >= jobRequestThreshold, confidence
}

// IsJobRequest reports whether a message is likely asking for job listings.
func IsJobRequest(message string) bool {
	ok, _ := DetectJobRequest(message)
	return ok
}

func keywordScore(msg string) float64 {
	words := map[string]struct{}{}
	for _, w := range strings.Fields(msg) {
		words[w] = struct{}{}
	}
	score := 0.0
	for _, kw := range jobRequestKeywords {
		if !strings.Contains(msg, kw) {
			continue
		}
		if _, exact := words[kw]; exact {
			score += 0.3
		} else {
			score += 0.2
		}
	}
	if score > 0.6 {
		score = 0.6
	}
	return score
}

func patternScore(msg string) float64 {
	for _, re := range jobRequestPatterns {
		if re.MatchString(msg) {
			// One pattern match is enough; more would over-score.
			return 0.4
		}
	}
	return 0
}

func contextScore(msg string) float64 {
	score := 0.0
	for _, s := range contextStrengtheners {
		if strings.Contains(msg, s) {
			score += 0.1
		}
	}
	if score > 0.3 {
		score = 0.3
	}
	return score
}

func nonJobPenalty(msg string) float64 {
	penalty := 0.0
	for _, ind := range nonJobIndicators {
		if strings.Contains(msg, ind) {
			penalty += 0.15
		}
	}
	if penalty > 0.4 {
		penalty = 0.4
	}
	return penalty
}

func structureBonus(msg string) float64 {
	bonus := 0.0
	if strings.Contains(msg, "?") {
		bonus += 0.1
	}
	for _, w := range []string{"please", "can you", "could you", "would you", "help me"} {
		if strings.Contains(msg, w) {
			bonus += 0.05
			break
		}
	}
	for _, w := range []string{"urgent", "asap", "immediately", "now", "today"} {
		if strings.Contains(msg, w) {
			bonus += 0.1
			break
		}
	}
	if bonus > 0.2 {
		bonus = 0.2
	}
	return bonus
}
