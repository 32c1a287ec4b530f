package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobalert/internal/llm"
)

// Asker is the slice of the broker the assistant needs.
type Asker interface {
	Ask(ctx context.Context, prompt string, uctx *llm.UserContext) llm.Answer
}

// Assistant is the job-domain layer on top of the AI broker: it owns the
// prompts and parses the model's replies back into bot decisions.
type Assistant struct {
	asker Asker
	log   *log.Logger
}

func New(asker Asker, logger *log.Logger) *Assistant {
	if logger == nil {
		logger = log.Default()
	}
	return &Assistant{asker: asker, log: logger}
}

// SystemPrompt is the persona given to every conversational call.
func SystemPrompt() string {
	return fmt.Sprintf(`You are an AI assistant for a WhatsApp Job Alert Bot in Kenya. Your role is to:

1. Help users understand different job roles and career paths
2. Explain job categories in simple, clear terms
3. Assist users in choosing the right job category based on their interests and skills
4. Provide career advice and guidance
5. Help with onboarding and explaining how the bot works

Available job categories:
%s

Guidelines:
- Keep responses concise (under 200 words for WhatsApp)
- Use simple, clear language suitable for all education levels
- Be encouraging and supportive
- Focus on practical, actionable advice
- When suggesting job categories, explain why they might be a good fit
- Always end with a helpful next step or question

Context: This is for a Kenyan job market, so be relevant to local opportunities and culture.`, categoryBullets())
}

// Answer forwards a user question to the broker with their context attached.
func (a *Assistant) Answer(ctx context.Context, question string, uctx *llm.UserContext) llm.Answer {
	return a.asker.Ask(ctx, question, uctx)
}

// CareerAdvice answers a career question framed for the Kenyan job market.
func (a *Assistant) CareerAdvice(ctx context.Context, question string, uctx *llm.UserContext) string {
	prompt := fmt.Sprintf(`Provide career advice for this question in the context of the Kenyan job market.

Question: %s

Provide practical, actionable advice that:
1. Is relevant to Kenya's job market
2. Considers local opportunities and challenges
3. Includes specific next steps
4. Is encouraging and supportive
5. Fits in a WhatsApp message (under 200 words)

Focus on practical skills, networking, and realistic career paths.`, question)

	ans := a.asker.Ask(ctx, prompt, uctx)
	if isFallback(ans) {
		return "I'd be happy to help with career advice! Could you be more specific about what you'd like to know? You can ask about job requirements, skills to develop, or career paths in any of our job categories."
	}
	return ans.Content
}

// ExtractInterest asks the model whether a message expresses interest in a
// specific category. It returns "" when no clear interest is expressed or
// the model was unavailable.
func (a *Assistant) ExtractInterest(ctx context.Context, message string) string {
	prompt := fmt.Sprintf(`Analyze this message and determine if the user is expressing interest in a specific job category.

Message: %q

Available categories: %s

If the message indicates interest in a specific category, respond with just the category name (exactly as listed above).
If no clear interest is expressed, respond with "none".`, message, strings.Join(CategoryNames(), ", "))

	ans := a.asker.Ask(ctx, prompt, nil)
	if isFallback(ans) {
		return ""
	}
	result := strings.ToLower(strings.TrimSpace(ans.Content))
	if result == "none" {
		return ""
	}
	return MatchCategory(result)
}

// Recommendation is an AI-suggested category with its pitch.
type Recommendation struct {
	Category    string
	Explanation string
	Confidence  string // "high" when a known category was named, else "low"
}

// RecommendCategory suggests the most suitable category for a user's
// free-text description of what they want to do.
func (a *Assistant) RecommendCategory(ctx context.Context, userInput string) Recommendation {
	prompt := fmt.Sprintf(`A user is asking for help choosing a job category. Based on their message, recommend the most suitable category and explain why.

User message: %q

Available categories:
%s

Provide:
1. The recommended category name (exactly as listed above)
2. A brief explanation (2-3 sentences) of why this category suits them
3. What typical tasks they would do in this role
4. Any skills they might need to develop

Format your response as a helpful WhatsApp message.`, userInput, categoryBullets())

	ans := a.asker.Ask(ctx, prompt, nil)
	if isFallback(ans) {
		return Recommendation{
			Explanation: "I'd be happy to help you choose a job category! Could you tell me more about what kind of work interests you or what skills you have?",
			Confidence:  "low",
		}
	}

	category := MatchCategory(ans.Content)
	confidence := "low"
	if category != "" {
		confidence = "high"
	}
	return Recommendation{Category: category, Explanation: ans.Content, Confidence: confidence}
}

// isFallback reports whether the broker answered with the static fallback
// rather than a real (or cached) model reply.
func isFallback(ans llm.Answer) bool {
	return ans.Model == "" && !ans.Cached
}
