package assistant

import (
	"context"
	"fmt"
	"strings"

	"jobalert/internal/llm"
)

// PersonalizedAlert writes a job alert message tailored to the user. When
// the AI backend is degraded it falls back to the standard template.
func (a *Assistant) PersonalizedAlert(ctx context.Context, job Job, uctx *llm.UserContext) string {
	prompt := fmt.Sprintf(`Create a personalized WhatsApp job alert message.

Job Details:
- Title: %s
- Company: %s
- Location: %s
- URL: %s

User Info:
- Interest: %s
- Balance: %d credits

Create an engaging message that:
1. Highlights why this job matches their interest
2. Includes key job details
3. Encourages them to apply
4. Mentions credit usage
5. Keeps it under 200 words for WhatsApp

Use emojis and formatting for better readability.`,
		orNA(job.Title), orNA(job.Company), orDefault(job.Location, "Kenya"), orNA(job.Link),
		orNA(interestOf(uctx)), balanceOf(uctx))

	ans := a.asker.Ask(ctx, prompt, uctx)
	if isFallback(ans) {
		return StandardAlert(job, uctx)
	}
	return ans.Content
}

// StandardAlert is the non-AI alert template.
func StandardAlert(job Job, uctx *llm.UserContext) string {
	interest := orDefault(interestOf(uctx), "Job")
	return fmt.Sprintf(`🎯 *New %s Alert!*

📋 *%s*
🏢 %s
📍 %s
🔗 %s

💳 1 credit used | Balance: %d

Good luck with your application! 🚀`,
		titleCase(interest),
		orDefault(job.Title, "Job Opportunity"),
		orDefault(job.Company, "Company"),
		orDefault(job.Location, "Kenya"),
		orDefault(job.Link, "Apply now!"),
		balanceOf(uctx)-1)
}

// FormatModelStats renders a broker stats snapshot as the bot's "ai stats"
// reply.
func FormatModelStats(report llm.StatsReport) string {
	if len(report.Models) == 0 {
		return "📊 *AI Model Stats:*\nNo usage data yet."
	}
	var sb strings.Builder
	sb.WriteString("📊 *AI Model Usage Stats:*\n\n")
	for _, m := range report.Models {
		rate := 0.0
		if m.Attempts > 0 {
			rate = float64(m.Successes) / float64(m.Attempts) * 100
		}
		fmt.Fprintf(&sb, "🤖 *%s*\n", m.Model)
		fmt.Fprintf(&sb, "  • Attempts: %d\n", m.Attempts)
		fmt.Fprintf(&sb, "  • Success Rate: %.1f%%\n\n", rate)
	}
	fmt.Fprintf(&sb, "📅 Today (%s): %d requests, %d cache hits, %d model switches",
		report.Daily.Date, report.Daily.Requests, report.Daily.CacheHits, report.Daily.ModelSwitches)
	return sb.String()
}

func interestOf(uctx *llm.UserContext) string {
	if uctx == nil {
		return ""
	}
	return uctx.Interest
}

func balanceOf(uctx *llm.UserContext) int {
	if uctx == nil {
		return 0
	}
	return uctx.Balance
}

func orNA(s string) string { return orDefault(s, "N/A") }

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
