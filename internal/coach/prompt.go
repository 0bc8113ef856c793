package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/aether/internal/careerquiz"
)

const systemPrompt = `You are an executive career coach. You receive the scored results of a ten question leadership assessment and write a short, practical coaching brief. Be specific and encouraging. Never invent scores that are not in the input.`

func buildUserMessage(r careerquiz.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Recommended career path: %s\n", r.CareerPath)

	m := r.LeadershipStyle
	b.WriteString("\nLeadership style mix:\n")
	fmt.Fprintf(&b, "- Transformational: %d%%\n", m.Transformational)
	fmt.Fprintf(&b, "- Servant: %d%%\n", m.Servant)
	fmt.Fprintf(&b, "- Situational: %d%%\n", m.Situational)
	fmt.Fprintf(&b, "- Directive: %d%%\n", m.Directive)

	p := r.CareerPriorities
	b.WriteString("\nCareer priority counts:\n")
	fmt.Fprintf(&b, "- Intellectual: %d\n", p.Intellectual)
	fmt.Fprintf(&b, "- Cultural: %d\n", p.Cultural)
	fmt.Fprintf(&b, "- Financial: %d\n", p.Financial)
	fmt.Fprintf(&b, "- Authority: %d\n", p.Authority)

	writeList(&b, "Strengths", r.Strengths)
	writeList(&b, "Development areas", r.DevelopmentAreas)
	writeList(&b, "Recommended topics", r.RecommendedTopics)

	b.WriteString(`
Instructions:
1. Write a headline that names the recommended career path.
2. Summarize the leadership profile in 3-4 sentences, referring to the dominant style and priorities above.
3. Give up to 5 concrete next steps the person can take in the next 90 days. Address the development areas.
4. List up to 5 focus topics. Prefer the recommended topics above.
5. Use plain text. No markdown.`)

	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "\n%s:\n", title)
	if len(items) == 0 {
		b.WriteString("None\n")
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}
