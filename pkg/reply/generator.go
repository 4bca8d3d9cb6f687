// Package reply derives the canned assistant reply and preview for a chat
// prompt. Generation is a pure function of (mode, prompt): no state, no I/O,
// deterministic in structure, prompt-dependent in content.
package reply

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reply bundles the assistant text with the structured preview for one prompt.
type Reply struct {
	Text    string
	Preview *Preview
}

// Generate builds the reply for a session mode. Modes other than
// resume/interview fall through to the jobs template; the request validator
// keeps such values from ever reaching this point.
func Generate(mode, prompt string) Reply {
	switch mode {
	case "resume":
		return resumeReply(prompt)
	case "interview":
		return interviewReply(prompt)
	default:
		return jobsReply(prompt)
	}
}

func resumeReply(prompt string) Reply {
	return Reply{
		Text: "I've drafted a professional summary and key bullet points based on your input. " +
			"You can ask me to refine tone, quantify impact, or tailor to specific roles.",
		Preview: &Preview{Resume: &ResumePreview{
			Type:    "resume",
			Summary: capitalize(strings.TrimSpace(prompt)) + " professional with a track record of delivering measurable outcomes.",
			Sections: []Section{
				{
					Title: "Highlights",
					Items: []string{
						fmt.Sprintf("Led initiatives related to %s...", firstRunes(prompt, 60)),
						"Improved efficiency by 20% through process optimization",
						"Collaborated across teams to deliver on-time projects",
					},
				},
			},
		}},
	}
}

func interviewReply(prompt string) Reply {
	var topics []string
	for _, word := range strings.Fields(prompt) {
		if utf8.RuneCountInString(word) > 3 {
			topics = append(topics, word)
			if len(topics) == 3 {
				break
			}
		}
	}

	topicOr := func(i int, fallback string) string {
		if i < len(topics) {
			return topics[i]
		}
		return fallback
	}

	return Reply{
		Text: "Here are tailored practice questions and guidance. " +
			"Ask me to generate follow-ups or score your answers.",
		Preview: &Preview{Interview: &InterviewPreview{
			Type: "interview",
			Questions: []string{
				fmt.Sprintf("Tell me about a time you worked with %s.", topicOr(0, "a cross-functional team")),
				fmt.Sprintf("How would you approach %s?", topicOr(1, "prioritizing conflicting deadlines")),
				fmt.Sprintf("Describe a challenging %s and your impact.", topicOr(2, "project")),
			},
			Tips: []string{
				"Use STAR format (Situation, Task, Action, Result)",
				"Quantify impact and highlight collaboration",
				"Tie answers back to role requirements",
			},
		}},
	}
}

func jobsReply(prompt string) Reply {
	keyword := "Role"
	if fields := strings.Fields(prompt); len(fields) > 0 {
		keyword = fields[0]
	}
	keyword = capitalize(keyword)

	return Reply{
		Text: "I found a few matching roles. Ask me to tailor your resume or draft outreach messages.",
		Preview: &Preview{Jobs: &JobsPreview{
			Type: "jobs",
			Results: []JobResult{
				{Title: keyword + " Specialist", Company: "Acme Corp", Location: "Remote", Match: 92},
				{Title: "Senior " + keyword, Company: "Nimbus", Location: "NYC, NY", Match: 88},
				{Title: keyword + " Analyst", Company: "Orbit Labs", Location: "Austin, TX", Match: 83},
			},
		}},
	}
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// firstRunes returns at most n leading runes of s.
func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
