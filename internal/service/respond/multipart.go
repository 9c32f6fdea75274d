package respond

import (
	"fmt"
	"strings"

	"github.com/kapu/contract-assistant-go/internal/constants"
	"github.com/kapu/contract-assistant-go/internal/domain"
	"github.com/kapu/contract-assistant-go/internal/util"
)

// formatMultiPart restructures a response for a compound question: one
// numbered section per question part, closed by a synthesis
func formatMultiPart(content string, parts []string, tone domain.ToneProfile) string {
	if len(parts) <= 1 {
		return content
	}

	isCasual := tone[domain.ToneKeyCasual]+tone[domain.ToneKeySlang] > constants.Tone.CasualDominance

	var b strings.Builder
	if isCasual {
		b.WriteString("You asked several things, so let me break this down:\n\n")
	} else {
		b.WriteString("Your question has multiple components. Here's my analysis:\n\n")
	}

	sections := splitContentForParts(content, len(parts))
	for i, part := range parts {
		label := util.TruncateString(part, 50)
		if isCasual {
			fmt.Fprintf(&b, "**%d. About \"%s\"**\n", i+1, label)
		} else {
			fmt.Fprintf(&b, "**%d. Re: \"%s\"**\n", i+1, label)
		}
		b.WriteString(sections[i])
		b.WriteString("\n\n")
	}

	if isCasual {
		b.WriteString("**Putting it all together:**\n")
		b.WriteString("Looking at all your questions together, the main themes are around understanding the contract's key terms and implications. ")
	} else {
		b.WriteString("**Synthesis:**\n")
		b.WriteString("Analyzing these components collectively, the primary focus areas involve contractual interpretation and risk assessment. ")
	}

	if len(parts) > 2 {
		b.WriteString("These aspects are interconnected and should be considered as part of your overall contract strategy.")
	} else {
		b.WriteString("These two areas are closely related and both impact your contractual position.")
	}

	return b.String()
}

// splitContentForParts divides content into one section per part, allotting
// sentences evenly with the remainder on the last section. Surplus parts
// reuse the last filled section so no numbered header renders empty.
func splitContentForParts(content string, numParts int) []string {
	sentences := strings.Split(content, ". ")

	perPart := len(sentences) / numParts
	if perPart < 1 {
		perPart = 1
	}

	sections := make([]string, 0, numParts)
	lastFilled := ""
	for i := 0; i < numParts; i++ {
		start := i * perPart
		if start >= len(sentences) {
			sections = append(sections, lastFilled)
			continue
		}
		end := start + perPart
		if i == numParts-1 || end > len(sentences) {
			end = len(sentences)
		}
		section := strings.Join(sentences[start:end], ". ")
		if section != "" && !strings.HasSuffix(section, ".") {
			section += "."
		}
		if section == "" {
			section = lastFilled
		} else {
			lastFilled = section
		}
		sections = append(sections, section)
	}
	return sections
}
