package evaluator

import (
	"fmt"
	"strings"
)

// buildImpactPrompt assembles the single user-role message sent to the
// scoring service. The response contract is strict: a bare JSON object
// with exactly the four expected keys.
func buildImpactPrompt(tc TaskContext) string {
	var b strings.Builder

	b.WriteString(`You are an impact assessor for a task management tool.
Evaluate the business impact of the completed task described below.

Respond with JSON only, no markdown, no explanation, using exactly these keys:
- impactLevel: one of [LOW, MEDIUM, HIGH, CRITICAL]
- recommendedXP: integer between 0 and 9999 (experience points the task deserves)
- impactScore: integer between 0 and 100
- shortReasoning: one sentence justifying the assessment

Scoring guidance:
- Weigh difficulty, economic value, and how central the task is to its category
- LOW ≈ routine upkeep, CRITICAL ≈ directly unblocks revenue or a launch
- recommendedXP should roughly track impactScore (neutral task ≈ 25 XP)

Completed task:
`)

	fmt.Fprintf(&b, "- Title: %s\n", tc.Title)
	if tc.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", tc.Description)
	}
	if tc.Category != "" {
		fmt.Fprintf(&b, "- Category: %s\n", tc.Category)
	}
	if tc.Difficulty > 0 {
		fmt.Fprintf(&b, "- Difficulty: %d of 5\n", tc.Difficulty)
	}
	if tc.EconomicValue != nil {
		fmt.Fprintf(&b, "- Economic value: %.2f\n", *tc.EconomicValue)
	}
	if tc.ResultNote != "" {
		fmt.Fprintf(&b, "- Result: %s\n", tc.ResultNote)
	}

	return b.String()
}
