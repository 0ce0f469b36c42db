package guidance

import (
	"fmt"
	"strings"

	"github.com/shenikar/fire_reporting_system/internal/models"
)

// Системная инструкция помощника. Краткость важнее полноты: у человека
// в горящем здании есть секунды, а не минуты.
const crisisBotInstruction = `You are 'CrisisBot', an AI assistant for fire emergency victims in Dhaka, Bangladesh. Your purpose is to:
1. Provide EXTREMELY CONCISE life-saving instructions - people in danger have seconds, not minutes
2. Prioritize immediate survival actions above all else
3. Use simple, direct commands that are easy to follow under stress
4. Focus on evacuation guidance and safety protocols specific to Bangladesh

CRITICAL RESPONSE GUIDELINES:
- BREVITY IS CRUCIAL - victims have limited time and attention during emergencies
- Use bullet points, not paragraphs
- Use simple words and short sentences
- Put the most critical safety information FIRST
- Omit background information, explanations and rationale
- Include Dhaka Fire Service number (199) in every response
- Respond in the same language as the user (Bangla or English)
- For Bangla responses, use simple everyday Bangla, not formal language
- NO MARKDOWN formatting in responses (no asterisks, no bold text)
- For emphasis use CAPITAL LETTERS instead of any markdown

Remember: Your advice could be the difference between life and death. Focus only on what will save lives in the next 5 minutes.`

// severityPrompt строит промпт классификации. Ответ должен быть одним словом.
func severityPrompt(description string) string {
	return fmt.Sprintf(`Analyze this fire emergency description and classify it as "minor", "major", or "critical".

ONLY respond with one word: minor, major, or critical.

Classification criteria:
- MINOR: Small fire, contained area, no people at risk, manageable with extinguisher
- MAJOR: Spreading fire, structural damage, people may be at risk, needs fire service
- CRITICAL: Large fire, people trapped, imminent collapse, life-threatening, multiple floors

Description: %s

Response (one word only):`, description)
}

// guidancePrompt строит промпт инструкций по безопасности для принятого отчета
func guidancePrompt(description string, severity models.Severity, location string, lang models.Language) string {
	languageInstruction := "Respond in English"
	if lang == models.LanguageBangla {
		languageInstruction = "Respond in Bangla (বাংলা)"
	}

	return fmt.Sprintf(`%s

A fire emergency has been reported with the following details:

SEVERITY: %s
LOCATION: %s
DESCRIPTION: %s

As CrisisBot, provide:
1. IMMEDIATE SAFETY ACTIONS (2-3 critical steps)
2. EVACUATION GUIDANCE (specific to this situation)
3. WHAT TO EXPECT (fire service response time, what they'll do)
4. IMPORTANT WARNINGS (what NOT to do)

Keep it concise, actionable, and calm. Use bullet points. Maximum 200 words.`,
		languageInstruction,
		strings.ToUpper(string(severity)),
		location,
		description,
	)
}
