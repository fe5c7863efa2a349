package usecase

import (
	"fmt"
	"strings"
)

const taskExtractionPrompt = `You are a to-do assistant. Extract exactly one task from the user's text.

Current time: %s

Reply with ONE JSON object and nothing else. Fields:
{
  "title": "short task title",
  "description": "extra details, or empty string",
  "priority": "LOW | MEDIUM | HIGH | URGENT",
  "dueDate": "yyyy-MM-dd HH:mm, or null when no time is mentioned",
  "subTasks": ["step one", "step two"],
  "reasoning": "one sentence on how you chose priority and due date"
}

Priority rules:
- URGENT: words like urgent, ASAP, immediately, 紧急, 马上
- HIGH: important, deadline today or tomorrow, 重要
- LOW: whenever, no rush, 有空, 不急
- otherwise MEDIUM

Time rules:
- "today"/"今天" is the current date, "tomorrow"/"明天" is the current date plus one day
- a time without a date means today
- always answer in yyyy-MM-dd HH:mm using the current time zone

Subtask rules:
- phrases like "including A, B and C" or "包括A、B、C" become separate subTasks
- otherwise subTasks is an empty array

User text:
%s`

// buildPrompt renders the extraction prompt.
func buildPrompt(text, now string) string {
	return fmt.Sprintf(taskExtractionPrompt, now, strings.TrimSpace(text))
}
