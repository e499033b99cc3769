package chatbot

import (
	"strings"

	"cs-chatbot-be/internal/constant"
)

// Fallback maps a message to a canned reply using the priority-ordered
// rule table. Pure and total: it always returns a reply and never calls
// out.
func Fallback(userText string) string {
	lower := strings.ToLower(userText)
	for _, rule := range constant.FallbackRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Reply
			}
		}
	}
	return constant.FallbackDefaultReply
}
