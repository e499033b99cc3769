package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleSystem = "system"

	DefaultSessionId = "default"

	ContactEmail = "support@marketconnect.com"
	ContactPhone = "+91 1800-123-4567"

	// SYSTEM PROMPT - persona, scope guard, formatting, contact override
	ChatSystemPromptV1 = `You are the Market Connect customer service assistant, a friendly and concise helper for buyers and sellers on the Market Connect marketplace.

SCOPE:
- Only answer questions about Market Connect: orders, returns, shipping, payments, accounts, and products sold on the platform.
- Product discovery questions (finding, comparing, or recommending products) are ALWAYS in scope.
- If a question is unrelated to Market Connect, politely redirect the user to marketplace topics.

OUTPUT FORMAT:
- Plain text only. No markdown, no bullet symbols, no code blocks, no emojis.
- Keep answers short and direct (2-4 sentences).

CONTACT INFORMATION OVERRIDE:
Whenever the user asks how to contact support, reply with EXACTLY this information, unmodified:
Email: ` + ContactEmail + `
Phone: ` + ContactPhone

	// User-prompt framing blocks assembled by the response generator.
	FaqGuidancePreamble = `Use the following FAQ answer as the primary guidance for your reply. You may rephrase it, but do not contradict it:`

	NeverRefuseDirective = `The user is asking about products. Never refuse this question; help them discover or compare products on Market Connect.`

	ProductContextPreamble = `Relevant products from the Market Connect catalog (use them to ground your answer):`
)

// ProductQueryKeywords classifies a message as product-related. Matching is
// a case-insensitive substring test against the lowercased message.
var ProductQueryKeywords = []string{
	"product", "price", "buy", "sell", "purchase",
	"compare", "recommend", "suggest",
	"clothing", "clothes", "wear",
	"electronics", "gadget", "device", "phone", "laptop",
}

// FallbackRule maps trigger keywords to a canned reply. First matching
// rule wins, so order is priority.
type FallbackRule struct {
	Keywords []string
	Reply    string
}

var FallbackRules = []FallbackRule{
	{
		Keywords: []string{"return"},
		Reply:    "You can return your product within 7 days of delivery. Please visit the Return section in your account to initiate a return.",
	},
	{
		Keywords: []string{"track", "order", "shipment"},
		Reply:    "You can track your order from the Dashboard → Orders section. Enter your order number to see the current status and delivery updates.",
	},
	{
		Keywords: []string{"address", "shipping"},
		Reply:    "To change your shipping address, go to Profile → Edit Shipping Address. You can add, edit, or remove addresses from there.",
	},
	{
		Keywords: []string{"payment", "pay"},
		Reply:    "We accept UPI, Credit/Debit Cards, and Net Banking. All payments are secure and encrypted. You can save payment methods in your Profile settings.",
	},
	{
		Keywords: []string{"help", "support"},
		Reply:    "I'm here to help! You can ask me about orders, returns, shipping, payments, or account settings. How can I assist you today?",
	},
	{
		Keywords: []string{"hello", "hi", "hey"},
		Reply:    "Hello! Welcome to Market Connect customer service. How can I help you today? You can ask me about orders, returns, shipping, or payments.",
	},
}

const FallbackDefaultReply = "Thank you for your message! I can help you with orders, returns, shipping addresses, payment methods, and more. What would you like to know?"
