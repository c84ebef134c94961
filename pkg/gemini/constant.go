package gemini

const (
	defaultAPIURL = "https://generativelanguage.googleapis.com/v1"
	defaultModel  = "gemini-1.5-flash"

	// Requests per second allowed against the API when no explicit
	// rate is configured.
	defaultRateLimit = 2
)

// systemPrompt frames every chat request. The care context paragraph,
// when present, is appended to it.
const systemPrompt = `You are a warm, patient assistant for an elderly care recipient.
Answer in short, clear sentences. Avoid medical jargon. Never give dosage
instructions; for anything urgent, tell the user to contact their doctor
or caregiver. If care context is provided below, use it to personalize
the answer.`
