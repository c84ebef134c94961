package ondevice

// Canned replies per intent category. The on-device engine is a
// template responder: no generation, always answers, never fails.
const (
	ReplySimple = "I'm here with you. Is there anything you need help with right now?"

	ReplyReminder = "I can help with that. I've noted it — check your reminders list to confirm the time."

	ReplyMedicalAdvice = "For questions about medications or symptoms it's safest to check with your doctor or pharmacist. I can show you your medication list if that helps."

	ReplyEmotionalSupport = "I'm sorry you're feeling this way. You're not alone — would you like me to suggest a breathing exercise, or help you call a family member?"

	ReplyHealthAnalysis = "I've looked at your recent readings. Keep logging them regularly so the trends stay meaningful, and share them with your doctor at your next visit."

	ReplyComplex = "That's a good question. I can give a better answer when I'm connected to the internet, but here is what I know: please ask your care team for anything urgent."
)

// Greetings by time of day, used by Personalize.
const (
	GreetingMorning   = "Good morning"
	GreetingAfternoon = "Good afternoon"
	GreetingEvening   = "Good evening"
)
