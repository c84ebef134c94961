package usecase

import "time"

// Conversation history retention.
const (
	MaxHistoryUsers = 256              // LRU capacity, one entry per user
	MaxHistoryTurns = 20               // turns kept per user
	HistoryTTL      = 30 * time.Minute // idle sessions expire
)

// Log prefixes
const (
	LogPrefixProcess = "internal.assistant.usecase.Process"
	LogPrefixHistory = "internal.assistant.usecase.History"
)
