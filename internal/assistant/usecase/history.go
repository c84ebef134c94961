package usecase

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"care-companion/internal/assistant"
	"care-companion/internal/model"
)

// historyStore keeps recent conversation turns per user in an expirable
// LRU. History is observational only: it is returned to callers but is
// never an input to routing.
type historyStore struct {
	cache *expirable.LRU[string, []assistant.ChatTurn]
}

func newHistoryStore() *historyStore {
	return &historyStore{
		cache: expirable.NewLRU[string, []assistant.ChatTurn](MaxHistoryUsers, nil, HistoryTTL),
	}
}

func (h *historyStore) append(userID string, turn assistant.ChatTurn) {
	if userID == "" {
		return
	}

	turns, _ := h.cache.Get(userID)
	turns = append(turns, turn)
	if len(turns) > MaxHistoryTurns {
		turns = turns[len(turns)-MaxHistoryTurns:]
	}
	h.cache.Add(userID, turns)
}

func (h *historyStore) get(userID string) []assistant.ChatTurn {
	turns, _ := h.cache.Get(userID)
	return turns
}

// History returns the recent conversation turns for the scoped user.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) (assistant.HistoryOutput, error) {
	if sc.UserID == "" {
		return assistant.HistoryOutput{}, assistant.ErrMissingUserID
	}

	turns := uc.history.get(sc.UserID)
	return assistant.HistoryOutput{
		Turns: turns,
		Count: len(turns),
	}, nil
}
