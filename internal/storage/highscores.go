package storage

// HighScores adapts the store to the engine's high score hook for one
// game variant. Persistence failures are swallowed here: a broken or
// missing database must never affect gameplay, so Best degrades to 0
// and Record drops the write.
type HighScores struct {
	store  *Store
	gameID string
}

// NewHighScores creates a high score adapter for the given game variant.
func NewHighScores(store *Store, gameID string) *HighScores {
	return &HighScores{store: store, gameID: gameID}
}

// Best returns the stored best score, or 0 when nothing is stored or
// the read fails.
func (h *HighScores) Best() int {
	if h.store == nil {
		return 0
	}
	best, err := h.store.HighScore(h.gameID)
	if err != nil {
		return 0
	}
	return best
}

// Record persists a new best. Errors are dropped.
func (h *HighScores) Record(score int) {
	if h.store == nil {
		return
	}
	h.store.SetHighScore(h.gameID, score) //nolint:errcheck // best-effort write
}
