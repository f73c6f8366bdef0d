package game

// BestStore persists the best score. Writes are last-write-wins.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// ScoreRecorder receives every game that reaches a terminal board.
type ScoreRecorder interface {
	RecordGame(sessionID string, score, maxTile, moves int) error
}

// MemoryBestStore keeps the best score in memory.
type MemoryBestStore struct {
	Best  int
	Saves int
}

// LoadBest implements BestStore.
func (m *MemoryBestStore) LoadBest() (int, error) {
	return m.Best, nil
}

// SaveBest implements BestStore.
func (m *MemoryBestStore) SaveBest(score int) error {
	m.Best = score
	m.Saves++
	return nil
}
