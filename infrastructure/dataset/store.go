package dataset

import (
	"sync"
	"time"

	"github.com/XarpitX/Facebook-vs-Adwords/internal/domain"
)

// Snapshot é uma carga completa do dataset: o formato largo, as observações
// derivadas e os metadados da carga. Cada recarga publica um snapshot novo,
// nunca muta o anterior.
type Snapshot struct {
	ID           string
	SourcePath   string
	LoadedAt     time.Time
	Dataset      *domain.CampaignDataset
	Observations []*domain.Observation
}

// SnapshotStore guarda em memória o snapshot atual do dataset
type SnapshotStore interface {
	Replace(snapshot *Snapshot)
	Current() *Snapshot
}

type memorySnapshotStore struct {
	mu      sync.RWMutex
	current *Snapshot
}

// NewSnapshotStore cria um armazenamento vazio. Current devolve nil até a
// primeira carga bem sucedida.
func NewSnapshotStore() SnapshotStore {
	return &memorySnapshotStore{}
}

func (s *memorySnapshotStore) Replace(snapshot *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snapshot
}

func (s *memorySnapshotStore) Current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
