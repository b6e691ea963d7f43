package memstore

import (
	"context"
	"sync"
)

// TxManager сериализует мутации поверх in-memory хранилища одним мьютексом.
// Контракт совпадает с pkg/tx поверх postgres.
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
