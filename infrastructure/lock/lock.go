package lock

import (
	"context"
	"sync"
)

// Locker garante que um job rode em no máximo uma instância por vez
type Locker interface {
	// TryLock tenta obter o lock sem esperar. Quando ok é false outro dono o detém.
	TryLock(ctx context.Context, key string) (unlock func(), ok bool, err error)
}

// LocalLocker serve quando há uma única réplica (REDIS_URL vazio)
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]bool)}
}

func (l *LocalLocker) TryLock(_ context.Context, key string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[key] {
		return nil, false, nil
	}
	l.held[key] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, true, nil
}
