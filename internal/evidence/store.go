package evidence

import (
	"context"
	"fmt"
	"sync"
)

// BaseURL 对外可访问的存储域名。
const BaseURL = "https://storage.towlinkdrive.com"

// MemoryStore 进程内存储，开发与测试用。
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Put(_ context.Context, key string, _ string, data []byte) (string, error) {
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.blobs[key] = cp
	s.mu.Unlock()

	return fmt.Sprintf("%s/%s", BaseURL, key), nil
}

// Get 测试辅助。
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	return data, ok
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
