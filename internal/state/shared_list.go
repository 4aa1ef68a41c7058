package state

import (
	"sync"

	"clientdesk/internal/models"
)

// SharedList holds the most recent search results for the client and receipt
// consult flows plus the no-results flag. It is a session cache, not a store:
// lists are replaced wholesale by a search, removed from on delete, and
// cleared when a flow is left so the next visit starts clean.
//
// Callers own the correctness of what they set; there is no validation or
// merging here. The mutex exists because the server handles requests
// concurrently even though each page flow is a single request at a time.
type SharedList struct {
	mu        sync.RWMutex
	clients   []models.Client
	receipts  []models.Receipt
	noResults bool
}

func NewSharedList() *SharedList {
	return &SharedList{}
}

// Clients returns a copy of the cached client list.
func (s *SharedList) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// ReplaceClients swaps the whole cached client list.
func (s *SharedList) ReplaceClients(clients []models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = make([]models.Client, len(clients))
	copy(s.clients, clients)
}

// RemoveClient drops the client with the given id from the cached list after
// a successful backend delete. Returns false when no cached entry matches;
// the cache is left untouched in that case.
func (s *SharedList) RemoveClient(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.clients {
		if c.ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return true
		}
	}
	return false
}

// InvalidateClients clears the cached client list so consumers re-fetch
// instead of rendering stale entries. Used after a successful edit.
func (s *SharedList) InvalidateClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = nil
}

// ResetClients is the search-flow teardown: clears the client list and the
// no-results flag regardless of prior state.
func (s *SharedList) ResetClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = nil
	s.noResults = false
}

func (s *SharedList) Receipts() []models.Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Receipt, len(s.receipts))
	copy(out, s.receipts)
	return out
}

func (s *SharedList) ReplaceReceipts(receipts []models.Receipt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts = make([]models.Receipt, len(receipts))
	copy(s.receipts, receipts)
}

func (s *SharedList) ResetReceipts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.receipts = nil
	s.noResults = false
}

func (s *SharedList) NoResults() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.noResults
}

func (s *SharedList) SetNoResults(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.noResults = v
}
