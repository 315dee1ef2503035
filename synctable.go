package fixedhashtable

import "sync"

// SyncTable - Guards a Table with a reader/writer lock so it can be shared between goroutines.
// Lookups share the read lock, inserts and Close take the write lock, so a lookup never observes a
// slot that is half written.
type SyncTable struct {
	mu    sync.RWMutex
	table *Table
}

// NewSyncTable - Returns a SyncTable guarding table. The table must not be used directly afterwards.
func NewSyncTable(table *Table) *SyncTable {
	return &SyncTable{table: table}
}

// Lookup - See Table.Lookup
func (S *SyncTable) Lookup(key []byte) (entry Entry, found bool) {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Lookup(key)
}

// Get - See Table.Get
func (S *SyncTable) Get(key []byte) (value []byte, err error) {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Get(key)
}

// Insert - See Table.Insert
func (S *SyncTable) Insert(entry Entry) (err error) {
	S.mu.Lock()
	defer S.mu.Unlock()

	return S.table.Insert(entry)
}

// Set - See Table.Set
func (S *SyncTable) Set(key []byte, value []byte) (err error) {
	S.mu.Lock()
	defer S.mu.Unlock()

	return S.table.Set(key, value)
}

// Stat - See Table.Stat
func (S *SyncTable) Stat(includeDistribution bool) (hashTableStat *HashTableStat, err error) {
	S.mu.RLock()
	defer S.mu.RUnlock()

	return S.table.Stat(includeDistribution)
}

// Close - See Table.Close
func (S *SyncTable) Close() {
	S.mu.Lock()
	defer S.mu.Unlock()

	S.table.Close()
}
