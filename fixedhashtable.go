// Package fixedhashtable implements a fixed capacity hash table mapping byte slice keys to byte slice values.
//
// The table owns one contiguous array of NumberOfBuckets*BucketSize slots. A key lives in its home bucket,
// the group of BucketSize slots selected by hash(key) % NumberOfBuckets, and nowhere else. When a home bucket
// holds other keys in all its slots, inserting a new key there fails with BucketFull: the table never grows
// or relocates entries.
//
// The table is a non-owning index. Keys and values are stored as the slices given, the bytes they refer to
// are never copied, so they must outlive the table and a stored key must not be modified.
//
// A Table is not safe for concurrent use. Use SyncTable, or lock around every call, when sharing one.
package fixedhashtable

import (
	"context"
	"fmt"

	"github.com/maxsei/fixedhashtable/internal/hash"
	"github.com/maxsei/fixedhashtable/internal/model"
	"github.com/maxsei/fixedhashtable/internal/storage/bucketarray"
	"github.com/maxsei/fixedhashtable/internal/utils"
)

// Comparator - Reports whether two keys are equal.
// It is never called with the key of an empty slot.
type Comparator func(a, b []byte) bool

// Config - Required parameters of a table
//   - BucketSize is the number of slots in each bucket, must be higher than 0 (zero)
//   - NumberOfBuckets is the number of buckets, must be higher than 0 (zero)
//   - Comparator is the key equality, nil means byte-wise equality
type Config struct {
	BucketSize      int64
	NumberOfBuckets int64
	Comparator      Comparator
}

// Entry - A key and value pair as stored in a slot. Both are borrowed references.
type Entry struct {
	Key []byte
	Val []byte
}

// KeyLen - Returns the length of the key
func (E Entry) KeyLen() int {
	return len(E.Key)
}

// HashTableInfo - Information structure containing some information about the table created
//   - BucketSize is the number of slots in each bucket
//   - NumberOfBuckets is the number of buckets
//   - Capacity is the total number of slots
//   - StorageSize is the number of bytes reserved for the slot array
type HashTableInfo struct {
	BucketSize      int64
	NumberOfBuckets int64
	Capacity        int64
	StorageSize     int64
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - FreeSlots is the number of empty slots left
//   - FullBuckets is the number of buckets that will refuse new keys
//   - BucketDistribution is the number of records stored in each bucket
type HashTableStat struct {
	Records            int64
	FreeSlots          int64
	FullBuckets        int64
	BucketDistribution []int64
}

// Table - The main implementation struct
type Table struct {
	slots      *bucketarray.Slots
	comparator Comparator
	logger     *Logger
	budget     *MemoryBudget
	reserved   int64
	closed     bool
}

// Hash - Returns the djb2 hash of data, the default hash used to select home buckets
func Hash(data []byte) uint64 {
	return hash.DJB2(data)
}

// New - Returns a new table with every slot empty.
//   - conf is a Config struct with the table dimensions and key comparator
//   - opts are optional collaborators such as hash algorithm, logger and memory budget
//
// It returns:
//   - table is a pointer to a Table struct
//   - err is a validation error for bad dimensions, or an AllocationError if the slot storage could not be obtained
func New(conf Config, opts ...Option) (table *Table, err error) {
	// Check if the bucket size is valid
	if conf.BucketSize <= 0 {
		err = fmt.Errorf("bucket size must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the number of buckets is valid
	if conf.NumberOfBuckets <= 0 {
		err = fmt.Errorf("number of buckets must be a positive value higher than 0 (zero)")
		return
	}

	o := applyOptions(opts)

	_, storageSize, err := bucketarray.StorageSize(conf.BucketSize, conf.NumberOfBuckets)
	if err != nil {
		err = AllocationError{cause: err}
		return
	}

	err = o.budget.acquire(storageSize)
	if err != nil {
		err = AllocationError{cause: err}
		return
	}

	slots, err := bucketarray.NewSlots(model.StorageConf{
		BucketSize:      conf.BucketSize,
		NumberOfBuckets: conf.NumberOfBuckets,
		HashAlgorithm:   o.hashAlgorithm,
	})
	if err != nil {
		o.budget.release(storageSize)
		err = AllocationError{cause: err}
		return
	}

	cmp := conf.Comparator
	if cmp == nil {
		cmp = utils.IsEqual
	}

	table = &Table{
		slots:      slots,
		comparator: cmp,
		logger:     o.logger,
		budget:     o.budget,
		reserved:   storageSize,
	}

	table.logger.LogCreate(context.Background(), table.Info())

	return
}

// Close - Releases the slot storage. Referenced keys and values are left alone.
// Any call but Close on a closed table fails with TableClosed or reports nothing found, closing twice is a no-op.
func (T *Table) Close() {
	if T.closed {
		return
	}

	records := T.slots.GetStorageParameters().OccupiedSlots
	T.slots.Release()
	T.budget.release(T.reserved)
	T.closed = true

	T.logger.LogClose(context.Background(), records, T.reserved)
}

// Info - Returns the dimensions of the table
func (T *Table) Info() (info HashTableInfo) {
	sp := T.slots.GetStorageParameters()

	info = HashTableInfo{
		BucketSize:      sp.BucketSize,
		NumberOfBuckets: sp.NumberOfBuckets,
		Capacity:        sp.Capacity,
		StorageSize:     sp.StorageSize,
	}

	return
}

// Rebuild - Is used when a table turns out too small or badly distributed, for instance after a BucketFull.
// A new table is created from conf and opts and every record of from is inserted into it. The from table is
// left untouched and still has to be closed by the caller.
//   - from is the table to copy records from
//   - conf is the configuration of the new table, a nil Comparator keeps the comparator of from
//   - opts are options for the new table, the hash algorithm of from is not carried over
//
// It returns:
//   - to is the new table, nil on error
//   - err is TableClosed if from is closed, any error from New, or the first insert error (typically BucketFull)
func Rebuild(from *Table, conf Config, opts ...Option) (to *Table, err error) {
	if from.closed {
		err = TableClosed{}
		return
	}

	if conf.Comparator == nil {
		conf.Comparator = from.comparator
	}

	to, err = New(conf, opts...)
	if err != nil {
		return
	}

	var moved int64
	from.slots.Range(func(slot model.Slot) bool {
		err = to.Insert(Entry{Key: slot.Key, Val: slot.Value})
		if err != nil {
			return false
		}
		moved++
		return true
	})

	to.logger.LogRebuild(context.Background(), from.Info(), to.Info(), moved, err)

	if err != nil {
		to.Close()
		to = nil
		err = fmt.Errorf("error while rebuilding table: %w", err)
		return
	}

	return
}
