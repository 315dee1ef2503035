package fixedhashtable

import (
	"fmt"

	"github.com/maxsei/fixedhashtable/internal/model"
)

// Lookup - Returns the entry whose key the comparator reports equal to key.
// Only the home bucket of key is scanned, in slot order, and the first match is returned.
//   - key is the key to look up, a zero-length key is a key like any other
//
// It returns:
//   - entry is the stored entry if found
//   - found is false if there is no such entry or the table is closed
func (T *Table) Lookup(key []byte) (entry Entry, found bool) {
	if T.closed {
		return
	}

	slot, found := T.slots.Get(key, T.comparator)
	if !found {
		return
	}

	entry = Entry{Key: slot.Key, Val: slot.Value}

	return
}

// Insert - Updates the entry with an equal key in the home bucket or, if there is none, stores entry in the
// first empty slot of the home bucket.
//   - entry is the entry to store, the table keeps the slices themselves and not copies
//
// It returns:
//   - err is BucketFull if the home bucket only holds other keys (nothing is written then), or TableClosed
func (T *Table) Insert(entry Entry) (err error) {
	if T.closed {
		err = TableClosed{}
		return
	}

	ok := T.slots.Set(model.Slot{Key: entry.Key, Value: entry.Val}, T.comparator)
	if !ok {
		err = BucketFull{msg: fmt.Sprintf("bucket %d is full", T.slots.GetBucketNo(entry.Key))}
		return
	}

	return
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - value is the value of the matching record if found
//   - err is of type NoRecordFound if not found, or TableClosed
func (T *Table) Get(key []byte) (value []byte, err error) {
	if T.closed {
		err = TableClosed{}
		return
	}

	entry, found := T.Lookup(key)
	if !found {
		err = NoRecordFound{}
		return
	}

	value = entry.Val

	return
}

// Set - Updates an existing record with new data or adds it if no existing is found with same key.
// It is Insert with the entry built from key and value.
func (T *Table) Set(key []byte, value []byte) (err error) {
	return T.Insert(Entry{Key: key, Val: value})
}

// GetBucketNo - Returns which bucket number that the given key results in
func (T *Table) GetBucketNo(key []byte) (bucketNo int64) {
	return T.slots.GetBucketNo(key)
}

// GetBucket - Returns the contents of every slot in a bucket in slot order, empty slots as zero Entries.
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (T *Table) GetBucket(bucketNo int64) (entries []Entry, err error) {
	if T.closed {
		err = TableClosed{}
		return
	}

	bucket, err := T.slots.GetBucket(bucketNo)
	if err != nil {
		return
	}

	entries = make([]Entry, len(bucket.Slots))
	for i, slot := range bucket.Slots {
		if slot.State == model.RecordOccupied {
			entries[i] = Entry{Key: slot.Key, Val: slot.Value}
		}
	}

	return
}

// Range - Calls fn for every stored entry in slot order until fn returns false.
// fn must not insert into the table.
func (T *Table) Range(fn func(entry Entry) bool) {
	if T.closed {
		return
	}

	T.slots.Range(func(slot model.Slot) bool {
		return fn(Entry{Key: slot.Key, Val: slot.Value})
	})
}

// Stat - Produces a HashTableStat struct with information on usage.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashTableStat.BucketDistribution to nil.
func (T *Table) Stat(includeDistribution bool) (hashTableStat *HashTableStat, err error) {
	if T.closed {
		err = TableClosed{}
		return
	}

	sp := T.slots.GetStorageParameters()
	distribution := T.slots.BucketDistribution()

	hts := HashTableStat{
		Records:   sp.OccupiedSlots,
		FreeSlots: sp.Capacity - sp.OccupiedSlots,
	}
	for _, n := range distribution {
		if n == sp.BucketSize {
			hts.FullBuckets++
		}
	}
	if includeDistribution {
		hts.BucketDistribution = distribution
	}

	hashTableStat = &hts
	return
}
