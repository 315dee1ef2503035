package model

import "github.com/maxsei/fixedhashtable/hashfunc"

// RecordEmpty - State indicating a slot that has never been in use
const RecordEmpty uint8 = 0

// RecordOccupied - State indicating a slot that holds an entry
const RecordOccupied uint8 = 1

// Bucket - Represents all slots in a bucket group (both occupied and still empty)
type Bucket struct {
	Slots         []Slot
	BucketNo      int64
	BucketAddress int64
}

// Slot - Represents one slot in a bucket group.
// Key and Value are borrowed references, the storage never copies the bytes they point to.
type Slot struct {
	State       uint8
	SlotAddress int64
	Key         []byte
	Value       []byte
}

// StorageParameters - Represents parameters of the slot storage
type StorageParameters struct {
	BucketSize      int64
	NumberOfBuckets int64
	Capacity        int64
	StorageSize     int64
	OccupiedSlots   int64
}

// StorageConf - Is a struct to be passed in the call to NewSlots and contains configuration that affects
// slot storage.
//   - BucketSize is the number of slots in each bucket group
//   - NumberOfBuckets is the number of bucket groups
//   - HashAlgorithm is the hash function to select a home bucket with
type StorageConf struct {
	BucketSize      int64
	NumberOfBuckets int64
	HashAlgorithm   hashfunc.HashAlgorithm
}
