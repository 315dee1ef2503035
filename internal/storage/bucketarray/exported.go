package bucketarray

import (
	"fmt"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/maxsei/fixedhashtable/hashfunc"
	"github.com/maxsei/fixedhashtable/internal/model"
	"github.com/maxsei/fixedhashtable/internal/resource"
	"github.com/maxsei/fixedhashtable/internal/utils"
)

// SlotSize - Number of bytes one slot occupies in the backing array
const SlotSize = int64(unsafe.Sizeof(slot{}))

// Slots - Represents one contiguous array of slots partitioned into NumberOfBuckets bucket groups of
// BucketSize slots each. Bucket group n covers slot addresses [n*BucketSize, n*BucketSize+BucketSize).
// A key only ever lives in its home bucket group, once all slots of a group are occupied the group
// accepts no more new keys.
type Slots struct {
	bucketSize      int64
	numberOfBuckets int64
	capacity        int64
	storageSize     int64
	hashAlgorithm   hashfunc.HashAlgorithm
	slots           []slot
	occupied        *roaring64.Bitmap
}

// NewSlots - Returns a pointer to a new instance of slot storage with every slot empty.
//   - storageConf is a model.StorageConf struct providing configuration parameters for the storage
//
// It returns:
//   - slots which is a pointer to the created instance
//   - err which is a standard Go type of error, it is returned if the backing array is bigger than the
//     memory ceiling of the process or can not be allocated
func NewSlots(storageConf model.StorageConf) (slots *Slots, err error) {
	capacity, storageSize, err := StorageSize(storageConf.BucketSize, storageConf.NumberOfBuckets)
	if err != nil {
		return
	}

	err = resource.CheckCeiling(storageSize)
	if err != nil {
		return
	}

	s, err := allocate(capacity)
	if err != nil {
		return
	}

	slots = &Slots{
		bucketSize:      storageConf.BucketSize,
		numberOfBuckets: storageConf.NumberOfBuckets,
		capacity:        capacity,
		storageSize:     storageSize,
		hashAlgorithm:   storageConf.HashAlgorithm,
		slots:           s,
		occupied:        roaring64.New(),
	}

	return
}

// StorageSize - Returns the number of slots and the number of bytes needed for a storage of the given dimensions
func StorageSize(bucketSize, numberOfBuckets int64) (capacity, storageSize int64, err error) {
	capacity, ok := utils.MulNoOverflow(bucketSize, numberOfBuckets)
	if !ok {
		err = fmt.Errorf("%d buckets of %d slots exceeds addressable slots", numberOfBuckets, bucketSize)
		return
	}

	storageSize, ok = utils.MulNoOverflow(capacity, SlotSize)
	if !ok {
		err = fmt.Errorf("%d slots exceeds addressable memory", capacity)
		return
	}

	return
}

// Release - Drops the backing array, the Slots instance is unusable afterwards
func (S *Slots) Release() {
	S.slots = nil
	S.occupied.Clear()
}

// GetStorageParameters - Returns a struct with storage parameters from Slots
func (S *Slots) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		BucketSize:      S.bucketSize,
		NumberOfBuckets: S.numberOfBuckets,
		Capacity:        S.capacity,
		StorageSize:     S.storageSize,
		OccupiedSlots:   int64(S.occupied.GetCardinality()),
	}

	return
}

// GetBucketNo - Returns the home bucket number of the given key
func (S *Slots) GetBucketNo(key []byte) (bucketNo int64) {
	return int64(S.hashAlgorithm.HashFunc(key) % uint64(S.numberOfBuckets))
}

// GetBucket - Returns a bucket with all its slots given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - bucket is a model.Bucket struct containing copies of all slots in the bucket group
//   - err is standard error
func (S *Slots) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range 0 -> %d", bucketNo, S.numberOfBuckets-1)
		return
	}

	bucketAddress := bucketNo * S.bucketSize
	bucket = model.Bucket{
		Slots:         make([]model.Slot, S.bucketSize),
		BucketNo:      bucketNo,
		BucketAddress: bucketAddress,
	}
	for i := int64(0); i < S.bucketSize; i++ {
		bucket.Slots[i] = S.getSlot(bucketAddress + i)
	}

	return
}

// Get - Searches the home bucket group of key for an occupied slot that the comparator reports equal.
// Empty slots are skipped without calling the comparator.
//   - key is the key to search for
//   - cmp is called as cmp(key, slotKey)
//
// It returns:
//   - slot is the matching slot if found
//   - found is false if no occupied slot in the bucket group matched
func (S *Slots) Get(key []byte, cmp func(a, b []byte) bool) (slot model.Slot, found bool) {
	bucketAddress := S.GetBucketNo(key) * S.bucketSize

	for i := bucketAddress; i < bucketAddress+S.bucketSize; i++ {
		if S.slots[i].state != model.RecordOccupied {
			continue
		}
		if cmp(key, S.slots[i].key) {
			slot = S.getSlot(i)
			found = true
			return
		}
	}

	return
}

// Set - Updates the slot holding an equal key or, if there is none in the bucket group, takes the
// first empty slot of the group.
//   - record is the slot to set, it needs only to contain Key and Value
//   - cmp is called as cmp(existingKey, record.Key)
//
// It returns:
//   - ok is false if the bucket group has neither an equal key nor an empty slot, nothing is written then
func (S *Slots) Set(record model.Slot, cmp func(a, b []byte) bool) (ok bool) {
	address, ok := S.probingForSet(record.Key, cmp)
	if !ok {
		return
	}

	S.setSlot(address, record.Key, record.Value)

	return
}

// Range - Calls fn with every occupied slot in address order until fn returns false
func (S *Slots) Range(fn func(slot model.Slot) bool) {
	it := S.occupied.Iterator()
	for it.HasNext() {
		if !fn(S.getSlot(int64(it.Next()))) {
			return
		}
	}
}

// BucketDistribution - Returns the number of occupied slots in each bucket group
func (S *Slots) BucketDistribution() (distribution []int64) {
	distribution = make([]int64, S.numberOfBuckets)

	it := S.occupied.Iterator()
	for it.HasNext() {
		distribution[int64(it.Next())/S.bucketSize]++
	}

	return
}
