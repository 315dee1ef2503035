package bucketarray

import (
	"fmt"

	"github.com/maxsei/fixedhashtable/internal/model"
)

// slot - The in-memory form of a slot, its address is its index in the backing array
type slot struct {
	state uint8
	key   []byte
	value []byte
}

// allocate - Returns a zeroed backing array of n slots.
// A length the runtime refuses turns into an error instead of a panic.
func allocate(n int64) (slots []slot, err error) {
	defer func() {
		if r := recover(); r != nil {
			slots = nil
			err = fmt.Errorf("unable to allocate %d slots: %v", n, r)
		}
	}()

	slots = make([]slot, n)

	return
}

// getSlot - Returns a copy of the slot at the given address
func (S *Slots) getSlot(address int64) (record model.Slot) {
	s := S.slots[address]
	record = model.Slot{
		State:       s.state,
		SlotAddress: address,
		Key:         s.key,
		Value:       s.value,
	}

	return
}

// setSlot - Writes key and value to the slot at the given address and marks it occupied
func (S *Slots) setSlot(address int64, key, value []byte) {
	S.slots[address] = slot{
		state: model.RecordOccupied,
		key:   key,
		value: value,
	}
	S.occupied.Add(uint64(address))
}

// probingForSet - Scans the whole home bucket group of key.
// An occupied slot with an equal key wins over any empty slot, otherwise the first empty slot seen is used.
// It returns ok false if the group is full of other keys.
func (S *Slots) probingForSet(key []byte, cmp func(a, b []byte) bool) (address int64, ok bool) {
	bucketAddress := S.GetBucketNo(key) * S.bucketSize

	firstEmpty := int64(-1)
	for i := bucketAddress; i < bucketAddress+S.bucketSize; i++ {
		if S.slots[i].state != model.RecordOccupied {
			if firstEmpty < 0 {
				firstEmpty = i
			}
			continue
		}
		if cmp(S.slots[i].key, key) {
			address = i
			ok = true
			return
		}
	}

	if firstEmpty >= 0 {
		address = firstEmpty
		ok = true
	}

	return
}
