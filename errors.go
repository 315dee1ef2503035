package fixedhashtable

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// BucketFull - Custom error to inform that the home bucket of a key holds other keys in all its slots.
// The table never grows, a bigger table has to be built (see Rebuild) to store the key.
type BucketFull struct {
	msg string
}

// Error - Used to notify that a bucket is full
func (E BucketFull) Error() string {
	if E.msg == "" {
		return "bucket full"
	}
	return E.msg
}

// Is - Matches any BucketFull regardless of message
func (E BucketFull) Is(target error) bool {
	_, ok := target.(BucketFull)
	return ok
}

// AllocationError - Custom error to inform that the slot storage of a table could not be obtained
type AllocationError struct {
	cause error
}

// Error - Used to notify that allocation failed
func (E AllocationError) Error() string {
	if E.cause == nil {
		return "unable to allocate table storage"
	}
	return fmt.Sprintf("unable to allocate table storage: %s", E.cause)
}

// Unwrap - Returns the reason of the failed allocation
func (E AllocationError) Unwrap() error {
	return E.cause
}

// Is - Matches any AllocationError regardless of cause
func (E AllocationError) Is(target error) bool {
	_, ok := target.(AllocationError)
	return ok
}

// TableClosed - Custom error to inform that the table has been closed
type TableClosed struct{}

// Error - Used to notify that the table is closed
func (E TableClosed) Error() string {
	return "table is closed"
}
