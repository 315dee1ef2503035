//go:build !linux && !darwin

package resource

func physicalMemory() int64 {
	return addressSpace
}
