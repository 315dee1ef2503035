package resource

import "golang.org/x/sys/unix"

func physicalMemory() int64 {
	total, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return addressSpace
	}
	return clampToInt64(total)
}
