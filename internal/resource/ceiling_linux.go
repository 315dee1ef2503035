package resource

import "golang.org/x/sys/unix"

func physicalMemory() int64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return addressSpace
	}
	return clampToInt64(uint64(info.Totalram) * uint64(info.Unit))
}
