package memsize

import "github.com/shirou/gopsutil/mem"

// SystemMemory reports the total and currently available physical memory of
// the host machine.
func SystemMemory() (total, available Size, err error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, 0, err
	}

	return FromBytes(vm.Total), FromBytes(vm.Available), nil
}
