package cycles

// now is implemented in cycles_amd64.s using RDTSC.
func now() uint64
