package cputime

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func now() (Clock, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0, fmt.Errorf("failed to read process cpu clock: %v", err)
	}
	return Clock(ts.Nano()), nil
}
