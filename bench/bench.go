// Package bench times a single Fibonacci computation and reports it.
package bench

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/Blank01442/Flow/cputime"
	"github.com/Blank01442/Flow/log"
)

// Measurement is the outcome of one timed call.
type Measurement struct {
	Input      int
	Result     int64
	Start, End cputime.Clock
}

// Elapsed returns the CPU time spent in the call.
func (m Measurement) Elapsed() time.Duration {
	return m.End.Sub(m.Start)
}

// Seconds returns the CPU time spent in the call in fractional seconds.
func (m Measurement) Seconds() float64 {
	return m.Elapsed().Seconds()
}

// Report writes the result and the elapsed time in two lines. The format is
// shared with the benchmark programs written in other languages, so keep it
// as it is.
func (m Measurement) Report(w io.Writer, language string) error {
	if _, err := fmt.Fprintf(w, "Fibonacci(%d) = %d\n", m.Input, m.Result); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s execution time: %f seconds\n", language, m.Seconds())
	return err
}

// Run calls f(n) exactly once and measures the process CPU time around the call only.
//
// With the debug log enabled, the heap bytes allocated during the call are
// logged too. The memory stats are read outside the timed region.
func Run(n int, f func(int) int64) (Measurement, error) {
	var before runtime.MemStats
	if log.EnableDebugLog {
		runtime.ReadMemStats(&before)
	}

	start, err := cputime.Now()
	if err != nil {
		return Measurement{}, err
	}
	result := f(n)
	end, err := cputime.Now()
	if err != nil {
		return Measurement{}, err
	}

	m := Measurement{Input: n, Result: result, Start: start, End: end}
	if log.EnableDebugLog {
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		log.WithField("n", n).WithField("elapsed", m.Elapsed()).WithField("alloc_bytes", after.TotalAlloc-before.TotalAlloc).Debug("computed")
	}
	return m, nil
}
