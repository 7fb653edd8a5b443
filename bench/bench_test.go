package bench

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Blank01442/Flow/cputime"
	"github.com/Blank01442/Flow/fib"
	"github.com/Blank01442/Flow/log"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	calls := 0
	var gotN int
	m, err := Run(35, func(n int) int64 {
		calls++
		gotN = n
		return fib.Iterative(n)
	})
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.Equal(t, 35, gotN)
	require.Equal(t, 35, m.Input)
	require.Equal(t, int64(9227465), m.Result)
	require.GreaterOrEqual(t, m.Seconds(), 0.0)
}

func TestRun_Recursive(t *testing.T) {
	m, err := Run(30, fib.Recursive)
	require.NoError(t, err)

	require.Equal(t, int64(832040), m.Result)
	require.Greater(t, m.Elapsed(), time.Duration(0))
}

func TestRun_DebugLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	orig := log.EnableDebugLog
	log.EnableDebugLog = true
	defer func() {
		log.SetOutput(os.Stderr)
		log.EnableDebugLog = orig
	}()

	_, err := Run(20, fib.Recursive)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "n=20")
	require.Contains(t, buf.String(), "alloc_bytes=")
}

func TestMeasurement_Report(t *testing.T) {
	m := Measurement{
		Input:  35,
		Result: 9227465,
		Start:  cputime.Clock(time.Second),
		End:    cputime.Clock(time.Second + 1500*time.Microsecond),
	}

	var buf bytes.Buffer
	require.NoError(t, m.Report(&buf, "Go"))
	require.Equal(t, "Fibonacci(35) = 9227465\nGo execution time: 0.001500 seconds\n", buf.String())
}

func TestMeasurement_ReportZeroElapsed(t *testing.T) {
	m := Measurement{Input: 0, Result: 0}

	var buf bytes.Buffer
	require.NoError(t, m.Report(&buf, "C"))
	require.Equal(t, "Fibonacci(0) = 0\nC execution time: 0.000000 seconds\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestMeasurement_ReportWriteError(t *testing.T) {
	require.Error(t, Measurement{}.Report(failingWriter{}, "Go"))
}

func ExampleMeasurement_Report() {
	m := Measurement{Input: 10, Result: fib.Iterative(10)}
	_ = m.Report(os.Stdout, "Go")
	// Output:
	// Fibonacci(10) = 55
	// Go execution time: 0.000000 seconds
}
