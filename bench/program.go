package bench

import (
	"bytes"
	"fmt"
	"os/exec"
	"time"

	"github.com/Blank01442/Flow/log"
)

// ProgramResult is the outcome of running one benchmark program as a child process.
type ProgramResult struct {
	Path           string
	Stdout, Stderr []byte
	// Wall is the real time from the process start to its exit, including the runtime startup.
	Wall time.Duration
}

// RunProgram runs the program to completion and captures its output.
// The returned result is valid even if err is not nil.
func RunProgram(path string, args ...string) (ProgramResult, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("run %s %v", path, args)
	start := time.Now()
	err := cmd.Run()
	result := ProgramResult{Path: path, Stdout: stdout.Bytes(), Stderr: stderr.Bytes(), Wall: time.Since(start)}
	if err != nil {
		return result, fmt.Errorf("failed to run %s: %v", path, err)
	}
	return result, nil
}
