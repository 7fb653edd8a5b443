// Package testutils builds the benchmark programs once so that the tests can run them as child processes.
// The test packages importing it remove the programs by calling Cleanup in their TestMain.
package testutils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/Blank01442/Flow/log"
)

var (
	// goBinaryPath is the path to the go binary used to build this test program.
	// This go binary is used to build the benchmark programs too.
	goBinaryPath string = filepath.Join(runtime.GOROOT(), "bin", "go")

	// BuildDir contains the built programs. Each program has the same name as its package directory.
	BuildDir string

	ProgramIterative string
	ProgramRecursive string
	ProgramRunBench  string

	// ProgramExitFailure prints a message to stderr and exits with the status 1.
	ProgramExitFailure string
)

func init() {
	_, srcFilename, _, _ := runtime.Caller(0)
	srcDirname := filepath.Dir(srcFilename)
	moduleDirname := filepath.Dir(srcDirname)

	// Each test binary builds its own copy, since `go test ./...` runs packages in parallel.
	var err error
	BuildDir, err = os.MkdirTemp("", "fibbench-testutils")
	if err != nil {
		panic(err)
	}

	ProgramIterative = filepath.Join(BuildDir, "fibiter")
	if err := buildProgram(moduleDirname, "./cmd/fibiter", ProgramIterative); err != nil {
		panic(err)
	}

	ProgramRecursive = filepath.Join(BuildDir, "fibrec")
	if err := buildProgram(moduleDirname, "./cmd/fibrec", ProgramRecursive); err != nil {
		panic(err)
	}

	ProgramRunBench = filepath.Join(BuildDir, "runbench")
	if err := buildProgram(moduleDirname, "./cmd/runbench", ProgramRunBench); err != nil {
		panic(err)
	}

	ProgramExitFailure = filepath.Join(BuildDir, "exitfailure")
	if err := buildProgram(srcDirname, "./testdata/exitfailure.go", ProgramExitFailure); err != nil {
		panic(err)
	}

	log.EnableDebugLog = true
}

func buildProgram(dir, pkg, programName string) error {
	cmd := exec.Command(goBinaryPath, "build", "-o", programName, pkg)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to build %s: %v\n%v", pkg, err, string(out))
	}
	return nil
}

// Cleanup removes the built programs. Call it from TestMain after m.Run.
func Cleanup() error {
	return os.RemoveAll(BuildDir)
}
