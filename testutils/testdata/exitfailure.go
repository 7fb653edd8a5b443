package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("partial output")
	fmt.Fprintln(os.Stderr, "benchmark crashed")
	os.Exit(1)
}
