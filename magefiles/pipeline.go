//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// run executes the built CLI with the given arguments.
func run(args ...string) error {
	mg.Deps(Build)
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Batch runs the full pipeline over pdf_files/.
func Batch() error {
	fmt.Println("[batch] Extract and create instances for every PDF in pdf_files/.")
	return run("batch", "pdf_files")
}

// Runs lists the recorded pipeline runs.
func Runs() error {
	return run("runs", "list")
}
