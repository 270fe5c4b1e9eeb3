//go:build e2e && unix

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	// Get the absolute path to the e2e directory
	e2eDir, err := os.Getwd()
	if err != nil {
		fmt.Printf("Failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	binPath = filepath.Join(e2eDir, "bookshelf_e2e")

	// Build the test binary from the module root
	fmt.Println("Building test binary...")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bookshelf")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("Failed to build test binary: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	os.Remove(binPath)
	os.Exit(code)
}
