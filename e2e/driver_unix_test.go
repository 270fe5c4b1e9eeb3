//go:build e2e && unix

package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback
var binPath = "bookshelf_e2e"

// Key constants for better readability
const (
	KeyEnter  = "\r"
	KeyEsc    = "\x1b"
	KeyCtrlC  = "\x03"
	KeyTab    = "\t"
	KeySearch = "/"
	KeyReset  = "r"
	KeyView   = "v"
	KeyHelp   = "?"
	KeyPager  = "H"
	KeyQuit   = "q"
)

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework drives the bookshelf binary through a PTY
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	workspace string

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

// NewTUITest creates a framework with its own workspace used as $HOME and cwd
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
}

// ConfigPath is where the app under test reads its config
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "bookshelf.toml")
}

// WriteConfig writes a config file into the workspace
func (tf *TUITestFramework) WriteConfig(content string) error {
	return os.WriteFile(tf.ConfigPath(), []byte(content), 0644)
}

// LogTail returns the app's log file, if any
func (tf *TUITestFramework) LogTail() string {
	data, _ := os.ReadFile(filepath.Join(tf.workspace, "bookshelf.log"))
	return string(data)
}

func (tf *TUITestFramework) command(args ...string) *exec.Cmd {
	full := append([]string{"--config", tf.ConfigPath()}, args...)
	cmd := exec.Command(binPath, full...)
	cmd.Dir = tf.workspace
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tf.workspace, // isolate $HOME
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
	)
	return cmd
}

// StartApp launches the TUI with the given arguments in a 120x40 PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	tf.cmd = tf.command(args...)

	ptyFile, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}
	tf.pty = ptyFile

	tf.startReader()
	return nil
}

// RunCLI runs a headless subcommand and returns its combined output
func (tf *TUITestFramework) RunCLI(args ...string) (string, error) {
	out, err := tf.command(args...).CombinedOutput()
	return string(out), err
}

// startReader copies PTY output into the ring buffer until EOF
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Search opens the search box, types query and submits it
func (tf *TUITestFramework) Search(query string) error {
	tf.t.Helper()
	if err := tf.SendKeys(KeySearch); err != nil {
		return err
	}
	// Give the mode switch a frame before typing
	time.Sleep(50 * time.Millisecond)
	if err := tf.SendKeys(query); err != nil {
		return err
	}
	return tf.SendKeys(KeyEnter)
}

// Ready waits for the first full frame
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.OutputContainsPlain("Book Search", 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// Quit sends quit command
func (tf *TUITestFramework) Quit() error {
	tf.t.Helper()
	return tf.SendKeys(KeyQuit)
}

// OutputContainsPlain checks if the normalized output contains text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// WaitExit waits for the process to exit
func (tf *TUITestFramework) WaitExit(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case err := <-done:
		tf.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %s", timeout)
	}
}

// ClearOutput forgets everything captured so far
func (tf *TUITestFramework) ClearOutput() {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.head = 0
	tf.full = false
}

// Snapshot returns the current contents of the ring buffer
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail logs the last n bytes of normalized output when the test failed
func (tf *TUITestFramework) DumpTailOnFail(n int) {
	if !tf.t.Failed() {
		return
	}
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	tf.t.Logf("--- tail ---\n%s", s)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	tf.DumpTailOnFail(4096)
	// Close PTY first to deliver SIGHUP to child process
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
}
