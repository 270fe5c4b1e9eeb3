//go:build e2e && unix

package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartsWithAllBooks(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should render the tab bar")
	require.True(t, tf.SeePlain("All 8 books"), "Should list the whole catalog")
	require.True(t, tf.SeePlain("Dune"))
	require.True(t, tf.SeePlain("No rating"))
}

func TestSearchFlow(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("DUNE"))
	require.True(t, tf.SeePlain("1 book found"), "Should find Dune regardless of case")

	tf.ClearOutput()
	require.NoError(t, tf.Search("zzz"))
	require.True(t, tf.SeePlain("No books found matching your search"))

	tf.ClearOutput()
	require.NoError(t, tf.SendKeys(KeyReset))
	require.True(t, tf.SeePlain("All 8 books"), "Reset should restore the catalog")
}

func TestEmptySearchShowsPrompt(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Search("   "))
	require.True(t, tf.SeePlain("Please enter a search term"))
}

func TestEscCancelsSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeySearch))
	require.True(t, tf.SeePlain("Search:"))
	require.NoError(t, tf.SendKeys("moby"))
	require.NoError(t, tf.SendKeys(KeyEsc))

	// q quits only once the search box has been closed
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(3*time.Second))
}

func TestTabs(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyTab))
	require.True(t, tf.SeePlain("Counting 1 to 100"), "Tab should switch to FizzBuzz")

	require.NoError(t, tf.SendKeys("3"))
	require.True(t, tf.SeePlain("Wasted spend by week"), "3 should open the dashboard")

	tf.ClearOutput()
	require.NoError(t, tf.SendKeys(KeyView))
	require.True(t, tf.SeePlain("Key insights"))

	require.NoError(t, tf.SendKeys("1"))
	require.True(t, tf.SeePlain("All 8 books"))
}

func TestStartTabFromConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.WriteConfig("[ui]\nstart_tab = 'fizzbuzz'\nfizzbuzz_limit = 30\n"))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Counting 1 to 30"))
}

func TestHelpOverlay(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("Bookshelf Help"))

	require.NoError(t, tf.SendKeys(KeyEsc))
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(3*time.Second))
}

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyPager))
	require.True(t, tf.SeePlain("Scrolling"), "Pager should show the help sections")

	// q closes the pager and gives the terminal back to the TUI
	tf.ClearOutput()
	require.NoError(t, tf.Quit())
	require.True(t, tf.SeePlain("Book Search"), "Should return to main TUI after closing pager")
}

func TestQuitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.SendKeys(KeyCtrlC))
	require.NoError(t, tf.WaitExit(3*time.Second))
}
