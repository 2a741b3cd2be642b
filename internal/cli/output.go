package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Output styles
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("✓ %s\n", msg)
	} else {
		fmt.Printf("%s %s\n", successStyle.Render("✓"), msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("⚠ %s\n", msg)
	} else {
		fmt.Printf("%s %s\n", warningStyle.Render("⚠"), msg)
	}
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if globalNoColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("✗"), msg)
	}
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("\n%s\n", title)
	} else {
		fmt.Printf("\n%s\n", headerStyle.Render(title))
	}
}

// dimText renders text de-emphasized, inline
func dimText(msg string) string {
	if globalNoColor {
		return msg
	}
	return dimStyle.Render(msg)
}

// printDim prints a de-emphasized message
func printDim(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Println(msg)
	} else {
		fmt.Println(dimStyle.Render(msg))
	}
}
