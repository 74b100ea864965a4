package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// SetColor enables or disables all colored console output.
func SetColor(enabled bool) {
	if enabled {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

// DisplayErrorMessage displays a standard Go error to the console.
func DisplayErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// DisplayWarningMessage displays a warning message to the console.
func DisplayWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// DisplayInfoMessage displays an informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	ErrorStyleBG.Print("Internal Compiler Error")
	ErrorColorFG.Println(" " + message)
	InfoColorFG.Println("This error was not supposed to happen: this is likely a bug in fnc.")
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
}

// -----------------------------------------------------------------------------

// excerptSize is the maximum number of source lines shown above and including
// the erroneous line.
const excerptSize = 5

// diagnostic is a compile error laid out for display.  It is kept in pieces so
// that the console display can color each piece separately.
type diagnostic struct {
	code    string
	kind    string
	excerpt []string
	carets  string
	trailer string
}

// newDiagnostic lays out a compile error over the given source text.
func newDiagnostic(src string, cerr *CompileError) *diagnostic {
	lines := strings.Split(src, "\n")
	row, col := cerr.Start.Row, cerr.Start.Col

	// Errors spanning multiple lines are underlined only until the end of the
	// line on which they begin.
	var endIdx int
	if cerr.End.Before(cerr.Start) {
		endIdx = cerr.Start.Idx
	} else if cerr.End.Row == row {
		endIdx = cerr.End.Idx
	} else {
		for ln := 0; ln <= row && ln < len(lines); ln++ {
			endIdx += len(lines[ln]) + 1
		}

		endIdx--
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	// One caret per character of the span.
	var caretCount int
	if cerr.Start.Idx < endIdx && endIdx <= len(src) {
		caretCount = utf8.RuneCountInString(strings.TrimSuffix(src[cerr.Start.Idx:endIdx], "\r"))
	}

	if caretCount < 1 {
		caretCount = 1
	}

	numSize := len(strconv.Itoa(row + 1))

	d := &diagnostic{
		code: fmt.Sprintf("E%04d", int(cerr.Code)),
		kind: cerr.Code.String(),
	}

	first := row - excerptSize + 1
	if first < 0 {
		first = 0
	}

	for ln := first; ln <= row; ln++ {
		var line string
		if ln < len(lines) {
			line = lines[ln]
		}

		d.excerpt = append(d.excerpt, fmt.Sprintf("%*d. %s", numSize, ln+1, line))
	}

	d.carets = strings.Repeat(" ", numSize+2+col) + strings.Repeat("^", caretCount)
	d.trailer = fmt.Sprintf("%s (%d:%d)", cerr.Message, row+1, col+1)

	return d
}

// FormatDiagnostic renders a compile error as plain text: a header line
// containing the error code, up to five lines of source text ending at the
// erroneous line, a line of carets underlining the erroneous span and the
// error message followed by its one-indexed position.
func FormatDiagnostic(src string, cerr *CompileError) string {
	d := newDiagnostic(src, cerr)

	var sb strings.Builder
	sb.WriteString(d.code + "  " + d.kind + ":\n")
	for _, line := range d.excerpt {
		sb.WriteString(line + "\n")
	}
	sb.WriteString(d.carets + "\n")
	sb.WriteString(d.trailer + "\n")

	return sb.String()
}

// displayCompileError displays a compile error to the console.  The text is
// identical to that of FormatDiagnostic.
func displayCompileError(src string, cerr *CompileError) {
	d := newDiagnostic(src, cerr)

	ErrorStyleBG.Print(d.code)
	fmt.Println("  " + d.kind + ":")

	for _, line := range d.excerpt {
		fmt.Println(line)
	}

	ErrorColorFG.Println(d.carets)
	fmt.Println(d.trailer)
}

// -----------------------------------------------------------------------------

// phaseSpinner stores the current phase spinner
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Checking")

// displayBeginPhase displays the beginning of a compilation phase
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of a compilation phase
func displayEndPhase(success bool) {
	if phaseSpinner != nil {
		if success {
			phaseSpinner.Success(
				currentPhase+strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()),
			)
		} else {
			phaseSpinner.Fail(currentPhase + strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2))
		}

		phaseSpinner = nil
	}
}

// displayCompileHeader displays the front end version and the file being
// checked before any phase begins.
func displayCompileHeader(version, path string) {
	fmt.Print("fnc ")
	InfoColorFG.Print("v" + version)
	fmt.Print(" -- checking: ")
	InfoColorFG.Println(path)
}

// displayCompilationFinished displays a compilation finished message
func displayCompilationFinished(success bool, elapsed time.Duration) {
	fmt.Print("\n")

	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Printf("(%.3fs)\n", elapsed.Seconds())
}
