package cli

import (
	"fmt"
	"io"
	"strings"

	"nlp_qa/internal/llm"
	"nlp_qa/internal/textproc"

	"github.com/fatih/color"
)

var (
	rule      = strings.Repeat("=", 50)
	thinRule  = strings.Repeat("-", 30)
	titleText = color.New(color.Bold)
	okText    = color.New(color.FgGreen, color.Bold)
	errText   = color.New(color.FgRed, color.Bold)
)

func writeBanner(w io.Writer) {
	fmt.Fprintln(w, rule)
	titleText.Fprintln(w, "NLP Q&A SYSTEM - CLI MODE")
	fmt.Fprintln(w, rule)
}

func writeFarewell(w io.Writer) {
	fmt.Fprintln(w, "Exiting system...")
}

func writeDebugView(w io.Writer, view textproc.View) {
	fmt.Fprintf(w, "\n[Debug] Preprocessed: %s\n", view.Normalized)
	fmt.Fprintf(w, "[Debug] Tokens: %s\n", formatTokens(view.Tokens))
	fmt.Fprintln(w, thinRule)
	fmt.Fprintln(w, "Thinking...")
}

func writeResult(w io.Writer, result llm.Result) {
	heading := okText
	if _, failed := result.(llm.Failure); failed {
		heading = errText
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, ">> AI Answer:")
	fmt.Fprintln(w, result.String())
	fmt.Fprintln(w, rule)
}

// formatTokens renders tokens as ['a', 'b']. Tokens hold only letters,
// numbers and '_', so no escaping is needed.
func formatTokens(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, token := range tokens {
		quoted[i] = "'" + token + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
