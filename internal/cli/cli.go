package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nlp_qa/internal/llm"
	"nlp_qa/internal/textproc"

	"go.uber.org/zap"
)

const (
	inputPrompt = "Ask a question (or type 'exit' to quit): "
	exitCommand = "exit"
)

// Asker is the part of the llm client the loop needs.
type Asker interface {
	Ask(ctx context.Context, prompt string) llm.Result
}

type state int

const (
	stateAwaitingInput state = iota
	stateProcessing
	stateExited
)

type Runner struct {
	in     io.Reader
	out    io.Writer
	asker  Asker
	logger *zap.Logger
}

func NewRunner(logger *zap.Logger, llmClient *llm.Client) *Runner {
	return New(os.Stdin, os.Stdout, llmClient, logger)
}

func New(in io.Reader, out io.Writer, asker Asker, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		in:     in,
		out:    out,
		asker:  asker,
		logger: logger.Named("cli"),
	}
}

func (r *Runner) Execute() error {
	return r.Run(context.Background())
}

// Run reads questions until "exit" (any case) or end of input. Only read
// errors are returned; failed questions are printed and the loop goes on.
func (r *Runner) Run(ctx context.Context) error {
	reader := bufio.NewReader(r.in)

	writeBanner(r.out)

	var line string
	for st := stateAwaitingInput; st != stateExited; {
		switch st {
		case stateAwaitingInput:
			fmt.Fprint(r.out, "\n"+inputPrompt)
			text, ok, err := readLine(reader)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			if !ok {
				fmt.Fprintln(r.out)
				r.logger.Debug("input closed")
				writeFarewell(r.out)
				st = stateExited
				continue
			}

			line = text
			if isExit(line) {
				writeFarewell(r.out)
				st = stateExited
				continue
			}
			st = stateProcessing
		case stateProcessing:
			r.handleQuestion(ctx, line)
			st = stateAwaitingInput
		}
	}

	return nil
}

func (r *Runner) handleQuestion(ctx context.Context, question string) {
	view := textproc.Preprocess(question)
	writeDebugView(r.out, view)

	r.logger.Debug("question received",
		zap.Int("length", len(question)),
		zap.Int("tokens", len(view.Tokens)),
	)

	result := r.asker.Ask(ctx, question)
	writeResult(r.out, result)
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// Lines have no length limit. ok is false once input is exhausted; a final
// unterminated line is still returned.
func readLine(reader *bufio.Reader) (line string, ok bool, err error) {
	line, err = reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if err != nil && line == "" {
		return "", false, nil
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

func isExit(line string) bool {
	return strings.ToLower(line) == exitCommand
}
