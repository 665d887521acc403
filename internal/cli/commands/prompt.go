package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/fedtax/pkg/tax"
)

// ErrInputAborted is returned when the user interrupts or closes input
// before a valid value was entered.
var ErrInputAborted = errors.New("input aborted")

// Prompt texts shown by the interactive collector.
const (
	IncomePrompt       = "Enter your Taxable Income as a whole number: "
	IncomeRetryMessage = "Not a valid integer! Please try again ..."
	StatusQuestion     = "What is your filing status? "
	StatusPrompt       = "Enter 'single' or 'married': "
)

// LineReader reads one line of user input after showing a prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// readlineReader reads from a terminal with line editing, history and
// completion of filing statuses.
type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(stdin *os.File, stdout io.Writer, historyFile string) (*readlineReader, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(tax.Statuses()))
	for _, s := range tax.Statuses() {
		items = append(items, readline.PcItem(s.String()))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          IncomePrompt,
		HistoryFile:     historyFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", ErrInputAborted
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

// plainReader reads from a pipe or file, echoing prompts to out.
type plainReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlainReader returns a LineReader for non-interactive input.
func NewPlainReader(in io.Reader, out io.Writer) LineReader {
	return &plainReader{in: bufio.NewReader(in), out: out}
}

func (r *plainReader) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			_, _ = fmt.Fprintln(r.out)
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(r.out)
			return "", ErrInputAborted
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *plainReader) Close() error {
	return nil
}

// newLineReader picks readline for a terminal and a plain reader otherwise.
func newLineReader(cmd *cobra.Command, historyFile string) (LineReader, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return newReadlineReader(f, cmd.OutOrStdout(), historyFile)
	}
	return NewPlainReader(in, cmd.OutOrStdout()), nil
}

// Prompter collects validated calculator inputs, re-asking until the
// answer is valid.
type Prompter struct {
	reader LineReader
	out    io.Writer
}

// NewPrompter creates a Prompter that reads from reader and writes
// messages to out.
func NewPrompter(reader LineReader, out io.Writer) *Prompter {
	return &Prompter{reader: reader, out: out}
}

// Income asks for taxable income as a whole number.
func (p *Prompter) Income() (float64, error) {
	for {
		line, err := p.reader.ReadLine(IncomePrompt)
		if err != nil {
			return 0, err
		}
		income, err := ParseIncome(line)
		if err != nil {
			_, _ = fmt.Fprintln(p.out, IncomeRetryMessage)
			continue
		}
		return income, nil
	}
}

// FilingStatus asks for single or married, in any letter case.
func (p *Prompter) FilingStatus() (tax.FilingStatus, error) {
	for {
		_, _ = fmt.Fprintln(p.out, StatusQuestion)
		line, err := p.reader.ReadLine(StatusPrompt)
		if err != nil {
			return "", err
		}
		if status, err := tax.ParseFilingStatus(line); err == nil {
			return status, nil
		}
	}
}

// wholeNumber matches an optionally signed run of digits, allowing single
// underscores between digits ("1_000").
var wholeNumber = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// ParseIncome parses a whole-number income of any magnitude. Surrounding
// whitespace, a leading sign and digit-group underscores are accepted;
// fractions and other text are not.
func ParseIncome(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if !wholeNumber.MatchString(trimmed) {
		return 0, fmt.Errorf("not a valid integer: %q", s)
	}
	income, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid integer: %q: %w", s, err)
	}
	return income, nil
}
