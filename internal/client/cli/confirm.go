package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/emforms/internal/client/controller"
	"golang.org/x/term"
)

var ErrNotInteractive = errors.New("stdin is not a terminal")

// isTerminal is a test seam for term.IsTerminal on stdin.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptConfirmer asks yes/no questions on the terminal. Without a terminal
// every question is answered "no".
type PromptConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPromptConfirmer(reader *bufio.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{reader: reader, out: out}
}

func (c *PromptConfirmer) Confirm(ctx context.Context, q controller.Confirmation) (bool, error) {
	if !isTerminal() {
		return false, ErrNotInteractive
	}

	prompt := fmt.Sprintf("%s\n%s\n[%s/%s]", q.Title, q.Message, q.CancelLabel, q.OKLabel)
	answer, err := GetSimpleText(c.reader, prompt, c.out)
	if err != nil {
		return false, err
	}

	switch {
	case strings.EqualFold(answer, q.OKLabel), strings.EqualFold(answer, "y"), strings.EqualFold(answer, "yes"):
		return true, nil
	default:
		return false, nil
	}
}
