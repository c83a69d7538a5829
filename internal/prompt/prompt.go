// Package prompt implements the interactive question loop. The answer
// source is an injected reader so tests can script input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hpungsan/kprune/internal/errors"
)

// Asker asks questions on out and reads one-line answers from an injected
// reader. Rejection notices go to errOut.
type Asker struct {
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

// New creates an Asker reading answers from in.
func New(in io.Reader, out, errOut io.Writer) *Asker {
	return &Asker{
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
	}
}

// Ask asks a question and returns the answer.
//
// If allowed is non-empty the answer must exactly match one of its values
// (case-sensitive) and the question is suffixed with the accepted answers,
// the default one starred. Blank input resolves to defaultAnswer when one
// is given, otherwise the question repeats. The loop is unbounded; an
// exhausted answer source is an i/o failure.
//
// A non-empty allowed set must contain at least two distinct values and
// must include defaultAnswer if one is given. Violations are programmer
// errors, not user-input errors.
func (a *Asker) Ask(question string, allowed []string, defaultAnswer string) (string, error) {
	if len(allowed) > 0 {
		if countDistinct(allowed) < 2 {
			return "", errors.NewInvalidArgument(fmt.Sprintf("need more answers than %v", allowed))
		}
		if defaultAnswer != "" && !contains(allowed, defaultAnswer) {
			return "", errors.NewInvalidArgument(fmt.Sprintf("default answer (%s) is not in set of answers %v", defaultAnswer, allowed))
		}
	}

	full := question
	if len(allowed) > 0 {
		full += " " + enumerate(allowed, defaultAnswer)
	}
	full += " : "

	for {
		fmt.Fprintln(a.out, full)

		input, err := a.readLine()
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(input) == "" {
			if defaultAnswer != "" {
				return defaultAnswer, nil
			}
			continue
		}
		if len(allowed) == 0 {
			return input, nil
		}
		if contains(allowed, input) {
			return input, nil
		}
		fmt.Fprintf(a.errOut, "'%s' is not in %s\n", input, enumerate(allowed, defaultAnswer))
	}
}

// YesOrNo asks a y/n question and reports whether the answer was yes.
func (a *Asker) YesOrNo(question string, defaultIsYes bool) (bool, error) {
	defaultAnswer := "n"
	if defaultIsYes {
		defaultAnswer = "y"
	}
	answer, err := a.Ask(question, []string{"y", "n"}, defaultAnswer)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// readLine reads one line of input.
func (a *Asker) readLine() (string, error) {
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", errors.NewIOFailure(fmt.Errorf("read answer: %w", err))
		}
		return "", errors.NewIOFailure(fmt.Errorf("read answer: input closed"))
	}
	return a.in.Text(), nil
}

// enumerate renders the accepted answers as "( a* | b )" with the default
// starred.
func enumerate(allowed []string, defaultAnswer string) string {
	var b strings.Builder
	b.WriteString("( ")
	for i, answer := range allowed {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(answer)
		if answer == defaultAnswer {
			b.WriteString("*")
		}
	}
	b.WriteString(" )")
	return b.String()
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func countDistinct(values []string) int {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		seen[v] = true
	}
	return len(seen)
}
