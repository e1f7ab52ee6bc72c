// Package prompt selects the transaction to inspect.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrInvalidTransactionNumber is returned for non-numeric or out of range input.
	ErrInvalidTransactionNumber = errors.New("invalid transaction number")
	// ErrEmptyBlock is returned when there is no transaction to choose from.
	ErrEmptyBlock = errors.New("block contains no transactions")
)

// Selector asks the user for a transaction index.
type Selector struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSelector returns a Selector reading answers from in and writing prompts to out.
func NewSelector(in io.Reader, out io.Writer) *Selector {
	return &Selector{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Select prompts for an index in [0, count-1] and reads a single line answer.
func (s *Selector) Select(count int) (int, error) {
	if count <= 0 {
		return 0, ErrEmptyBlock
	}
	if _, err := fmt.Fprintf(s.out, "Enter the transaction number (0 to %d): ", count-1); err != nil {
		return 0, fmt.Errorf("write prompt: %w", err)
	}

	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, fmt.Errorf("read transaction number: %w", err)
	}
	return parseIndex(line, count)
}

// Fixed selects a preconfigured index without prompting.
type Fixed int

// Select validates the configured index against count.
func (f Fixed) Select(count int) (int, error) {
	if count <= 0 {
		return 0, ErrEmptyBlock
	}
	return checkRange(int(f), count)
}

func parseIndex(line string, count int) (int, error) {
	value := strings.TrimSpace(line)
	index, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTransactionNumber, value)
	}
	return checkRange(index, count)
}

func checkRange(index, count int) (int, error) {
	if index < 0 || index >= count {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidTransactionNumber, index, count-1)
	}
	return index, nil
}
