// Package report renders inspection results for a terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
)

// Printer writes inspection results to out.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// BlockSummary prints the transaction count of the fetched block.
func (p *Printer) BlockSummary(height string, txCount int) error {
	_, err := fmt.Fprintf(p.out, "Block %s contains %d transactions.\n", height, txCount)
	return err
}

// Transaction prints tx as indented JSON.
func (p *Printer) Transaction(tx model.Transaction) error {
	data, err := json.MarshalIndent(tx, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transaction %s: %w", tx.Hash, err)
	}
	_, err = fmt.Fprintf(p.out, "Transaction details:\n%s\n", data)
	return err
}

// Messages prints the messages found by the field scan.
func (p *Printer) Messages(messages []model.Message) error {
	return p.messages(messages, "Hidden messages found:", "No hidden messages found in this transaction.")
}

// PushedDataMessages prints the messages found in individual data pushes.
func (p *Printer) PushedDataMessages(messages []model.Message) error {
	return p.messages(messages, "Pushed data messages found:", "No pushed data messages found in this transaction.")
}

func (p *Printer) messages(messages []model.Message, header, empty string) error {
	if len(messages) == 0 {
		_, err := fmt.Fprintln(p.out, empty)
		return err
	}
	if _, err := fmt.Fprintln(p.out, header); err != nil {
		return err
	}
	for _, msg := range messages {
		if _, err := fmt.Fprintln(p.out, msg.String()); err != nil {
			return err
		}
	}
	return nil
}
