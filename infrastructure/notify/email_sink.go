// Package notify provides alert sink adapters for the care-team
// notification port.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"mentcare/application/ports"
	pkgerrors "mentcare/pkg/errors"
)

// EmailAlertSink simulates email delivery by writing one line per alert:
//
//	[EMAIL to=<recipient>] <subject> :: <message>
//
// A real SMTP transport can replace the writer without touching callers.
type EmailAlertSink struct {
	mu        sync.Mutex
	out       io.Writer
	recipient string
}

// NewEmailAlertSink creates an email sink writing to out
func NewEmailAlertSink(out io.Writer, recipient string) *EmailAlertSink {
	return &EmailAlertSink{out: out, recipient: recipient}
}

var _ ports.AlertSink = (*EmailAlertSink)(nil)

// Notify delivers one alert line
func (s *EmailAlertSink) Notify(ctx context.Context, subject, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.out, "[EMAIL to=%s] %s :: %s\n", s.recipient, subject, message)
	if err != nil {
		return pkgerrors.NewDeliveryError("email", err)
	}
	return nil
}
