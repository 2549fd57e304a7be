package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPNotifier delivers notices by email through a plain SMTP relay.
type SMTPNotifier struct {
	addr string // host:port
	from string
}

// NewSMTP creates an email notifier for the given SMTP host, port and
// sender address.
func NewSMTP(host string, port int, from string) *SMTPNotifier {
	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
	}
}

func (n *SMTPNotifier) Notify(ctx context.Context, recipient, subject, message string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.from)
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("\r\n")
	b.WriteString(message)
	b.WriteString("\r\n")

	if err := smtp.SendMail(n.addr, nil, n.from, []string{recipient}, []byte(b.String())); err != nil {
		return fmt.Errorf("send mail to %s failed: %w", recipient, err)
	}
	return nil
}
