package observers

import (
	"fmt"
	"io"
)

// MailObserver печатает событие в виде письма.
type MailObserver struct {
	out io.Writer
}

func NewMailObserver(out io.Writer) *MailObserver {
	return &MailObserver{out: out}
}

func (m *MailObserver) Update(eventType string, data map[string]any) error {
	_, err := fmt.Fprintf(m.out,
		"\n    MailObserver: This is a Mail event\n    event_type=%q\n    data=%v\n",
		eventType, data,
	)
	if err != nil {
		return fmt.Errorf("write mail event: %w", err)
	}
	return nil
}
