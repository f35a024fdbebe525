package observers

import (
	"errors"
	"fmt"
	"io"
)

var ErrMissingField = errors.New("missing field in event data")

// SlackObserver пишет сообщение в чат только для событий регистрации.
// Остальные типы событий игнорируются.
type SlackObserver struct {
	out io.Writer
}

func NewSlackObserver(out io.Writer) *SlackObserver {
	return &SlackObserver{out: out}
}

func (s *SlackObserver) Update(eventType string, data map[string]any) error {
	if eventType != EventRegister && eventType != EventUnregister {
		return nil
	}

	username, ok := data["username"]
	if !ok {
		return fmt.Errorf("%w: username", ErrMissingField)
	}

	var err error
	switch eventType {
	case EventRegister:
		_, err = fmt.Fprintf(s.out, "SlackObserver: The user %v have been registered!\n", username)
	case EventUnregister:
		_, err = fmt.Fprintf(s.out, "SlackObserver: The user %v have quit\n", username)
	}
	if err != nil {
		return fmt.Errorf("write slack message: %w", err)
	}
	return nil
}
