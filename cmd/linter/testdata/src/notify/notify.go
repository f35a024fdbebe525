package notify

type EventManager struct{}

func (m *EventManager) Notify(eventType string, data map[string]any) error { return nil }

type Other struct{}

func (o Other) Notify(eventType string, data map[string]any) error { return nil }

func register(m *EventManager) error {
	m.Notify("register", nil) // want `error returned by EventManager.Notify is not checked`

	defer m.Notify("unregister", nil) // want `error returned by EventManager.Notify is not checked`

	go m.Notify("register", nil) // want `error returned by EventManager.Notify is not checked`

	_ = m.Notify("register", nil)

	if err := m.Notify("register", nil); err != nil {
		return err
	}

	Other{}.Notify("register", nil)

	return m.Notify("unregister", nil)
}
