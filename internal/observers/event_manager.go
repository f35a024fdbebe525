package observers

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Типы событий сервиса регистрации.
const (
	EventRegister   = "register"
	EventUnregister = "unregister"
)

var ErrObserverNotFound = errors.New("observer not found")

// EventManager хранит упорядоченный список наблюдателей и оповещает их о событиях.
// Один и тот же наблюдатель может быть подписан несколько раз.
// Наблюдатели не принадлежат менеджеру и не закрываются им.
type EventManager struct {
	observers []Observer
	mu        sync.RWMutex
}

func NewEventManager() *EventManager {
	return &EventManager{
		observers: make([]Observer, 0),
	}
}

// Attach добавляет наблюдателя в конец списка.
func (m *EventManager) Attach(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, observer)
}

// Detach удаляет первое вхождение наблюдателя.
// Возвращает ErrObserverNotFound, если наблюдатель не подписан.
// Наблюдателя несравнимого типа (func, map, slice) отписать нельзя: он сравнивается только с nil.
func (m *EventManager) Detach(observer Observer) error {
	if observer != nil && !reflect.ValueOf(observer).Comparable() {
		return fmt.Errorf("%w: %T is not comparable", ErrObserverNotFound, observer)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.Index(m.observers, observer)
	if i < 0 {
		return ErrObserverNotFound
	}
	m.observers = slices.Delete(m.observers, i, i+1)
	return nil
}

// Notify синхронно вызывает Update у каждого наблюдателя в порядке подписки.
// Первая ошибка прерывает рассылку: остальные наблюдатели событие не получат.
func (m *EventManager) Notify(eventType string, data map[string]any) error {
	for _, observer := range m.snapshot() {
		if err := observer.Update(eventType, data); err != nil {
			return fmt.Errorf("notify %s: %w", eventType, err)
		}
	}
	return nil
}

// Len возвращает количество подписок, включая повторные.
func (m *EventManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.observers)
}

// snapshot копирует список, чтобы наблюдатель мог подписываться и отписываться из Update.
func (m *EventManager) snapshot() []Observer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.observers)
}
