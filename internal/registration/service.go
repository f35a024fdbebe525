// Package registration содержит сервис регистрации пользователей,
// который оповещает наблюдателей о каждой регистрации и отмене регистрации.
package registration

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/database"
	"github.com/kazakovdmitriy/go-idioms/internal/observers"
)

// Store - хранилище записей пользователей.
type Store interface {
	AddRecord(identifier string, record database.Record) error
	DeleteRecord(identifier string) error
}

type Service struct {
	events *observers.EventManager
	store  Store
	log    *zap.Logger
}

// NewService создаёт сервис со своим EventManager.
// store может быть nil: тогда сервис только рассылает события.
func NewService(store Store, log *zap.Logger) *Service {
	return &Service{
		events: observers.NewEventManager(),
		store:  store,
		log:    log,
	}
}

// Events возвращает менеджер событий для подписки наблюдателей.
func (s *Service) Events() *observers.EventManager {
	return s.events
}

func (s *Service) Register(username, mail string) error {
	if s.store != nil {
		record := database.Record{"username": username, "mail": mail}
		if err := s.store.AddRecord(username, record); err != nil {
			return fmt.Errorf("register user: %w", err)
		}
	}

	s.log.Debug("user registered", zap.String("username", username))
	return s.events.Notify(observers.EventRegister, map[string]any{"username": username})
}

func (s *Service) Unregister(username string) error {
	if s.store != nil {
		if err := s.store.DeleteRecord(username); err != nil {
			return fmt.Errorf("unregister user: %w", err)
		}
	}

	s.log.Debug("user unregistered", zap.String("username", username))
	return s.events.Notify(observers.EventUnregister, map[string]any{"username": username})
}
