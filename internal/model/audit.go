package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord - запись об оповещении наблюдателей
type AuditRecord struct {
	Timestamp time.Time      `json:"-"`  // Внутреннее представление времени
	Ts        int64          `json:"ts"` // Unix timestamp в миллисекундах
	ID        string         `json:"id"`
	EventType string         `json:"event_type"`
	Data      map[string]any `json:"data"`
}

func NewAuditRecord(eventType string, data map[string]any) AuditRecord {
	now := time.Now()
	return AuditRecord{
		Timestamp: now,
		Ts:        now.UnixMilli(),
		ID:        uuid.NewString(),
		EventType: eventType,
		Data:      data,
	}
}
