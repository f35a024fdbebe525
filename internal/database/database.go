// Package database реализует игрушечную базу записей в памяти.
// Операции доступны в двух вариантах: с возвратом ошибки и с признаком успеха (bool / comma ok).
package database

import (
	"fmt"
	"maps"
	"sync"
)

// Record - данные одной записи.
type Record map[string]any

// Database хранит записи по уникальному идентификатору.
type Database struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewDatabase создаёт пустую базу.
func NewDatabase() *Database {
	return &Database{
		records: make(map[string]Record),
	}
}

// AddRecord сохраняет запись.
// Возвращает ErrIdentifierAlreadyExists, если идентификатор уже занят.
func (d *Database) AddRecord(identifier string, record Record) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.records[identifier]; exists {
		return fmt.Errorf("add %q: %w", identifier, ErrIdentifierAlreadyExists)
	}
	d.records[identifier] = record
	return nil
}

// DeleteRecord удаляет запись.
// Возвращает ErrIdentifierNotExists, если записи нет.
func (d *Database) DeleteRecord(identifier string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.records[identifier]; !exists {
		return fmt.Errorf("delete %q: %w", identifier, ErrIdentifierNotExists)
	}
	delete(d.records, identifier)
	return nil
}

// GetRecord возвращает запись по идентификатору.
// Возвращает ErrIdentifierNotExists, если записи нет.
func (d *Database) GetRecord(identifier string) (Record, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record, exists := d.records[identifier]
	if !exists {
		return nil, fmt.Errorf("get %q: %w", identifier, ErrIdentifierNotExists)
	}
	return record, nil
}

// GetAllRecords возвращает копию всех записей.
func (d *Database) GetAllRecords() map[string]Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return maps.Clone(d.records)
}

// GetRecordField возвращает значение поля записи.
// Возвращает ErrIdentifierNotExists, если записи нет, и ErrFieldNotExists, если нет поля.
func (d *Database) GetRecordField(identifier, field string) (any, error) {
	record, err := d.GetRecord(identifier)
	if err != nil {
		return nil, err
	}

	value, exists := record[field]
	if !exists {
		return nil, fmt.Errorf("get %q.%q: %w", identifier, field, ErrFieldNotExists)
	}
	return value, nil
}
