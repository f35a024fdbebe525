package database

// Варианты операций без ошибок: отсутствие результата передаётся признаком.
// Причина неудачи (нет записи или нет поля) при этом теряется.

// TryAddRecord возвращает false, если идентификатор уже занят.
func (d *Database) TryAddRecord(identifier string, record Record) bool {
	return d.AddRecord(identifier, record) == nil
}

// TryDeleteRecord возвращает false, если записи нет.
func (d *Database) TryDeleteRecord(identifier string) bool {
	return d.DeleteRecord(identifier) == nil
}

func (d *Database) LookupRecord(identifier string) (Record, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	record, ok := d.records[identifier]
	return record, ok
}

func (d *Database) LookupRecordField(identifier, field string) (any, bool) {
	record, ok := d.LookupRecord(identifier)
	if !ok {
		return nil, false
	}
	value, ok := record[field]
	return value, ok
}
