package observers

// Observer - интерфейс для конкретных наблюдателей.
// Update получает тип события и связанные с ним данные.
type Observer interface {
	Update(eventType string, data map[string]any) error
}
