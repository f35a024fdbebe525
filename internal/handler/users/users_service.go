package users

import "github.com/kazakovdmitriy/go-idioms/internal/database"

// UsersService регистрирует пользователей и оповещает наблюдателей.
type UsersService interface {
	// Register сохраняет пользователя и рассылает событие "register".
	Register(username, mail string) error

	// Unregister удаляет пользователя и рассылает событие "unregister".
	Unregister(username string) error
}

// RecordReader даёт доступ на чтение к записям пользователей.
type RecordReader interface {
	GetAllRecords() map[string]database.Record
	GetRecordField(identifier, field string) (any, error)
}
