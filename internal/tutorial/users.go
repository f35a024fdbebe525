package tutorial

import (
	"fmt"
	"io"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/kazakovdmitriy/go-idioms/internal/database"
	"github.com/kazakovdmitriy/go-idioms/internal/model"
)

// Users печатает поля случайного пользователя и вычисляемое имя.
func Users(out io.Writer, faker *gofakeit.Faker) {
	user := model.NewFakeUser(faker)
	fmt.Fprintf(out, "user.FirstName=%q\n", user.FirstName)
	fmt.Fprintf(out, "user.LastName=%q\n", user.LastName)
	fmt.Fprintf(out, "user.Username()=%q\n", user.Username())
}

// UsersAdvanced сохраняет count случайных пользователей в базу и печатает её в JSON.
func UsersAdvanced(out io.Writer, faker *gofakeit.Faker, count int) error {
	db := database.NewDatabase()

	for i := 0; i < count; i++ {
		user := model.NewFakeUser(faker)
		record := database.Record{"username": user.Login(), "mail": user.Mail()}
		if err := db.AddRecord(user.Login(), record); err != nil {
			return fmt.Errorf("add user %d: %w", i, err)
		}
	}

	data, err := json.MarshalIndent(db.GetAllRecords(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
