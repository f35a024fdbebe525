package tutorial

import (
	"fmt"
	"io"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/observers"
	"github.com/kazakovdmitriy/go-idioms/internal/registration"
)

// Events регистрирует и удаляет случайных пользователей,
// оповещая наблюдателей Log, Mail и Slack.
func Events(out io.Writer, log *zap.Logger, faker *gofakeit.Faker, rounds int) error {
	service := registration.NewService(nil, log)

	service.Events().Attach(observers.NewLogObserver(log))
	service.Events().Attach(observers.NewMailObserver(out))
	service.Events().Attach(observers.NewSlackObserver(out))

	for i := 0; i < rounds; i++ {
		if err := service.Register(faker.Username(), ""); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
		if err := service.Unregister(faker.Username()); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
	}
	return nil
}
