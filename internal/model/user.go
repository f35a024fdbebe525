package model

import (
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// User - пользователь с вычисляемыми именами.
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewFakeUser(faker *gofakeit.Faker) User {
	return User{
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
	}
}

// Username возвращает инициал и фамилию в нижнем регистре: "j.doe".
func (u User) Username() string {
	initial := ""
	if r := []rune(u.FirstName); len(r) > 0 {
		initial = string(r[0])
	}
	return strings.ToLower(initial + "." + u.LastName)
}

// Login возвращает имя и фамилию в нижнем регистре: "john.doe".
func (u User) Login() string {
	return strings.ToLower(u.FirstName + "." + u.LastName)
}

func (u User) Mail() string {
	return u.Login() + "@example.com"
}
