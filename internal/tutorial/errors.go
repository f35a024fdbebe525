package tutorial

import (
	"errors"
	"fmt"
	"io"

	"github.com/kazakovdmitriy/go-idioms/internal/database"
)

// Errors сравнивает операции с признаком успеха и операции, возвращающие ошибку.
func Errors(out io.Writer) {
	db := database.NewDatabase()

	jdoe := database.Record{"username": "@jdoe", "mail": "jdoe@example.com"}
	adoe := database.Record{"username": "@adoe", "mail": "adoe@example.com"}

	addWithoutError := func(record database.Record) {
		if !db.TryAddRecord(record["username"].(string), record) {
			fmt.Fprintln(out, "The record already exists")
			return
		}
		fmt.Fprintln(out, "The record have been registered")
	}

	addWithError := func(record database.Record) {
		err := db.AddRecord(record["username"].(string), record)
		switch {
		case err == nil:
			fmt.Fprintln(out, "The record have been registered")
		case errors.Is(err, database.ErrIdentifierAlreadyExists):
			fmt.Fprintln(out, "The record already exists")
		default:
			fmt.Fprintln(out, "Unexpected error")
		}
	}

	printLookup := func(identifier, field string) {
		value, ok := db.LookupRecordField(identifier, field)
		if !ok {
			fmt.Fprintln(out, "<nothing>")
			return
		}
		fmt.Fprintln(out, value)
	}

	printGet := func(identifier, field string) {
		value, err := db.GetRecordField(identifier, field)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		fmt.Fprintln(out, value)
	}

	fmt.Fprintln(out, "--- Without errors ---")
	addWithoutError(jdoe)
	addWithoutError(jdoe)

	// Признак не говорит, чего именно не хватает: записи или поля.
	printLookup("@jdoe", "mail")
	printLookup("anonymous", "mail")
	printLookup("@jdoe", "email")

	fmt.Fprintln(out, "\n--- With errors ---")
	addWithError(adoe)
	addWithError(adoe)

	printGet("@adoe", "mail")
	printGet("anonymous", "mail")
	printGet("@adoe", "email")
}
