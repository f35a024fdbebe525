package database

import "errors"

var (
	ErrIdentifierAlreadyExists = errors.New("the identifier already exists on the database")
	ErrIdentifierNotExists     = errors.New("the identifier not exists on the database")
	ErrFieldNotExists          = errors.New("the field not exists on the record")
)
