package scenario

import (
	"errors"

	"github.com/ezrec/mcusim/translate"
)

var f = translate.From

var (
	// Scenario errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrAssignSyntax    = errors.New(f("assignment syntax"))
)

type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("key %v unknown", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
