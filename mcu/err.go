package mcu

import (
	"errors"

	"github.com/ezrec/mcusim/translate"
)

var f = translate.From

var (
	// Core errors
	ErrStackEmpty = errors.New(f("stack empty"))
	ErrFaulted    = errors.New(f("core faulted"))
	ErrHalted     = errors.New(f("core halted"))
)
