package device

import (
	"errors"

	"github.com/ezrec/mcusim/translate"
)

var f = translate.From

var (
	// Uart errors
	ErrTxClosed = errors.New(f("uart tx closed"))
)
