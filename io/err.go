package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
)
