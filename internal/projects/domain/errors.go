package domain

import "errors"

var ErrInvalidID = errors.New("invalid project id")
