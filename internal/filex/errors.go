package filex

import "errors"

var ErrTooLarge = errors.New("file too large")
