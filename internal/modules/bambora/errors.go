package bambora

import "errors"

var ErrNotConfigured = errors.New("bambora credentials are not configured")
