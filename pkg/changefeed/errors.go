package changefeed

import "errors"

var ErrClosed = errors.New("changefeed: closed")
