package gcalendar

import "errors"

var (
	ErrUnsupportedCredentials = errors.New("gcalendar: unsupported credentials format")
	ErrMissingToken           = errors.New("gcalendar: OAuth desktop credentials need a saved token")
)
