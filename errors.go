package miroslava

import "errors"

var (
	// ErrForeignApp is returned by CurrentApp when the execution scope is
	// bound to an application object that is not a miroslava App.
	ErrForeignApp = errors.New("miroslava: scope bound to a foreign app")
)
