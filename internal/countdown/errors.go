package countdown

import "errors"

// Sentinel errors returned by the validator and the state machine.
var (
	ErrInvalidInput  = errors.New("value must be an integer between 0 and 59")
	ErrInputLocked   = errors.New("inputs are locked while a countdown is active")
	ErrNotRunning    = errors.New("countdown is not running")
	ErrResetDisabled = errors.New("reset is disabled until a countdown has been started")
)

// Notices shown to the user in a modal surface.
const (
	NoticeInvalid = "Please input legal number(0~59)."
	NoticeTimeUp  = "Time up!!!"
)
