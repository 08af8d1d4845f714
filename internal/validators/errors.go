package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidClientSideID = errors.New("invalid client side id")
	ErrEmptyTitle          = errors.New("title is required")
	ErrEmptyContent        = errors.New("content is required")
	ErrInvalidDifficulty   = errors.New("invalid difficulty")
	ErrInvalidDate         = errors.New("invalid date, want YYYY-MM-DD")
	ErrDuplicateDate       = errors.New("duplicate completed date")
	ErrNegativeStreak      = errors.New("streak cannot be negative")
	ErrInvalidRole         = errors.New("invalid message role")
	ErrEmptyGuruID         = errors.New("guru id is required")
	ErrInvalidTimestamp    = errors.New("invalid message timestamp")
	ErrInvalidScore        = errors.New("score must be between 1 and 10")
	ErrInvalidBirthData    = errors.New("invalid birth data")
	ErrInvalidChartData    = errors.New("chart data must be a JSON object")
	ErrDuplicateClientID   = errors.New("duplicate client side id in batch")
	ErrEmptyLogin          = errors.New("login is required")
	ErrEmptyPassword       = errors.New("password is required")
)
