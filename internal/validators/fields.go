package validators

// Field names accepted by [Validator.Validate] to restrict validation to a
// subset of a document.
const (
	FieldClientSideID   = "client_side_id"
	FieldTitle          = "title"
	FieldContent        = "content"
	FieldDifficulty     = "difficulty"
	FieldStreak         = "streak"
	FieldLastCompleted  = "last_completed"
	FieldCompletedDates = "completed_dates"
	FieldRole           = "role"
	FieldGuruID         = "guru_id"
	FieldTimestamp      = "timestamp"
	FieldDate           = "date"
	FieldScores         = "scores"
	FieldBirthData      = "birth_data"
	FieldChartData      = "chart_data"
	FieldLogin          = "login"
	FieldPassword       = "password"
)

var (
	seedFields    = []string{FieldClientSideID, FieldTitle, FieldDifficulty, FieldStreak, FieldLastCompleted, FieldCompletedDates}
	wisdomFields  = []string{FieldClientSideID, FieldContent}
	messageFields = []string{FieldClientSideID, FieldGuruID, FieldRole, FieldTimestamp}
	checkinFields = []string{FieldClientSideID, FieldDate, FieldScores}
	profileFields = []string{FieldBirthData, FieldChartData}
	userFields    = []string{FieldLogin, FieldPassword}
)

// MinScore and MaxScore bound the optional check-in ratings.
const (
	MinScore = 1
	MaxScore = 10
)
