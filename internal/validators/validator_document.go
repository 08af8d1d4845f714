package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vedicas-garden/models"
)

// DocumentValidator validates the documents of the remote store.
type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Seed:
		return v.validateSeed(value, fields...)
	case *models.Seed:
		return v.validateSeed(*value, fields...)
	case []models.Seed:
		return validateBatch(value, func(s models.Seed) string { return s.ClientSideID }, func(s models.Seed) error {
			return v.validateSeed(s, fields...)
		})

	case models.WisdomNote:
		return v.validateWisdom(value, fields...)
	case *models.WisdomNote:
		return v.validateWisdom(*value, fields...)
	case []models.WisdomNote:
		return validateBatch(value, func(w models.WisdomNote) string { return w.ClientSideID }, func(w models.WisdomNote) error {
			return v.validateWisdom(w, fields...)
		})

	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)
	case []models.Message:
		return validateBatch(value, func(m models.Message) string { return m.ClientSideID }, func(m models.Message) error {
			return v.validateMessage(m, fields...)
		})

	case models.Checkin:
		return v.validateCheckin(value, fields...)
	case *models.Checkin:
		return v.validateCheckin(*value, fields...)
	case []models.Checkin:
		return validateBatch(value, func(c models.Checkin) string { return c.ClientSideID }, func(c models.Checkin) error {
			return v.validateCheckin(c, fields...)
		})

	case models.Profile:
		return v.validateProfile(value, fields...)
	case *models.Profile:
		return v.validateProfile(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateBatch checks every item and rejects repeated client ids, which
// would make a batch upsert touch the same row twice.
func validateBatch[T any](items []T, id func(T) string, check func(T) error) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := check(item); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
		key := id(item)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("validation error at index %d: %w: %s", i, ErrDuplicateClientID, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (v *DocumentValidator) validateSeed(s models.Seed, fields ...string) error {
	if len(fields) == 0 {
		fields = seedFields
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if strings.TrimSpace(s.ClientSideID) == "" {
				return ErrInvalidClientSideID
			}
		case FieldTitle:
			if strings.TrimSpace(s.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDifficulty:
			if s.Difficulty != "" && !s.Difficulty.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidDifficulty, s.Difficulty)
			}
		case FieldStreak:
			if s.Streak < 0 {
				return ErrNegativeStreak
			}
		case FieldLastCompleted:
			if s.LastCompleted != nil && !isDate(*s.LastCompleted) {
				return fmt.Errorf("%w: last_completed %q", ErrInvalidDate, *s.LastCompleted)
			}
		case FieldCompletedDates:
			seen := make(map[string]struct{}, len(s.CompletedDates))
			for _, d := range s.CompletedDates {
				if !isDate(d) {
					return fmt.Errorf("%w: %q", ErrInvalidDate, d)
				}
				if _, dup := seen[d]; dup {
					return fmt.Errorf("%w: %s", ErrDuplicateDate, d)
				}
				seen[d] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateWisdom(w models.WisdomNote, fields ...string) error {
	if len(fields) == 0 {
		fields = wisdomFields
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if strings.TrimSpace(w.ClientSideID) == "" {
				return ErrInvalidClientSideID
			}
		case FieldContent:
			if strings.TrimSpace(w.Content) == "" && strings.TrimSpace(w.Title) == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateMessage(m models.Message, fields ...string) error {
	if len(fields) == 0 {
		fields = messageFields
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if strings.TrimSpace(m.ClientSideID) == "" {
				return ErrInvalidClientSideID
			}
		case FieldGuruID:
			if strings.TrimSpace(m.GuruID) == "" {
				return ErrEmptyGuruID
			}
		case FieldRole:
			if !m.Role.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRole, m.Role)
			}
		case FieldTimestamp:
			if m.Timestamp < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateCheckin(c models.Checkin, fields ...string) error {
	if len(fields) == 0 {
		fields = checkinFields
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if strings.TrimSpace(c.ClientSideID) == "" {
				return ErrInvalidClientSideID
			}
		case FieldDate:
			if !isDate(c.Date) {
				return fmt.Errorf("%w: %q", ErrInvalidDate, c.Date)
			}
		case FieldScores:
			for name, score := range map[string]*int{"mood": c.Mood, "energy": c.Energy, "focus": c.Focus} {
				if score != nil && (*score < MinScore || *score > MaxScore) {
					return fmt.Errorf("%w: %s=%d", ErrInvalidScore, name, *score)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateProfile(p models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = profileFields
	}

	for _, f := range fields {
		switch f {
		case FieldBirthData:
			if p.BirthData.IsZero() {
				continue
			}
			if _, err := p.BirthData.ToChartParams(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidBirthData, err)
			}
		case FieldChartData:
			for _, raw := range []json.RawMessage{p.ChartData, p.DashaData} {
				if len(raw) > 0 && !isJSONObject(raw) {
					return ErrInvalidChartData
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateUser(u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = userFields
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(u.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if u.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
