package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vedicas-garden/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING id, login, password_hash, created_at;`

	findUserByLogin = `SELECT id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	// upsertReturning reports the row id and whether the row was freshly
	// inserted: xmax is zero only for tuples never updated.
	upsertReturning = `RETURNING id, (xmax = 0) AS inserted`

	clearMessages = `DELETE FROM messages WHERE owner_id = $1;`
)

var (
	profileColumns = []string{
		"id", "owner_id", "name", "gender", "profession", "relationship_status",
		"birth_place", "birth_data", "chart_data", "dasha_data", "updated_at",
	}
	seedColumns = []string{
		"id", "owner_id", "client_side_id", "title", "category", "description",
		"difficulty", "guru_id", "streak", "last_completed", "completed_dates",
		"active", "created_at", "updated_at",
	}
	wisdomColumns = []string{
		"id", "owner_id", "client_side_id", "title", "category", "content",
		"guru_id", "favorite", "source", "tags", "created_at", "updated_at",
	}
	messageColumns = []string{
		"id", "owner_id", "client_side_id", "guru_id", "role", "content", "ts",
	}
	checkinColumns = []string{
		"id", "owner_id", "client_side_id", "date", "mood", "energy", "focus",
		"gratitude", "notes", "created_at", "updated_at",
	}
)

// jsonColumn encodes v for a JSONB column. nil slices become "[]".
func jsonColumn[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

// rawColumn passes opaque JSON through, NULL when empty.
func rawColumn(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func buildSelectProfileQuery(ownerID int64) (string, []any, error) {
	return psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildUpsertProfileQuery(ownerID int64, p models.Profile) (string, []any, error) {
	var birth any
	if !p.BirthData.IsZero() {
		b, err := json.Marshal(p.BirthData)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		birth = string(b)
	}

	return psql.Insert("profiles").
		Columns("owner_id", "name", "gender", "profession", "relationship_status",
			"birth_place", "birth_data", "chart_data", "dasha_data").
		Values(ownerID, p.Name, p.Gender, p.Profession, p.RelationshipStatus,
			p.BirthPlace, birth, rawColumn(p.ChartData), rawColumn(p.DashaData)).
		Suffix(`ON CONFLICT (owner_id) DO UPDATE SET
			name = COALESCE(NULLIF(EXCLUDED.name, ''), profiles.name),
			gender = COALESCE(NULLIF(EXCLUDED.gender, ''), profiles.gender),
			profession = COALESCE(NULLIF(EXCLUDED.profession, ''), profiles.profession),
			relationship_status = COALESCE(NULLIF(EXCLUDED.relationship_status, ''), profiles.relationship_status),
			birth_place = COALESCE(NULLIF(EXCLUDED.birth_place, ''), profiles.birth_place),
			birth_data = COALESCE(EXCLUDED.birth_data, profiles.birth_data),
			chart_data = COALESCE(EXCLUDED.chart_data, profiles.chart_data),
			dasha_data = COALESCE(EXCLUDED.dasha_data, profiles.dasha_data),
			updated_at = now() ` + upsertReturning).
		ToSql()
}

func buildListQuery(table string, columns []string, ownerID int64) (string, []any, error) {
	return psql.Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
}

func buildDeleteByClientIDQuery(table string, ownerID int64, clientSideID string) (string, []any, error) {
	return psql.Delete(table).
		Where(sq.And{
			sq.Eq{"owner_id": ownerID},
			sq.Eq{"client_side_id": clientSideID},
		}).
		ToSql()
}

func buildUpsertSeedQuery(ownerID int64, s models.Seed) (string, []any, error) {
	dates, err := jsonColumn(s.CompletedDates)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert("seeds").
		Columns("owner_id", "client_side_id", "title", "category", "description",
			"difficulty", "guru_id", "streak", "last_completed", "completed_dates", "active").
		Values(ownerID, s.ClientSideID, s.Title, s.Category, s.Description,
			string(s.Difficulty), s.GuruID, s.Streak, s.LastCompleted, dates, s.Active).
		Suffix(`ON CONFLICT (owner_id, client_side_id) DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			difficulty = EXCLUDED.difficulty,
			guru_id = EXCLUDED.guru_id,
			streak = EXCLUDED.streak,
			last_completed = EXCLUDED.last_completed,
			completed_dates = EXCLUDED.completed_dates,
			active = EXCLUDED.active,
			updated_at = now() ` + upsertReturning).
		ToSql()
}

func buildUpsertWisdomQuery(ownerID int64, w models.WisdomNote) (string, []any, error) {
	tags, err := jsonColumn(w.Tags)
	if err != nil {
		return "", nil, err
	}

	return psql.Insert("wisdom").
		Columns("owner_id", "client_side_id", "title", "category", "content",
			"guru_id", "favorite", "source", "tags").
		Values(ownerID, w.ClientSideID, w.Title, w.Category, w.Content,
			w.GuruID, w.Favorite, w.Source, tags).
		Suffix(`ON CONFLICT (owner_id, client_side_id) DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			content = EXCLUDED.content,
			guru_id = EXCLUDED.guru_id,
			favorite = EXCLUDED.favorite,
			source = EXCLUDED.source,
			tags = EXCLUDED.tags,
			updated_at = now() ` + upsertReturning).
		ToSql()
}

// buildInsertMessageQuery returns no row when the client id already exists.
func buildInsertMessageQuery(ownerID int64, m models.Message) (string, []any, error) {
	return psql.Insert("messages").
		Columns("owner_id", "client_side_id", "guru_id", "role", "content", "ts").
		Values(ownerID, m.ClientSideID, m.GuruID, string(m.Role), m.Content, m.Timestamp).
		Suffix(`ON CONFLICT (owner_id, client_side_id) DO NOTHING RETURNING id`).
		ToSql()
}

func buildListMessagesQuery(ownerID int64, guruID string) (string, []any, error) {
	q := psql.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"owner_id": ownerID})
	if guruID != "" {
		q = q.Where(sq.Eq{"guru_id": guruID})
	}
	return q.OrderBy("ts", "id").ToSql()
}

func buildUpsertCheckinQuery(ownerID int64, c models.Checkin) (string, []any, error) {
	return psql.Insert("checkins").
		Columns("owner_id", "client_side_id", "date", "mood", "energy", "focus", "gratitude", "notes").
		Values(ownerID, c.ClientSideID, c.Date, c.Mood, c.Energy, c.Focus, c.Gratitude, c.Notes).
		Suffix(`ON CONFLICT (owner_id, client_side_id) DO UPDATE SET
			date = EXCLUDED.date,
			mood = EXCLUDED.mood,
			energy = EXCLUDED.energy,
			focus = EXCLUDED.focus,
			gratitude = EXCLUDED.gratitude,
			notes = EXCLUDED.notes,
			updated_at = now() ` + upsertReturning).
		ToSql()
}
