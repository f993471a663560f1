package store

import (
	"costmanager/models"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, first_name, last_name, birthday)
    VALUES ($1, $2, $3, $4)
    RETURNING user_pk, id, first_name, last_name, birthday, created_at;`

	findUserByID = `SELECT user_pk, id, first_name, last_name, birthday, created_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT user_pk, id, first_name, last_name, birthday, created_at
    FROM users
    ORDER BY user_pk;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	createCost = `INSERT INTO costs (user_id, description, category, sum, spent_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING cost_pk, user_id, description, category, sum, spent_at, created_at;`

	findCostsByUser = `SELECT cost_pk, user_id, description, category, sum, spent_at, created_at
    FROM costs
    WHERE user_id = $1
    ORDER BY cost_pk;`

	findCachedReport = `SELECT report_pk, user_id, year, month, costs, created_at
    FROM reports
    WHERE user_id = $1 AND year = $2 AND month = $3;`

	insertReport = `INSERT INTO reports (user_id, year, month, costs)
    VALUES ($1, $2, $3, $4)
    RETURNING report_pk, created_at;`

	insertLog = `INSERT INTO logs (logged_at, method, port, path, status, duration_ms, message)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`
)

// defaultLogLimit caps /api/logs listings when no explicit limit is given.
const defaultLogLimit = 100

// buildSelectLogsQuery assembles the filtered log listing with squirrel.
// Zero-valued filter fields contribute no WHERE clause; results always come
// back newest first.
func buildSelectLogsQuery(filter models.LogFilter) (string, []any, error) {
	builder := sq.
		Select("log_pk", "logged_at", "method", "port", "path", "status", "duration_ms", "message").
		From(models.LogRecord{}.TableName()).
		PlaceholderFormat(sq.Dollar)

	if filter.Method != "" {
		builder = builder.Where(sq.Eq{"method": filter.Method})
	}
	if filter.Status != 0 {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLogLimit
	}

	return builder.
		OrderBy("logged_at DESC", "log_pk DESC").
		Limit(uint64(limit)).
		ToSql()
}
