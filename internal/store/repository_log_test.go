package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"costmanager/internal/logger"
	"costmanager/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestLogRepo(t *testing.T) (*logRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &logRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestInsertLog_Success(t *testing.T) {
	repo, mock, db := newTestLogRepo(t)
	defer db.Close()

	rec := models.LogRecord{
		Time:       time.Now(),
		Method:     "GET",
		Port:       8080,
		Path:       "/api/report",
		Status:     200,
		DurationMs: 12,
		Message:    "",
	}

	mock.ExpectExec("INSERT INTO logs").
		WithArgs(rec.Time, rec.Method, rec.Port, rec.Path, rec.Status, rec.DurationMs, rec.Message).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.InsertLog(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInsertLog_ExecError(t *testing.T) {
	repo, mock, db := newTestLogRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO logs").
		WillReturnError(errors.New("db down"))

	err := repo.InsertLog(context.Background(), models.LogRecord{Method: "GET"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestFindLogs_NoFilter(t *testing.T) {
	repo, mock, db := newTestLogRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"log_pk", "logged_at", "method", "port", "path", "status", "duration_ms", "message"}).
		AddRow(2, now, "GET", 8080, "/api/report", 200, 15, "").
		AddRow(1, now.Add(-time.Minute), "POST", 8080, "/api/costs", 201, 7, "")

	mock.ExpectQuery("SELECT (.+) FROM logs").WillReturnRows(rows)

	records, err := repo.FindLogs(context.Background(), models.LogFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Method != "GET" || records[1].Method != "POST" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestFindLogs_WithFilters(t *testing.T) {
	repo, mock, db := newTestLogRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"log_pk", "logged_at", "method", "port", "path", "status", "duration_ms", "message"}).
		AddRow(5, time.Now(), "GET", 8080, "/api/logs", 200, 3, "")

	mock.ExpectQuery("SELECT (.+) FROM logs WHERE").
		WithArgs("GET", 200).
		WillReturnRows(rows)

	records, err := repo.FindLogs(context.Background(), models.LogFilter{Method: "GET", Status: 200, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestFindLogs_QueryError(t *testing.T) {
	repo, mock, db := newTestLogRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM logs").
		WillReturnError(errors.New("db down"))

	_, err := repo.FindLogs(context.Background(), models.LogFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
