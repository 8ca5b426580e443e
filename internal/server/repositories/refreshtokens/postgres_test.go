package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"timeboard/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\s+\(user_id,\s*token,\s*expires_at\)\s+VALUES\s+\(\$1,\s*\$2,\s*\$3\)\s*$`
	mock.ExpectExec(q).
		WithArgs("u-1", "tok-abc", sqlmock.AnyArg()). // expires_at is computed from time.Now
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), "u-1", "tok-abc", time.Hour); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\b`
	mock.ExpectExec(q).WillReturnError(errors.New("db down"))

	if err := repo.Create(context.Background(), "u-1", "tok-abc", time.Hour); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFind_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	expires := time.Now().Add(24 * time.Hour)
	rows := sqlmock.NewRows([]string{"user_id", "token", "expires_at"}).
		AddRow("u-1", "tok-abc", expires)

	q := `(?s)^SELECT\s+user_id,\s*token,\s*expires_at\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).WithArgs("tok-abc").WillReturnRows(rows)

	got, err := repo.Find(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if got.UserID != "u-1" || got.Token != "tok-abc" || !got.Expires.Equal(expires) {
		t.Fatalf("unexpected token row: %+v", got)
	}
}

func TestFind_RotatedAway(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*token,\s*expires_at\s+FROM\s+refresh_tokens\b`
	mock.ExpectQuery(q).WithArgs("old-token").WillReturnError(sql.ErrNoRows)

	_, err := repo.Find(context.Background(), "old-token")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFind_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+user_id,\s*token,\s*expires_at\s+FROM\s+refresh_tokens\b`
	mock.ExpectQuery(q).WithArgs("tok-abc").WillReturnError(errors.New("db down"))

	if _, err := repo.Find(context.Background(), "tok-abc"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+token\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs("tok-abc").WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "tok-abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_AbsentTokenIsNotAnError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+refresh_tokens\b`
	mock.ExpectExec(q).WithArgs("never-issued").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "never-issued"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestDelete_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+refresh_tokens\b`
	mock.ExpectExec(q).WithArgs("tok-abc").WillReturnError(errors.New("db down"))

	if err := repo.Delete(context.Background(), "tok-abc"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
