package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/project-manager/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "employee not found",
			err:        fmt.Errorf("delete employee: %w", errs.NewEmployeeNotFound(999)),
			wantStatus: http.StatusNotFound,
			wantCode:   "EMPLOYEE_NOT_FOUND",
		},
		{
			name:       "project not found",
			err:        errs.NewProjectNotFound(42),
			wantStatus: http.StatusNotFound,
			wantCode:   "PROJECT_NOT_FOUND",
		},
		{
			name: "foreign key violation",
			err: &pgconn.PgError{
				Code:       "23503",
				Severity:   "ERROR",
				TableName:  "tasks",
				ColumnName: "employee_id",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "TASK_NOT_FOUND",
		},
		{
			name: "unique violation",
			err: &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				TableName:      "projects",
				ConstraintName: "projects_name_key",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PROJECT_ALREADY_EXISTS",
		},
		{
			name: "not null violation",
			err: &pgconn.PgError{
				Code:       "23502",
				Severity:   "ERROR",
				TableName:  "employees",
				ColumnName: "name",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "EMPLOYEE_REQUIRED",
		},
		{
			name:       "unmapped pg error",
			err:        &pgconn.PgError{Code: "40P01", Severity: "ERROR"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "no rows",
			err:        fmt.Errorf("get task: %w", pgx.ErrNoRows),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			if !errors.As(HandleError(tt.err), &httpErr) {
				t.Fatalf("HandleError(%v) did not return *errs.HTTPError", tt.err)
			}
			if httpErr.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", httpErr.Status, tt.wantStatus)
			}
			if httpErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", httpErr.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	in := errs.NewForbiddenError("nope", false)
	if out := HandleError(in); out != in {
		t.Errorf("HandleError returned %v, want the same *HTTPError", out)
	}
}

func TestUniqueViolationMessageUsesColumn(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "projects",
		ConstraintName: "projects_name_key",
	})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if want := "A Project with this Name already exists"; httpErr.Message != want {
		t.Errorf("Message = %q, want %q", httpErr.Message, want)
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23503"})
	if got := ErrCode(fmt.Errorf("wrap: %w", converted)); got != ForeignKeyViolation {
		t.Errorf("ErrCode = %q, want %q", got, ForeignKeyViolation)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("ErrCode = %q, want %q", got, Other)
	}
}

func TestMapSeverityDefaultsToError(t *testing.T) {
	if got := MapSeverity("SOMETHING"); got != SeverityError {
		t.Errorf("MapSeverity = %q, want %q", got, SeverityError)
	}
	if got := MapSeverity("FATAL"); got != SeverityFatal {
		t.Errorf("MapSeverity = %q, want %q", got, SeverityFatal)
	}
}
