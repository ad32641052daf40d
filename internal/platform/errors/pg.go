package errors

// Postgres helpers: mapping pgx errors to ErrorCode, pulling field names
// out of constraint metadata, and retry classification

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes this package classifies
const (
	sqlstateUniqueViolation = "23505"
	sqlstateForeignKey      = "23503"
	sqlstateNotNull         = "23502"
	sqlstateCheckViolation  = "23514"
	sqlstateStringTooLong   = "22001"
	sqlstateBadTextRep      = "22P02"

	sqlstateSerializationFailure = "40001"
	sqlstateDeadlock             = "40P01"
	sqlstateLockUnavailable      = "55P03"
	sqlstateReadOnlyTxn          = "25006"
	sqlstateStartingUp           = "57P03" // server still starting up
)

var codeBySQLState = map[string]ErrorCode{
	sqlstateUniqueViolation: ErrorCodeDuplicateKey,

	// the input referenced a row that does not exist
	sqlstateForeignKey: ErrorCodeInvalidArgument,

	sqlstateNotNull:        ErrorCodeValidation,
	sqlstateCheckViolation: ErrorCodeValidation,
	sqlstateStringTooLong:  ErrorCodeInvalidArgument,
	sqlstateBadTextRep:     ErrorCodeInvalidArgument,

	// server-side contention, retryable
	sqlstateSerializationFailure: ErrorCodeDB,
	sqlstateDeadlock:             ErrorCodeDB,
	sqlstateLockUnavailable:      ErrorCodeDB,

	sqlstateReadOnlyTxn: ErrorCodeUnavailable,
	sqlstateStartingUp:  ErrorCodeUnavailable,
}

// ExtractPgError returns (*pgconn.PgError, true) when the root cause is a PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// Predicates for the constraint classes repos care about

// IsDuplicateKey matches unique constraint failures
func IsDuplicateKey(err error) bool { return IsSQLState(err, sqlstateUniqueViolation) }

// IsForeignKeyViolation reports whether the error is a foreign key violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, sqlstateForeignKey) }

// IsCheckViolation matches check constraint failures
func IsCheckViolation(err error) bool { return IsSQLState(err, sqlstateCheckViolation) }

// IsSerializationFailure matches serializable-isolation aborts
func IsSerializationFailure(err error) bool { return IsSQLState(err, sqlstateSerializationFailure) }

// IsDeadlock reports whether the error is a detected deadlock
func IsDeadlock(err error) bool { return IsSQLState(err, sqlstateDeadlock) }

// IsLockNotAvailable reports whether a lock could not be taken
func IsLockNotAvailable(err error) bool { return IsSQLState(err, sqlstateLockUnavailable) }

// DBErrorCode maps a Postgres error onto an ErrorCode.
// !ok means err was not a PgError and the caller should handle it generically
func DBErrorCode(err error) (ErrorCode, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return ErrorCodeUnknown, false
	}
	if code, ok := codeBySQLState[pgErr.Code]; ok {
		return code, true
	}
	return ErrorCodeDB, true
}

// FromPostgres wraps a pg error with its mapped ErrorCode and message.
// nil passes through
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// AttachFieldFromPg enriches err with a field name derived from PgError
// metadata. ColumnName wins; otherwise the last token of the constraint
// name (idx_leads_phone -> phone). Returns err unchanged when nothing
// can be inferred
func AttachFieldFromPg(err error) error {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	if c := strings.TrimSpace(pgErr.ConstraintName); c != "" {
		// lead_assignments_operator_id_fkey yields "fkey", which is useless,
		// hence the ColumnName preference above
		tok := c
		if i := strings.LastIndex(c, "_"); i >= 0 && i+1 < len(c) {
			tok = c[i+1:]
		}
		if tok != "" && tok != "key" {
			return WithField(err, tok)
		}
	}
	return err
}

// FromPostgresWithField wraps like FromPostgres, then tries to attach a
// field name from the PgError metadata
func FromPostgresWithField(err error, msg string) error {
	return AttachFieldFromPg(FromPostgres(err, msg))
}

// text patterns pgx and the server emit without a structured PgError
var retryableText = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"serialization failure",
	"canceling statement due to statement timeout",
	"canceling statement due to lock timeout",
	"could not obtain lock on row",
	"terminating connection due to administrator command",
}

// IsRetryable reports whether a database error is transient. It checks
// structured SQLSTATE codes first, then the generic pgx commit/lock text
// that arrives without a PgError
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// local cancellations and timeouts are the caller's decision, not ours
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	root := Root(err)

	var pgErr *pgconn.PgError
	if stderrs.As(root, &pgErr) {
		switch pgErr.Code {
		case sqlstateSerializationFailure, sqlstateDeadlock, sqlstateLockUnavailable:
			return true
		}
		return false
	}

	s := strings.ToLower(root.Error())
	for _, pat := range retryableText {
		if strings.Contains(s, pat) {
			return true
		}
	}
	return false
}
