package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsDuplicateKeyError(t *testing.T) {
	uniqErr := &pgconn.PgError{Code: "23505", ConstraintName: "uniq_scheduled_slot"}

	if !isDuplicateKeyError(uniqErr, "uniq_scheduled_slot") {
		t.Error("expected unique violation on uniq_scheduled_slot to match")
	}
	if !isDuplicateKeyError(fmt.Errorf("insert failed: %w", uniqErr), "uniq_scheduled_slot") {
		t.Error("expected wrapped unique violation to match")
	}
	if isDuplicateKeyError(uniqErr, "email") {
		t.Error("expected mismatched constraint name to not match")
	}
	if isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "uniq_scheduled_slot"}, "uniq_scheduled_slot") {
		t.Error("expected foreign key violation to not match as duplicate")
	}
	if isDuplicateKeyError(errors.New("plain error"), "email") {
		t.Error("expected non-pg error to not match")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "appointments_patient_id_fkey"}

	if !isForeignKeyError(fkErr, "patient") {
		t.Error("expected foreign key violation on patient to match")
	}
	if isForeignKeyError(fkErr, "doctor") {
		t.Error("expected mismatched constraint name to not match")
	}
	if isForeignKeyError(&pgconn.PgError{Code: "23505", ConstraintName: "appointments_patient_id_fkey"}, "patient") {
		t.Error("expected unique violation to not match as foreign key")
	}
}
