// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose talks to the database on its own; every statement fails
	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations_Layout(t *testing.T) {
	names, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		content, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err, name)

		body := string(content)
		assert.True(t, strings.Contains(body, "-- +goose Up"), "%s has no Up section", name)
		assert.True(t, strings.Contains(body, "-- +goose Down"), "%s has no Down section", name)
	}
}

func TestEmbeddedMigrations_UniqueIndexes(t *testing.T) {
	var all strings.Builder
	names, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	for _, name := range names {
		content, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)
		all.Write(content)
	}

	schema := all.String()
	for _, index := range []string{
		"ux_utilizatori_nume_utilizator",
		"ux_utilizatori_email",
		"ux_persoane_cnp",
		"ux_personal_medical_numar_licenta",
		"CREATE UNIQUE INDEX IF NOT EXISTS ux_utilizatori_persoana_id",
	} {
		assert.Contains(t, schema, index)
	}
	assert.NotContains(t, schema, "ix_utilizatori_persoana_id")
}
