// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/models"
)

var personRowColumns = []string{
	"id", "nume", "prenume", "cnp", "data_nasterii", "sex", "telefon", "email",
	"judet", "localitate", "adresa", "tip_act_identitate", "serie_act", "numar_act",
	"este_activ", "data_creare", "data_ultimei_modificari", "creat_de", "modificat_de",
}

func newTestPersonRepo(t *testing.T) (PersonRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewPersonRepository(db, logger.Nop()), mock
}

func TestPersonRepository_Create_Success(t *testing.T) {
	repo, mock := newTestPersonRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO persoane")).
		WithArgs("p-1", "Popescu", "Ion", "1900101123456", nil, "M", "0722", "ion@clinica.ro",
			"Cluj", "Cluj-Napoca", "Str. Lunga 1", "CI", "CJ", "123456", true, "admin").
		WillReturnRows(sqlmock.NewRows([]string{"data_creare", "data_ultimei_modificari"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), models.Person{
		ID:             "p-1",
		LastName:       "Popescu",
		FirstName:      "Ion",
		CNP:            "1900101123456",
		Sex:            "M",
		Phone:          "0722",
		Email:          "ion@clinica.ro",
		County:         "Cluj",
		Locality:       "Cluj-Napoca",
		Address:        "Str. Lunga 1",
		DocumentType:   "CI",
		DocumentSeries: "CJ",
		DocumentNumber: "123456",
		IsActive:       true,
		CreatedBy:      "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
	assert.Equal(t, "admin", created.UpdatedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_Create_DuplicateCNP(t *testing.T) {
	repo, mock := newTestPersonRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO persoane")).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Person{ID: "p-1"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestPersonRepository_GetByID(t *testing.T) {
	repo, mock := newTestPersonRepo(t)
	born := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM persoane p WHERE p.id = $1")).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows(personRowColumns).AddRow(
			"p-1", "Popescu", "Ion", "1900101123456", born, "M", "", "",
			"Cluj", "Cluj-Napoca", "", "", "", "", true, created, created, "admin", "admin",
		))

	person, err := repo.GetByID(context.Background(), "p-1")
	require.NoError(t, err)

	assert.Equal(t, "Popescu", person.LastName)
	require.NotNil(t, person.BirthDate)
	assert.True(t, born.Equal(*person.BirthDate))
	assert.True(t, person.IsActive)
}

func TestPersonRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestPersonRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM persoane p")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(personRowColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPersonRepository_ExistsByCNP(t *testing.T) {
	repo, mock := newTestPersonRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("1900101123456", "p-2").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByCNP(context.Background(), "1900101123456", "p-2")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPersonRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestPersonRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE persoane")).
		WillReturnRows(sqlmock.NewRows([]string{"data_ultimei_modificari"}))

	_, err := repo.Update(context.Background(), models.Person{ID: "missing"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPersonRepository_Deactivate(t *testing.T) {
	tests := []struct {
		name    string
		result  func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "one row",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE persoane")).
					WithArgs("p-1", "admin").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no rows",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE persoane")).
					WithArgs("p-1", "admin").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "driver error",
			result: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("UPDATE persoane")).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPersonRepo(t)
			tt.result(mock)

			err := repo.Deactivate(context.Background(), "p-1", "admin")
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPersonRepository_Count_WithFilter(t *testing.T) {
	repo, mock := newTestPersonRepo(t)
	active := true

	mock.ExpectQuery(regexp.QuoteMeta("lower(p.judet) = lower($1)")).
		WithArgs("Cluj", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	total, err := repo.Count(context.Background(), models.PersonFilter{County: "Cluj", IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.NoError(t, mock.ExpectationsWereMet())
}
