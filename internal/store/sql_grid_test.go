// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyan/clinic-manager/models"
)

func TestGridTables_FieldsMatchPublicWhitelists(t *testing.T) {
	tests := []struct {
		name   string
		table  gridTable
		public models.FieldSet
	}{
		{name: "users", table: userGrid, public: models.UserFields},
		{name: "persons", table: personGrid, public: models.PersonFields},
		{name: "medical staff", table: medicalStaffGrid, public: models.MedicalStaffFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.table.fields, len(tt.public))
			for _, field := range tt.public {
				_, err := tt.table.field(field)
				assert.NoError(t, err, field)
			}
		})
	}
}

func Test_countQuery(t *testing.T) {
	query, args, err := medicalStaffGrid.countQuery(nil)
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM personal_medical pm", query)
	assert.Empty(t, args)

	query, args, err = medicalStaffGrid.countQuery(conditions(equalsFoldCondition("pm.departament", "ATI")))
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE (lower(pm.departament) = lower($1))")
	assert.Equal(t, []any{"ATI"}, args)
}

func Test_listQuery(t *testing.T) {
	tests := []struct {
		name       string
		page       models.PageRequest
		wantOrder  string
		wantLimits string
	}{
		{
			name:       "default order",
			page:       models.PageRequest{Page: 1, PageSize: 20},
			wantOrder:  "ORDER BY pm.nume ASC, pm.prenume ASC, pm.id ASC",
			wantLimits: "LIMIT 20 OFFSET 0",
		},
		{
			name:       "explicit descending sort on page 3",
			page:       models.PageRequest{Page: 3, PageSize: 10, Sort: &models.SortDescriptor{Property: "departament", SortOrder: models.SortDesc}},
			wantOrder:  "ORDER BY pm.departament DESC, pm.id ASC",
			wantLimits: "LIMIT 10 OFFSET 20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := medicalStaffGrid.listQuery(nil, tt.page)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(query, "SELECT pm.id, CAST(pm.persoana_id AS TEXT), pm.nume"))
			assert.Contains(t, query, "FROM personal_medical pm")
			assert.Contains(t, query, tt.wantOrder)
			assert.Contains(t, query, tt.wantLimits)
			assert.Empty(t, args)
		})
	}
}

func Test_listQuery_UnknownSortProperty(t *testing.T) {
	_, _, err := medicalStaffGrid.listQuery(nil, models.PageRequest{
		Page:     1,
		PageSize: 10,
		Sort:     &models.SortDescriptor{Property: "pm.id; DROP TABLE personal_medical"},
	})

	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_groupSummaryQuery(t *testing.T) {
	groups := []models.GroupDescriptor{
		{Property: "departament", SortOrder: models.SortAsc},
		{Property: "pozitie", SortOrder: models.SortDesc},
	}
	where := conditions(boolCondition("pm.este_activ", boolPtr(true)))

	query, args, err := medicalStaffGrid.groupSummaryQuery(where, groups)
	require.NoError(t, err)

	dept := "COALESCE(CAST(pm.departament AS TEXT), '')"
	pos := "COALESCE(CAST(pm.pozitie AS TEXT), '')"

	assert.Contains(t, query, "SELECT "+dept+", "+pos+", COUNT(*), MAX(pm.data_ultimei_modificari)")
	assert.Contains(t, query, "WHERE (pm.este_activ = $1)")
	assert.Contains(t, query, "GROUP BY "+dept+", "+pos)
	assert.Contains(t, query, "ORDER BY "+dept+" ASC, "+pos+" DESC")
	assert.Equal(t, []any{true}, args)
}

func Test_groupSummaryQuery_Errors(t *testing.T) {
	_, _, err := medicalStaffGrid.groupSummaryQuery(nil, nil)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)

	_, _, err = medicalStaffGrid.groupSummaryQuery(nil, []models.GroupDescriptor{{Property: "parola_hash"}})
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
	assert.NotContains(t, err.Error(), "pm.")
}

func Test_groupItemsQuery(t *testing.T) {
	groups := []models.GroupDescriptor{{Property: "departament"}}
	keys := [][]string{{"ATI"}, {"Cardiologie"}}
	where := conditions(equalsFoldCondition("pm.pozitie", "Medic primar"))

	query, args, err := medicalStaffGrid.groupItemsQuery(where, groups, keys, &models.SortDescriptor{Property: "nume"})
	require.NoError(t, err)

	dept := "COALESCE(CAST(pm.departament AS TEXT), '')"
	assert.True(t, strings.HasPrefix(query, "SELECT "+dept+", pm.id"))
	assert.Contains(t, query, "lower(pm.pozitie) = lower($1)")
	assert.Contains(t, query, dept+" = $2")
	assert.Contains(t, query, dept+" = $3")
	assert.Contains(t, query, "ORDER BY "+dept+" ASC, pm.nume ASC, pm.id ASC")
	assert.Equal(t, []any{"Medic primar", "ATI", "Cardiologie"}, args)
}

func Test_groupItemsQuery_KeyArityMismatch(t *testing.T) {
	groups := []models.GroupDescriptor{{Property: "departament"}, {Property: "pozitie"}}

	_, _, err := medicalStaffGrid.groupItemsQuery(nil, groups, [][]string{{"ATI"}}, nil)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_searchCondition(t *testing.T) {
	assert.Nil(t, searchCondition("   ", "p.nume"))

	cond := searchCondition("  Ștefan  POP ", "p.nume", "p.prenume")
	require.NotNil(t, cond)

	query, args, err := cond.ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"((lower(unaccent(p.nume)) LIKE ? OR lower(unaccent(p.prenume)) LIKE ?) AND "+
			"(lower(unaccent(p.nume)) LIKE ? OR lower(unaccent(p.prenume)) LIKE ?))",
		query)
	assert.Equal(t, []any{"%stefan%", "%stefan%", "%pop%", "%pop%"}, args)
}

func Test_likePattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
}

func Test_medicalStaffFilterConditions(t *testing.T) {
	assert.Empty(t, medicalStaffFilterConditions(models.MedicalStaffFilter{}))

	full := models.MedicalStaffFilter{
		Search:        "pop",
		Department:    "ATI",
		Position:      "Asistent",
		IsActive:      boolPtr(false),
		LastName:      "Pop",
		FirstName:     "Ana",
		Specialty:     "Anestezie",
		LicenseNumber: "L-1",
		Phone:         "07",
		Email:         "@clinica",
	}
	assert.Len(t, medicalStaffFilterConditions(full), 10)

	query, _, err := psql.Select("1").From("personal_medical pm").Where(medicalStaffFilterConditions(full)).ToSql()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(query, "WHERE"))
	assert.Contains(t, query, "pm.este_activ = $")
}

func Test_conditions_SkipsNil(t *testing.T) {
	got := conditions(nil, sq.Eq{"a": 1}, nil)
	assert.Len(t, got, 1)
}

func boolPtr(b bool) *bool {
	return &b
}
