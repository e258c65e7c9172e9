// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Fixed statements. Dynamic grid statements are built with squirrel in
// sql_grid.go from the per-table column lists declared next to each
// repository.
const (
	createUser = `INSERT INTO utilizatori (
			id,
			persoana_id,
			nume_utilizator,
			email,
			parola_hash,
			rol,
			este_activ,
			creat_de,
			modificat_de
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING data_creare, data_ultimei_modificari;`

	existsUserByUsernameOrEmail = `SELECT EXISTS (
			SELECT 1 FROM utilizatori
			WHERE (lower(nume_utilizator) = lower($1) OR lower(email) = lower($2))
			  AND CAST(id AS TEXT) <> $3
		);`

	updateUser = `UPDATE utilizatori
		SET email = $2,
			rol = $3,
			este_activ = $4,
			modificat_de = $5,
			data_ultimei_modificari = NOW()
		WHERE id = $1
		RETURNING data_ultimei_modificari;`

	updateUserPasswordHash = `UPDATE utilizatori
		SET parola_hash = $2, data_ultimei_modificari = NOW()
		WHERE id = $1;`

	touchUserLastLogin = `UPDATE utilizatori
		SET data_ultimei_autentificari = $2
		WHERE id = $1;`

	deactivateUser = `UPDATE utilizatori
		SET este_activ = FALSE, modificat_de = $2, data_ultimei_modificari = NOW()
		WHERE id = $1;`
)

const (
	createPerson = `INSERT INTO persoane (
			id, nume, prenume, cnp, data_nasterii, sex, telefon, email,
			judet, localitate, adresa, tip_act_identitate, serie_act, numar_act,
			este_activ, creat_de, modificat_de
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)
		RETURNING data_creare, data_ultimei_modificari;`

	existsPersonByCNP = `SELECT EXISTS (
			SELECT 1 FROM persoane
			WHERE cnp = $1 AND CAST(id AS TEXT) <> $2
		);`

	updatePerson = `UPDATE persoane
		SET nume = $2,
			prenume = $3,
			cnp = $4,
			data_nasterii = $5,
			sex = $6,
			telefon = $7,
			email = $8,
			judet = $9,
			localitate = $10,
			adresa = $11,
			tip_act_identitate = $12,
			serie_act = $13,
			numar_act = $14,
			este_activ = $15,
			modificat_de = $16,
			data_ultimei_modificari = NOW()
		WHERE id = $1
		RETURNING data_ultimei_modificari;`

	deactivatePerson = `UPDATE persoane
		SET este_activ = FALSE, modificat_de = $2, data_ultimei_modificari = NOW()
		WHERE id = $1;`
)

const (
	createMedicalStaff = `INSERT INTO personal_medical (
			id, persoana_id, nume, prenume, specializare, numar_licenta, telefon,
			email, departament, pozitie, este_activ, creat_de, modificat_de
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
		RETURNING data_creare, data_ultimei_modificari;`

	existsMedicalStaffByLicenseNumber = `SELECT EXISTS (
			SELECT 1 FROM personal_medical
			WHERE lower(numar_licenta) = lower($1) AND CAST(id AS TEXT) <> $2
		);`

	updateMedicalStaff = `UPDATE personal_medical
		SET persoana_id = $2,
			nume = $3,
			prenume = $4,
			specializare = $5,
			numar_licenta = $6,
			telefon = $7,
			email = $8,
			departament = $9,
			pozitie = $10,
			este_activ = $11,
			modificat_de = $12,
			data_ultimei_modificari = NOW()
		WHERE id = $1
		RETURNING data_ultimei_modificari;`

	deactivateMedicalStaff = `UPDATE personal_medical
		SET este_activ = FALSE, modificat_de = $2, data_ultimei_modificari = NOW()
		WHERE id = $1;`
)

const (
	listCounties = `SELECT id, cod, nume FROM judete ORDER BY nume;`

	listLocalities = `SELECT id, judet_id, nume, tip FROM localitati ORDER BY nume, id;`

	listLocalitiesByCountyName = `SELECT l.id, l.judet_id, l.nume, l.tip
		FROM localitati l
		JOIN judete j ON j.id = l.judet_id
		WHERE lower(unaccent(j.nume)) = lower(unaccent($1))
		ORDER BY l.nume, l.id;`

	listLocalitiesByCountyID = `SELECT id, judet_id, nume, tip
		FROM localitati
		WHERE judet_id = $1
		ORDER BY nume, id;`

	listCountiesWithLocalities = `SELECT j.id, j.cod, j.nume, l.id, l.nume, l.tip
		FROM judete j
		LEFT JOIN localitati l ON l.judet_id = j.id
		ORDER BY j.nume, j.id, l.nume, l.id;`
)
