// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/internal/utils"
	"github.com/valyan/clinic-manager/internal/validators"
	"github.com/valyan/clinic-manager/models"
)

type personService struct {
	personRepository store.PersonRepository
	validator        validators.Validator
	ids              *utils.UUIDGenerator
	limits           models.QueryLimits

	logger *logger.Logger
}

func NewPersonService(personRepository store.PersonRepository, limits models.QueryLimits, logger *logger.Logger) PersonService {
	return &personService{
		personRepository: personRepository,
		validator:        validators.NewPersonValidator(),
		ids:              utils.NewUUIDGenerator(),
		limits:           limits,
		logger:           logger,
	}
}

func (s *personService) Create(ctx context.Context, principal models.Principal, person models.Person) (models.Person, error) {
	person = cleanPerson(person)
	if err := s.validator.Validate(ctx, person); err != nil {
		return models.Person{}, validationFailed(err)
	}
	if err := s.checkCNP(ctx, person.CNP, ""); err != nil {
		return models.Person{}, err
	}

	person.ID = s.ids.Generate()
	person.IsActive = true
	person.CreatedBy = auditName(principal)

	created, err := s.personRepository.Create(ctx, person)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "personService.Create").Msg("person creation ended with error")
		return models.Person{}, storeError(err, "person")
	}
	return created, nil
}

func (s *personService) Get(ctx context.Context, id string) (models.Person, error) {
	if !isID(id) {
		return models.Person{}, fmt.Errorf("person: %w", ErrNotFound)
	}

	person, err := s.personRepository.GetByID(ctx, id)
	if err != nil {
		return models.Person{}, storeError(err, "person")
	}
	return person, nil
}

// Update replaces every editable field of the person with id.
func (s *personService) Update(ctx context.Context, principal models.Principal, id string, person models.Person) (models.Person, error) {
	person = cleanPerson(person)
	if err := s.validator.Validate(ctx, person); err != nil {
		return models.Person{}, validationFailed(err)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return models.Person{}, err
	}
	if person.CNP != current.CNP {
		if err = s.checkCNP(ctx, person.CNP, current.ID); err != nil {
			return models.Person{}, err
		}
	}

	person.ID = current.ID
	person.CreatedAt = current.CreatedAt
	person.CreatedBy = current.CreatedBy
	person.UpdatedBy = auditName(principal)

	updated, err := s.personRepository.Update(ctx, person)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "personService.Update").Str("person_id", id).Msg("person update ended with error")
		return models.Person{}, storeError(err, "person")
	}
	return updated, nil
}

func (s *personService) Delete(ctx context.Context, principal models.Principal, id string) error {
	if !isID(id) {
		return fmt.Errorf("person: %w", ErrNotFound)
	}
	if err := s.personRepository.Deactivate(ctx, id, auditName(principal)); err != nil {
		return storeError(err, "person")
	}
	return nil
}

func (s *personService) Query(ctx context.Context, filter models.PersonFilter, query models.SearchQuery) (models.PagedResult[models.Person], error) {
	page, err := normalizeQuery(query, s.limits, models.PersonFields)
	if err != nil {
		return models.PagedResult[models.Person]{}, err
	}
	return runQuery[models.Person, models.PersonFilter](ctx, s.personRepository, filter, page)
}

func (s *personService) checkCNP(ctx context.Context, cnp, excludeID string) error {
	if cnp == "" {
		return nil
	}
	taken, err := s.personRepository.ExistsByCNP(ctx, cnp, excludeID)
	if err != nil {
		return fmt.Errorf("duplicate check failed: %w", err)
	}
	if taken {
		return fmt.Errorf("cnp already registered: %w", ErrDuplicate)
	}
	return nil
}

func cleanPerson(p models.Person) models.Person {
	p.LastName = strings.TrimSpace(p.LastName)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.CNP = strings.TrimSpace(p.CNP)
	p.Sex = strings.ToUpper(strings.TrimSpace(p.Sex))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.County = strings.TrimSpace(p.County)
	p.Locality = strings.TrimSpace(p.Locality)
	p.Address = strings.TrimSpace(p.Address)
	p.DocumentType = strings.TrimSpace(p.DocumentType)
	p.DocumentSeries = strings.ToUpper(strings.TrimSpace(p.DocumentSeries))
	p.DocumentNumber = strings.TrimSpace(p.DocumentNumber)
	return p
}
