package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"rental-admin-api/internal/pkg/clock"
	"rental-admin-api/internal/pkg/errs"
	"rental-admin-api/internal/usecase/readmodel"
)

// Same shape the public contact form has always been validated against.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactStore interface {
	ListAll(ctx context.Context) ([]readmodel.Contact, error)
	Add(ctx context.Context, contact readmodel.Contact) (string, error)
}

type SubmitContactParams struct {
	Firstname string
	Lastname  string
	Country   string
	Phone     string
	Email     string
	Message   string
}

type ContactUseCase interface {
	List(ctx context.Context) ([]readmodel.Contact, error)
	Submit(ctx context.Context, params SubmitContactParams) (string, error)
}

type contactUseCaseImpl struct {
	contacts ContactStore
	clock    clock.Clock
}

func NewContactUseCase(contacts ContactStore, clock clock.Clock) ContactUseCase {
	return &contactUseCaseImpl{
		contacts: contacts,
		clock:    clock,
	}
}

func (u *contactUseCaseImpl) List(ctx context.Context) ([]readmodel.Contact, error) {
	list, err := u.contacts.ListAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})
	return list, nil
}

func (u *contactUseCaseImpl) Submit(ctx context.Context, params SubmitContactParams) (string, error) {
	firstname := strings.TrimSpace(params.Firstname)
	lastname := strings.TrimSpace(params.Lastname)
	email := strings.TrimSpace(params.Email)
	message := strings.TrimSpace(params.Message)

	if err := requireField(firstname, "firstname"); err != nil {
		return "", err
	}
	if err := requireField(lastname, "lastname"); err != nil {
		return "", err
	}
	if err := requireField(email, "email"); err != nil {
		return "", err
	}
	if !emailPattern.MatchString(email) {
		return "", errs.Mark(errs.New("invalid email format"), ErrValidation)
	}
	if err := requireField(message, "message"); err != nil {
		return "", err
	}

	contact := readmodel.Contact{
		Firstname: firstname,
		Lastname:  lastname,
		Country:   optionalField(params.Country),
		Phone:     optionalField(params.Phone),
		Email:     email,
		Message:   message,
		CreatedAt: u.clock.Now().UTC().Format(time.RFC3339),
	}

	id, err := u.contacts.Add(ctx, contact)
	if err != nil {
		return "", errs.Mark(err, ErrStoreFailure)
	}
	return id, nil
}

func requireField(value, name string) error {
	if value == "" {
		return errs.Mark(fmt.Errorf("%s is required", name), ErrValidation)
	}
	return nil
}

func optionalField(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
