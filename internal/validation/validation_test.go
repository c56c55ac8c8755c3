package validation

import (
	"testing"
)

type signUpPayload struct {
	Name     string  `validate:"required"`
	Email    string  `validate:"required,email"`
	Password string  `validate:"required,min=8"`
	Rating   float64 `validate:"gte=1,lte=5"`
}

func (p *signUpPayload) Validate() error {
	return Struct(p)
}

func TestValidateStruct_CollectsFieldErrors(t *testing.T) {
	payload := &signUpPayload{Email: "not-an-email", Password: "short", Rating: 7}

	msg, fieldErrors := validateStruct(payload)
	if msg != "Validation failed" {
		t.Errorf("unexpected message %q", msg)
	}
	if len(fieldErrors) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %+v", len(fieldErrors), fieldErrors)
	}

	byField := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		byField[fe.Field] = fe.Error
	}

	if byField["name"] != "is required" {
		t.Errorf("name: got %q", byField["name"])
	}
	if byField["email"] != "must be a valid email address" {
		t.Errorf("email: got %q", byField["email"])
	}
	if byField["password"] != "must be at least 8 characters" {
		t.Errorf("password: got %q", byField["password"])
	}
	if byField["rating"] != "must not exceed 5" {
		t.Errorf("rating: got %q", byField["rating"])
	}
}

func TestValidateStruct_ValidPayload(t *testing.T) {
	payload := &signUpPayload{
		Name:     "Eva Stanley",
		Email:    "eva@example.com",
		Password: "sevenletters",
		Rating:   4,
	}

	msg, fieldErrors := validateStruct(payload)
	if msg != "" || fieldErrors != nil {
		t.Errorf("expected no errors, got %q / %+v", msg, fieldErrors)
	}
}

func TestExtractValidationError_CustomErrors(t *testing.T) {
	err := CustomValidationErrors{
		{Field: "owner_id", Message: "must reference an existing user"},
	}

	msg, fieldErrors := extractValidationError(err)
	if msg != "Validation failed" {
		t.Errorf("unexpected message %q", msg)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "owner_id" {
		t.Errorf("unexpected field errors: %+v", fieldErrors)
	}
}
