package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/truenamepath/truenamepath/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"

	FieldNameText     = "text"
	FieldNameCategory = "category"

	FieldContextName = "name"

	FieldContextID    = "context_id"
	FieldNameID       = "name_id"
	FieldOIDCProperty = "oidc_property"
	FieldChanges      = "changes"

	FieldResolveTarget = "resolve_target"
)

const (
	maxNameTextLength    = 100
	maxContextNameLength = 64
)

// InputValidator enforces the structural rules of every inbound payload:
// signup credentials, name variants, context names, assignment changes, and
// resolution targets.
type InputValidator struct {
}

func NewInputValidator() Validator {
	return &InputValidator{}
}

func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.CreateNameRequest:
		return v.validateCreateName(ctx, value, fields...)
	case *models.CreateNameRequest:
		return v.validateCreateName(ctx, *value, fields...)

	case models.UpdateNameRequest:
		return v.validateUpdateName(ctx, value, fields...)
	case *models.UpdateNameRequest:
		return v.validateUpdateName(ctx, *value, fields...)

	case models.CreateContextRequest:
		return v.validateCreateContext(ctx, value, fields...)
	case *models.CreateContextRequest:
		return v.validateCreateContext(ctx, *value, fields...)

	case models.UpsertAssignmentRequest:
		return v.validateUpsertAssignment(ctx, value, fields...)
	case *models.UpsertAssignmentRequest:
		return v.validateUpsertAssignment(ctx, *value, fields...)

	case models.DeleteAssignmentRequest:
		return v.validateDeleteAssignment(ctx, value, fields...)
	case *models.DeleteAssignmentRequest:
		return v.validateDeleteAssignment(ctx, *value, fields...)

	case models.AssignmentChange:
		return v.validateAssignmentChange(ctx, value, fields...)
	case *models.AssignmentChange:
		return v.validateAssignmentChange(ctx, *value, fields...)

	case models.BulkAssignmentRequest:
		return v.validateBulkAssignment(ctx, value, fields...)
	case *models.BulkAssignmentRequest:
		return v.validateBulkAssignment(ctx, *value, fields...)

	case models.ResolveRequest:
		return v.validateResolve(ctx, value, fields...)
	case *models.ResolveRequest:
		return v.validateResolve(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validContextNameSymbols(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

func (v *InputValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email == "" || !strings.Contains(user.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrInvalidPassword
			}
		case FieldFullName:
			if strings.TrimSpace(user.FullName) == "" {
				return ErrInvalidFullName
			}
		}
	}

	return nil
}

func (v *InputValidator) validateCreateName(_ context.Context, req models.CreateNameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNameText, FieldNameCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldNameText:
			if strings.TrimSpace(req.Text) == "" {
				return ErrEmptyNameText
			}
			if utf8.RuneCountInString(req.Text) > maxNameTextLength {
				return ErrNameTextTooLong
			}
		case FieldNameCategory:
			if !models.ValidCategory(req.Category) {
				return ErrInvalidNameCategory
			}
		}
	}

	return nil
}

func (v *InputValidator) validateUpdateName(_ context.Context, req models.UpdateNameRequest, _ ...string) error {
	if req.Text == nil && req.Category == nil && req.IsPreferred == nil {
		return ErrNoFieldsToUpdate
	}

	if req.Text != nil {
		if strings.TrimSpace(*req.Text) == "" {
			return ErrEmptyNameText
		}
		if utf8.RuneCountInString(*req.Text) > maxNameTextLength {
			return ErrNameTextTooLong
		}
	}

	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return ErrInvalidNameCategory
	}

	return nil
}

func (v *InputValidator) validateCreateContext(_ context.Context, req models.CreateContextRequest, _ ...string) error {
	if req.Name == "" {
		return ErrEmptyContextName
	}
	if utf8.RuneCountInString(req.Name) > maxContextNameLength {
		return ErrContextNameTooLong
	}
	if !validContextNameSymbols(req.Name) {
		return ErrInvalidContextNameSymbol
	}

	return nil
}

func (v *InputValidator) validateUpsertAssignment(_ context.Context, req models.UpsertAssignmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContextID, FieldNameID, FieldOIDCProperty}
	}

	for _, f := range fields {
		switch f {
		case FieldContextID:
			if req.ContextID <= 0 {
				return ErrInvalidContextID
			}
		case FieldNameID:
			if req.NameID <= 0 {
				return ErrInvalidNameID
			}
		case FieldOIDCProperty:
			if req.OIDCProperty != "" && !models.ValidOIDCProperty(req.OIDCProperty) {
				return ErrInvalidOIDCProperty
			}
		}
	}

	return nil
}

func (v *InputValidator) validateDeleteAssignment(_ context.Context, req models.DeleteAssignmentRequest, _ ...string) error {
	if req.ContextID <= 0 {
		return ErrInvalidContextID
	}
	if req.OIDCProperty != "" && !models.ValidOIDCProperty(req.OIDCProperty) {
		return ErrInvalidOIDCProperty
	}

	return nil
}

func (v *InputValidator) validateAssignmentChange(_ context.Context, change models.AssignmentChange, _ ...string) error {
	if change.ContextID <= 0 {
		return ErrInvalidContextID
	}
	// a nil NameID clears the slot; a present one must be a real id
	if change.NameID != nil && *change.NameID <= 0 {
		return ErrInvalidNameID
	}
	if change.OIDCProperty != "" && !models.ValidOIDCProperty(change.OIDCProperty) {
		return ErrInvalidOIDCProperty
	}

	return nil
}

func (v *InputValidator) validateBulkAssignment(ctx context.Context, req models.BulkAssignmentRequest, _ ...string) error {
	if len(req.Changes) == 0 {
		return ErrEmptyChanges
	}

	for _, change := range req.Changes {
		if err := v.validateAssignmentChange(ctx, change); err != nil {
			return err
		}
	}

	return nil
}

func (v *InputValidator) validateResolve(_ context.Context, req models.ResolveRequest, _ ...string) error {
	if req.ContextName == "" && req.OIDCProperty == "" {
		return ErrEmptyResolveTarget
	}
	if req.OIDCProperty != "" && !models.ValidOIDCProperty(req.OIDCProperty) {
		return ErrInvalidOIDCProperty
	}

	return nil
}
