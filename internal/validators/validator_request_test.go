// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/f4f-study-portal/models"
)

const storedID = "0192f5c4-8a1e-7c3d-9b2a-5e6f7a8b9c0d"

func strPtr(s string) *string { return &s }

func typePtr(t models.FieldType) *models.FieldType { return &t }

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), "plain string"), ErrUnsupportedType)
}

func TestValidate_EntityID(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, EntityID(storedID)))
	assert.ErrorIs(t, v.Validate(ctx, EntityID("not-a-uuid")), ErrInvalidEntityID)
	// path parameters always name stored entities
	assert.ErrorIs(t, v.Validate(ctx, EntityID("")), ErrInvalidEntityID)
}

func TestValidate_Login(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.LoginRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.LoginRequest{Username: "admin", Password: "secret"}},
		{name: "empty username", req: models.LoginRequest{Password: "secret"}, wantErr: ErrEmptyUsername},
		{name: "empty password", req: models.LoginRequest{Username: "admin"}, wantErr: ErrEmptyPassword},
		{name: "only username checked", req: models.LoginRequest{Username: "admin"}, fields: []string{FieldUsername}},
		{name: "unknown field", req: models.LoginRequest{Username: "a", Password: "b"}, fields: []string{"nope"}, wantErr: ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_LoginPointer(t *testing.T) {
	v := NewRequestValidator()
	err := v.Validate(context.Background(), &models.LoginRequest{Username: "admin"})
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestValidate_DefaultValueRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DefaultValueRequest{Datatype: models.IntType, Value: 3}))
	assert.NoError(t, v.Validate(ctx, models.DefaultValueRequest{Datatype: models.ListType, ElementsType: typePtr(models.StringType)}))
	assert.ErrorIs(t, v.Validate(ctx, models.DefaultValueRequest{Datatype: "Blob"}), ErrInvalidDatatype)
	assert.ErrorIs(t, v.Validate(ctx, models.DefaultValueRequest{Datatype: models.ListType}), ErrInvalidDatatype)
	assert.ErrorIs(t, v.Validate(ctx, models.DefaultValueRequest{Datatype: models.ListType, ElementsType: typePtr(models.ListType)}), ErrInvalidDatatype)
}

func TestValidate_TransitionRequest(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TransitionRequest{FoodEnumID: storedID}))
	assert.ErrorIs(t, v.Validate(ctx, &models.TransitionRequest{}), ErrEmptyFoodEnumID)
}

func TestValidate_SchemaEntityIDs(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	for _, id := range []string{"", models.NewElementID, storedID} {
		assert.NoError(t, v.Validate(ctx, models.InputForm{ID: id}), id)
		assert.NoError(t, v.Validate(ctx, &models.InputEnum{ID: id}), id)
		assert.NoError(t, v.Validate(ctx, models.FoodEnum{ID: id}), id)
		assert.NoError(t, v.Validate(ctx, models.FoodEnumItem{ID: id}), id)
		assert.NoError(t, v.Validate(ctx, models.Study{ID: id}), id)
	}

	assert.ErrorIs(t, v.Validate(ctx, models.InputForm{ID: "form-1"}), ErrInvalidEntityID)
	assert.ErrorIs(t, v.Validate(ctx, models.Study{ID: "1"}, FieldID), ErrInvalidEntityID)
	assert.ErrorIs(t, v.Validate(ctx, models.Study{ID: storedID}, FieldURLs), ErrUnknownField)
}

func TestValidate_FieldPermissions(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	field := models.NewInputField()
	field.Permissions = []models.Permission{{Role: models.RoleNurse, Type: models.PermissionEdit}}
	assert.NoError(t, v.Validate(ctx, field))

	field.Permissions = append(field.Permissions, models.Permission{Role: "Janitor", Type: models.PermissionRead})
	assert.ErrorIs(t, v.Validate(ctx, &field), ErrInvalidPermission)

	// id only
	assert.NoError(t, v.Validate(ctx, field, FieldID))

	field.Permissions = []models.Permission{{Role: models.RoleNurse, Type: "Write"}}
	assert.ErrorIs(t, v.Validate(ctx, field, FieldPermissions), ErrInvalidPermission)
}

func TestValidate_FoodImageURLs(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	image := models.FoodImage{
		ID:         storedID,
		LicenseURL: strPtr("https://creativecommons.org/licenses/by/4.0/"),
		SourceURL:  strPtr(""),
	}
	assert.NoError(t, v.Validate(ctx, image))

	image.SourceURL = strPtr("ftp://example.org/apple.png")
	assert.ErrorIs(t, v.Validate(ctx, image), ErrInvalidURL)

	image.SourceURL = strPtr("apple.png")
	assert.ErrorIs(t, v.Validate(ctx, &image), ErrInvalidURL)

	image.SourceURL = nil
	image.ID = "img"
	assert.ErrorIs(t, v.Validate(ctx, image), ErrInvalidEntityID)
}
