package service

import (
	"context"
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStaffBackend struct {
	profile model.StaffProfile
	updates []model.StaffProfileUpdate
}

func (f *fakeStaffBackend) GetProfile(context.Context, *model.Session) (*model.StaffProfile, error) {
	p := f.profile
	return &p, nil
}

func (f *fakeStaffBackend) UpdateProfile(_ context.Context, _ *model.Session, upd model.StaffProfileUpdate) (*model.StaffProfile, error) {
	f.updates = append(f.updates, upd)
	if upd.Name != nil {
		f.profile.Name = *upd.Name
	}
	if upd.Mobile != nil {
		f.profile.Mobile = *upd.Mobile
	}
	p := f.profile
	return &p, nil
}

func TestStaffUpdateFieldSendsPartialDocument(t *testing.T) {
	backend := &fakeStaffBackend{profile: model.StaffProfile{Name: "Priya", Mobile: "9876543210"}}
	svc := NewStaffService(backend, zap.NewNop())
	sess := &model.Session{TelegramID: 1, Token: "t"}

	profile, err := svc.UpdateField(context.Background(), sess, "mobile", " 9123456789 ")
	require.NoError(t, err)
	assert.Equal(t, "9123456789", profile.Mobile)
	assert.Equal(t, "Priya", profile.Name)

	require.Len(t, backend.updates, 1)
	assert.Nil(t, backend.updates[0].Name)
	require.NotNil(t, backend.updates[0].Mobile)
	assert.Equal(t, "9123456789", *backend.updates[0].Mobile)
}

func TestStaffUpdateFieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		err   error
	}{
		{name: "unknown field", field: "email", value: "x@y.z", err: ErrUnknownField},
		{name: "short mobile", field: "mobile", value: "123"},
		{name: "letters in mobile", field: "mobile", value: "98765abcde"},
		{name: "empty name", field: "name", value: "   "},
		{name: "one letter name", field: "name", value: "P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeStaffBackend{}
			svc := NewStaffService(backend, zap.NewNop())

			_, err := svc.UpdateField(context.Background(), &model.Session{Token: "t"}, tt.field, tt.value)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				var invalid *InvalidInputError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tt.field, invalid.Field)
			}
			assert.Empty(t, backend.updates)
		})
	}
}
