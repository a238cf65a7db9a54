package service

import (
	"context"
	"strings"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"go.uber.org/zap"
)

// StaffBackend is the profile part of the backend
type StaffBackend interface {
	GetProfile(ctx context.Context, sess *model.Session) (*model.StaffProfile, error)
	UpdateProfile(ctx context.Context, sess *model.Session, upd model.StaffProfileUpdate) (*model.StaffProfile, error)
}

// ProfileFields lists the profile fields a staff member may edit, in display order
var ProfileFields = []string{"name", "mobile", "department", "designation"}

type StaffService struct {
	backend StaffBackend
	logger  *zap.Logger
}

func NewStaffService(backend StaffBackend, logger *zap.Logger) *StaffService {
	return &StaffService{
		backend: backend,
		logger:  logger,
	}
}

func (s *StaffService) Profile(ctx context.Context, sess *model.Session) (*model.StaffProfile, error) {
	return s.backend.GetProfile(ctx, sess)
}

// UpdateField sends a partial profile document with a single field set.
// The backend's canonical profile is returned.
func (s *StaffService) UpdateField(ctx context.Context, sess *model.Session, field, value string) (*model.StaffProfile, error) {
	value = strings.TrimSpace(value)

	var upd model.StaffProfileUpdate
	switch field {
	case "name":
		upd.Name = &value
	case "mobile":
		upd.Mobile = &value
	case "department":
		upd.Department = &value
	case "designation":
		upd.Designation = &value
	default:
		return nil, ErrUnknownField
	}

	if value == "" {
		return nil, &InvalidInputError{Field: field, Reason: "value is required"}
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	profile, err := s.backend.UpdateProfile(ctx, sess, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Staff profile updated",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("field", field))

	return profile, nil
}
