package service

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// StudentBackend is the roster part of the backend
type StudentBackend interface {
	ListStudents(ctx context.Context, sess *model.Session) ([]*model.Student, error)
	CreateStudent(ctx context.Context, sess *model.Session, s *model.Student) (*model.Student, error)
	UploadRoster(ctx context.Context, sess *model.Session, filename string, file io.Reader) (*model.RosterUploadResult, error)
	UpdateStudent(ctx context.Context, sess *model.Session, id string, fields map[string]string) (*model.Student, error)
	SetStudentBlocked(ctx context.Context, sess *model.Session, id string, blocked bool) error
	DeleteStudent(ctx context.Context, sess *model.Session, id string) error
	ChangeStudentPassword(ctx context.Context, sess *model.Session, id string, change model.PasswordChange) error
}

// StudentFields maps every editable student field to its validation rule
var StudentFields = map[string]string{
	"registerNumber": "required,alphanum,min=4,max=20",
	"name":           "required,min=2,max=80",
	"email":          "required,email",
	"mobile":         "required,numeric,len=10",
	"parentMobile":   "omitempty,numeric,len=10",
	"department":     "required",
	"year":           "required,oneof=I II III IV",
	"residenceType":  "required,oneof=hostel dayScholar",
	"hostelName":     "omitempty,max=80",
	"roomNo":         "omitempty,max=20",
}

// StudentFieldOrder is the order fields are offered in edit menus
var StudentFieldOrder = []string{
	"registerNumber", "name", "email", "mobile", "parentMobile",
	"department", "year", "residenceType", "hostelName", "roomNo",
}

const passwordRule = "required,min=6"

var rosterExtensions = []string{".xlsx", ".xls"}

// StudentService manages the roster. Each chat keeps the last fetched list
// so that detail screens and searches do not refetch.
type StudentService struct {
	backend StudentBackend
	logger  *zap.Logger

	mu      sync.Mutex
	rosters map[int64][]*model.Student
	queries map[int64]string
}

func NewStudentService(backend StudentBackend, logger *zap.Logger) *StudentService {
	return &StudentService{
		backend: backend,
		logger:  logger,
		rosters: make(map[int64][]*model.Student),
		queries: make(map[int64]string),
	}
}

// Forget drops the chat's cached roster
func (s *StudentService) Forget(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rosters, telegramID)
	delete(s.queries, telegramID)
}

// SetQuery remembers the chat's roster search
func (s *StudentService) SetQuery(telegramID int64, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.TrimSpace(query)
	if query == "" {
		delete(s.queries, telegramID)
		return
	}
	s.queries[telegramID] = query
}

func (s *StudentService) Query(telegramID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[telegramID]
}

// ValidateStudentField checks a single value entered for a new student
func ValidateStudentField(field, value string) error {
	rule, ok := StudentFields[field]
	if field == "password" {
		rule, ok = passwordRule, true
	}
	if !ok {
		return ErrUnknownField
	}
	return validateValue(field, strings.TrimSpace(value), rule)
}

// Refresh refetches the roster and caches it for the chat
func (s *StudentService) Refresh(ctx context.Context, sess *model.Session) ([]*model.Student, error) {
	list, err := s.backend.ListStudents(ctx, sess)
	if err != nil {
		return nil, err
	}

	roster := make([]*model.Student, 0, len(list))
	for _, st := range list {
		if st != nil {
			roster = append(roster, st)
		}
	}

	s.mu.Lock()
	s.rosters[sess.TelegramID] = roster
	s.mu.Unlock()

	return s.List(sess.TelegramID, ""), nil
}

// List returns the cached roster matching query by register number or name
func (s *StudentService) List(telegramID int64, query string) []*model.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(query))

	out := make([]*model.Student, 0, len(s.rosters[telegramID]))
	for _, st := range s.rosters[telegramID] {
		if needle != "" &&
			!strings.Contains(folder.String(st.RegisterNumber), needle) &&
			!strings.Contains(folder.String(st.Name), needle) {
			continue
		}
		c := *st
		out = append(out, &c)
	}
	return out
}

// Find returns a copy of a cached student
func (s *StudentService) Find(telegramID int64, id string) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, st := range s.rosters[telegramID] {
		if st.ID == id {
			c := *st
			return &c, nil
		}
	}
	return nil, ErrStudentNotLoaded
}

// Create signs a single student up
func (s *StudentService) Create(ctx context.Context, sess *model.Session, st *model.Student) (*model.Student, error) {
	if err := validateStruct(st); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateStudent(ctx, sess, st)
	if err != nil {
		return nil, err
	}

	s.store(sess.TelegramID, created)
	s.logger.Info("Student created",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("register_number", created.RegisterNumber))

	return created, nil
}

// UploadRoster forwards a spreadsheet to the backend as-is.
// Only the extension is checked; rows are read by the backend.
func (s *StudentService) UploadRoster(ctx context.Context, sess *model.Session, filename string, file io.Reader) (*model.RosterUploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(rosterExtensions, ext) {
		return nil, ErrUnsupportedRoster
	}

	res, err := s.backend.UploadRoster(ctx, sess, filename, file)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Roster uploaded",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("filename", filename),
		zap.Int("inserted", res.Inserted),
		zap.Int("skipped", res.Skipped))

	return res, nil
}

// UpdateField changes one field of a student
func (s *StudentService) UpdateField(ctx context.Context, sess *model.Session, id, field, value string) (*model.Student, error) {
	rule, ok := StudentFields[field]
	if !ok {
		return nil, ErrUnknownField
	}

	value = strings.TrimSpace(value)
	if err := validateValue(field, value, rule); err != nil {
		return nil, err
	}

	updated, err := s.backend.UpdateStudent(ctx, sess, id, map[string]string{field: value})
	if err != nil {
		return nil, err
	}

	s.store(sess.TelegramID, updated)
	return updated, nil
}

func (s *StudentService) SetBlocked(ctx context.Context, sess *model.Session, id string, blocked bool) error {
	if err := s.backend.SetStudentBlocked(ctx, sess, id, blocked); err != nil {
		return err
	}

	s.mu.Lock()
	for _, st := range s.rosters[sess.TelegramID] {
		if st.ID == id {
			st.Blocked = blocked
		}
	}
	s.mu.Unlock()

	s.logger.Info("Student block state changed",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("student_id", id),
		zap.Bool("blocked", blocked))
	return nil
}

func (s *StudentService) Delete(ctx context.Context, sess *model.Session, id string) error {
	if err := s.backend.DeleteStudent(ctx, sess, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.rosters[sess.TelegramID] = slices.DeleteFunc(s.rosters[sess.TelegramID], func(st *model.Student) bool {
		return st.ID == id
	})
	s.mu.Unlock()

	s.logger.Info("Student deleted",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("student_id", id))
	return nil
}

func (s *StudentService) ChangePassword(ctx context.Context, sess *model.Session, id string, change model.PasswordChange) error {
	if err := validateStruct(change); err != nil {
		return err
	}
	return s.backend.ChangeStudentPassword(ctx, sess, id, change)
}

// store replaces the cached copy of st or appends it
func (s *StudentService) store(telegramID int64, st *model.Student) {
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := *st
	c.Password = ""
	for i, cached := range s.rosters[telegramID] {
		if cached.ID == c.ID {
			s.rosters[telegramID][i] = &c
			return
		}
	}
	s.rosters[telegramID] = append(s.rosters[telegramID], &c)
}
