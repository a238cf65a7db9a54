package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
)

// LoginResult is the answer of the staff login endpoint
type LoginResult struct {
	Token string             `json:"token"`
	Staff model.StaffProfile `json:"staff"`
}

// Login exchanges staff credentials for a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	in := map[string]string{"email": email, "password": password}

	var out LoginResult
	if err := c.doJSON(ctx, nil, http.MethodPost, "/api/staff/login", in, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("login: %w", ErrUnauthorized)
	}
	return &out, nil
}

// GetProfile returns the authenticated staff member's profile
func (c *Client) GetProfile(ctx context.Context, sess *model.Session) (*model.StaffProfile, error) {
	var out model.StaffProfile
	if err := c.doJSON(ctx, sess, http.MethodGet, "/api/staff/profile", nil, &out); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &out, nil
}

// UpdateProfile sends a partial document and returns the canonical profile
func (c *Client) UpdateProfile(ctx context.Context, sess *model.Session, upd model.StaffProfileUpdate) (*model.StaffProfile, error) {
	var out model.StaffProfile
	if err := c.doJSON(ctx, sess, http.MethodPut, "/api/staff/profile", upd, &out); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &out, nil
}

// ListOutpasses returns the staff-scoped request summaries
func (c *Client) ListOutpasses(ctx context.Context, sess *model.Session) ([]*model.OutpassRequest, error) {
	var out []*model.OutpassRequest
	if err := c.doJSON(ctx, sess, http.MethodGet, "/api/staff/outpasses", nil, &out); err != nil {
		return nil, fmt.Errorf("list outpasses: %w", err)
	}
	return out, nil
}

// GetOutpass returns the full record of one request with its roommates
func (c *Client) GetOutpass(ctx context.Context, sess *model.Session, id string) (*model.OutpassDetail, error) {
	var out model.OutpassDetail
	if err := c.doJSON(ctx, sess, http.MethodGet, "/api/staff/outpasses/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get outpass: %w", err)
	}
	if out.Outpass == nil {
		return nil, fmt.Errorf("get outpass: %w", ErrNotFound)
	}
	return &out, nil
}

type decisionBody struct {
	Decision model.ApprovalStatus `json:"decision"`
	Remarks  string               `json:"remarks"`
}

// SubmitStaffDecision records the staff stage outcome on the backend
func (c *Client) SubmitStaffDecision(ctx context.Context, sess *model.Session, id string, decision model.ApprovalStatus, remarks string) error {
	in := decisionBody{Decision: decision, Remarks: remarks}
	if err := c.doJSON(ctx, sess, http.MethodPut, "/api/staff/outpasses/"+url.PathEscape(id)+"/approval", in, nil); err != nil {
		return fmt.Errorf("submit decision: %w", err)
	}
	return nil
}

func (c *Client) ListStudents(ctx context.Context, sess *model.Session) ([]*model.Student, error) {
	var out []*model.Student
	if err := c.doJSON(ctx, sess, http.MethodGet, "/api/staff/students", nil, &out); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return out, nil
}

func (c *Client) CreateStudent(ctx context.Context, sess *model.Session, s *model.Student) (*model.Student, error) {
	var out model.Student
	if err := c.doJSON(ctx, sess, http.MethodPost, "/api/staff/students", s, &out); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return &out, nil
}

// UploadRoster forwards a roster spreadsheet untouched; parsing is the backend's job
func (c *Client) UploadRoster(ctx context.Context, sess *model.Session, filename string, file io.Reader) (*model.RosterUploadResult, error) {
	var out model.RosterUploadResult
	if err := c.doMultipart(ctx, sess, "/api/staff/students/upload", "file", filename, file, &out); err != nil {
		return nil, fmt.Errorf("upload roster: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateStudent(ctx context.Context, sess *model.Session, id string, fields map[string]string) (*model.Student, error) {
	var out model.Student
	if err := c.doJSON(ctx, sess, http.MethodPut, "/api/staff/students/"+url.PathEscape(id), fields, &out); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	return &out, nil
}

func (c *Client) SetStudentBlocked(ctx context.Context, sess *model.Session, id string, blocked bool) error {
	in := map[string]bool{"blocked": blocked}
	if err := c.doJSON(ctx, sess, http.MethodPatch, "/api/staff/students/"+url.PathEscape(id)+"/block", in, nil); err != nil {
		return fmt.Errorf("set student blocked: %w", err)
	}
	return nil
}

func (c *Client) DeleteStudent(ctx context.Context, sess *model.Session, id string) error {
	if err := c.doJSON(ctx, sess, http.MethodDelete, "/api/staff/students/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

func (c *Client) ChangeStudentPassword(ctx context.Context, sess *model.Session, id string, change model.PasswordChange) error {
	if err := c.doJSON(ctx, sess, http.MethodPut, "/api/staff/students/"+url.PathEscape(id)+"/password", change, nil); err != nil {
		return fmt.Errorf("change student password: %w", err)
	}
	return nil
}
