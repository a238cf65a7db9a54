package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"go.uber.org/zap"
)

// OutpassBackend is the part of the backend serving the approval screen
type OutpassBackend interface {
	ListOutpasses(ctx context.Context, sess *model.Session) ([]*model.OutpassRequest, error)
	GetOutpass(ctx context.Context, sess *model.Session, id string) (*model.OutpassDetail, error)
	SubmitStaffDecision(ctx context.Context, sess *model.Session, id string, decision model.ApprovalStatus, remarks string) error
}

// OutpassService drives the approval screen of every staff chat.
// Each chat owns a separate outpass.Board.
type OutpassService struct {
	backend OutpassBackend
	logger  *zap.Logger

	mu     sync.Mutex
	boards map[int64]*outpass.Board
}

func NewOutpassService(backend OutpassBackend, logger *zap.Logger) *OutpassService {
	return &OutpassService{
		backend: backend,
		logger:  logger,
		boards:  make(map[int64]*outpass.Board),
	}
}

// Board returns the chat's board, creating an empty one on first use
func (s *OutpassService) Board(telegramID int64) *outpass.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[telegramID]
	if !ok {
		board = outpass.NewBoard()
		s.boards[telegramID] = board
	}
	return board
}

// Forget drops the chat's local copies; used on session teardown
func (s *OutpassService) Forget(telegramID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boards, telegramID)
}

// Refresh refetches the queue and returns it ranked by the chat's filter
func (s *OutpassService) Refresh(ctx context.Context, sess *model.Session) ([]*model.OutpassRequest, error) {
	list, err := s.backend.ListOutpasses(ctx, sess)
	if err != nil {
		return nil, err
	}

	board := s.Board(sess.TelegramID)
	board.Replace(list)

	s.logger.Debug("Outpass queue refreshed",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.Int("count", len(list)))

	return board.View(), nil
}

// Open fetches a request with its roommates and makes it the current detail
func (s *OutpassService) Open(ctx context.Context, sess *model.Session, id string) (*model.OutpassDetail, error) {
	detail, err := s.backend.GetOutpass(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	board := s.Board(sess.TelegramID)
	board.Open(detail)
	return board.Current(), nil
}

// Decide submits the staff decision and, once the backend confirmed it,
// reflects it in the chat's list and detail. On failure nothing changes.
func (s *OutpassService) Decide(ctx context.Context, sess *model.Session, id string, d outpass.Decision) (*model.OutpassRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, outpass.ErrRequestNotLoaded
	}

	board := s.Board(sess.TelegramID)

	current, ok := board.Find(id)
	if !ok {
		detail, err := s.Open(ctx, sess, id)
		if err != nil {
			return nil, err
		}
		current = detail.Outpass
	}

	if err := outpass.CheckDecision(current, d); err != nil {
		return nil, err
	}

	d.Remarks = strings.TrimSpace(d.Remarks)
	status, _ := d.Action.Status()
	if err := s.backend.SubmitStaffDecision(ctx, sess, id, status, d.Remarks); err != nil {
		s.logger.Warn("Staff decision not recorded",
			zap.Int64("telegram_id", sess.TelegramID),
			zap.String("outpass_id", id),
			zap.String("action", string(d.Action)),
			zap.Error(err))
		return nil, err
	}

	// current is a private copy already checked above
	_ = outpass.Decide(current, d, sess.StaffName)
	if err := board.ApplyDecision(id, d, sess.StaffName); err != nil {
		if !errors.Is(err, outpass.ErrRequestNotLoaded) {
			return nil, err
		}
		s.logger.Debug("Decided outpass no longer on board",
			zap.Int64("telegram_id", sess.TelegramID),
			zap.String("outpass_id", id))
	}

	s.logger.Info("Staff decision recorded",
		zap.Int64("telegram_id", sess.TelegramID),
		zap.String("outpass_id", id),
		zap.String("decision", string(status)),
		zap.String("staff_name", sess.StaffName))

	return current, nil
}
