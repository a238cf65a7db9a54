package outpass

import (
	"errors"
	"sync"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
)

var ErrRequestNotLoaded = errors.New("outpass request is not loaded")

// Board is one staff session's local copy of the work queue and of the
// request currently open on the detail screen. Readers get copies.
type Board struct {
	mu        sync.Mutex
	items     []*model.OutpassRequest
	filter    QueueFilter
	current   *model.OutpassRequest
	roommates []model.Roommate
}

func NewBoard() *Board {
	return &Board{filter: QueueFilter{Status: FilterAll}}
}

// Replace swaps the list for a freshly fetched collection
func (b *Board) Replace(items []*model.OutpassRequest) {
	copied := make([]*model.OutpassRequest, 0, len(items))
	for _, r := range items {
		if r == nil {
			continue
		}
		c := r.Clone()
		c.Normalize()
		copied = append(copied, c)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = copied
}

func (b *Board) SetStatusFilter(f StatusFilter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Status = f
}

func (b *Board) SetQuery(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Query = q
}

func (b *Board) Filter() QueueFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// View ranks the list against the current filter
func (b *Board) View() []*model.OutpassRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	ranked := Rank(b.items, b.filter)
	for i, r := range ranked {
		ranked[i] = r.Clone()
	}
	return ranked
}

func (b *Board) Counts() Counts {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Count(b.items)
}

// Open makes the detail record current and refreshes its list entry
func (b *Board) Open(detail *model.OutpassDetail) {
	if detail == nil || detail.Outpass == nil {
		return
	}
	current := detail.Outpass.Clone()
	current.Normalize()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = current
	b.roommates = append([]model.Roommate(nil), detail.Roommates...)
	for i, r := range b.items {
		if r.ID == current.ID {
			b.items[i] = current.Clone()
		}
	}
}

// Current returns the open detail, nil when nothing is open
func (b *Board) Current() *model.OutpassDetail {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return nil
	}
	return &model.OutpassDetail{
		Outpass:   b.current.Clone(),
		Roommates: append([]model.Roommate(nil), b.roommates...),
	}
}

// Find looks the request up in the open detail first, then in the list
func (b *Board) Find(id string) (*model.OutpassRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r := b.lookup(id); r != nil {
		return r.Clone(), true
	}
	return nil, false
}

func (b *Board) lookup(id string) *model.OutpassRequest {
	if b.current != nil && b.current.ID == id {
		return b.current
	}
	for _, r := range b.items {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// ApplyDecision reflects a decision the backend already confirmed in every
// local copy of the request, whatever their staff stage shows by now.
// The open detail stays open so the outcome can be reviewed.
func (b *Board) ApplyDecision(id string, d Decision, staffName string) error {
	status, err := d.Action.Status()
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.lookup(id) == nil {
		return ErrRequestNotLoaded
	}

	if b.current != nil && b.current.ID == id {
		record(b.current, status, staffName)
	}
	for _, r := range b.items {
		if r.ID == id {
			record(r, status, staffName)
		}
	}
	return nil
}

// Close forgets the open detail
func (b *Board) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = nil
	b.roommates = nil
}
