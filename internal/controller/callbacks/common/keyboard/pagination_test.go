package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	tests := []struct {
		name                     string
		total, page              int
		current, start, end, num int
	}{
		{name: "empty", total: 0, page: 0, current: 0, start: 0, end: 0, num: 1},
		{name: "first page", total: 20, page: 0, current: 0, start: 0, end: 8, num: 3},
		{name: "last partial page", total: 20, page: 2, current: 2, start: 16, end: 20, num: 3},
		{name: "past the end", total: 20, page: 9, current: 2, start: 16, end: 20, num: 3},
		{name: "negative", total: 5, page: -1, current: 0, start: 0, end: 5, num: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current, start, end, pages := Page(tt.total, tt.page)
			assert.Equal(t, tt.current, current)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.num, pages)
		})
	}
}

func TestPaginationButtons(t *testing.T) {
	assert.Nil(t, PaginationButtons("op_page:", 0, 1))

	first := PaginationButtons("op_page:", 0, 3)
	assert.Len(t, first, 2)
	assert.Equal(t, Noop, first[0].CallbackData)
	assert.Equal(t, "op_page:1", first[1].CallbackData)

	middle := PaginationButtons("op_page:", 1, 3)
	assert.Len(t, middle, 3)
	assert.Equal(t, "op_page:0", middle[0].CallbackData)
	assert.Equal(t, "📄 2/3", middle[1].Text)
}
