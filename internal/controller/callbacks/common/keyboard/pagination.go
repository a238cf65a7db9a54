package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// PageSize is the number of list entries per page
const PageSize = 8

// Page clamps page into range and returns it with the slice bounds
// and the total number of pages.
func Page(total, page int) (current, start, end, pages int) {
	pages = (total + PageSize - 1) / PageSize
	if pages == 0 {
		pages = 1
	}
	if page < 0 {
		page = 0
	}
	if page >= pages {
		page = pages - 1
	}
	start = page * PageSize
	end = start + PageSize
	if end > total {
		end = total
	}
	return page, start, end, pages
}

// PaginationButtons builds the prev/indicator/next row.
// prefix is the callback prefix, e.g. "op_page:"; pages are 0-based.
func PaginationButtons(prefix string, currentPage, totalPages int) []models.InlineKeyboardButton {
	if totalPages <= 1 {
		return nil
	}

	var buttons []models.InlineKeyboardButton

	if currentPage > 0 {
		buttons = append(buttons, Button("⬅️", fmt.Sprintf("%s%d", prefix, currentPage-1)))
	}

	buttons = append(buttons, Button(
		fmt.Sprintf("📄 %d/%d", currentPage+1, totalPages),
		Noop,
	))

	if currentPage < totalPages-1 {
		buttons = append(buttons, Button("➡️", fmt.Sprintf("%s%d", prefix, currentPage+1)))
	}

	return buttons
}

func (b *Builder) AddPagination(prefix string, currentPage, totalPages int) *Builder {
	buttons := PaginationButtons(prefix, currentPage, totalPages)
	if len(buttons) > 0 {
		b.Row(buttons...)
	}
	return b
}
