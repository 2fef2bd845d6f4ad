package feed

import "urbanease/models"

// DefaultPageSize matches the listing page grid.
const DefaultPageSize = 12

// Paginate slices one page out of the filtered, sorted card set. The page
// number is clamped to [1, totalPages]; an empty set yields a single empty
// page.
func Paginate(cards []models.FeedCard, page, pageSize int) models.FeedPage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(cards)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return models.FeedPage{
		Cards:      cards[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}
