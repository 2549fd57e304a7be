package response

// Page carries the pagination metadata of a list response. The items
// themselves live in the endpoint's named collection field.
type Page struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
}

func NewPage(page, pageSize, total int) Page {
	return Page{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
}
