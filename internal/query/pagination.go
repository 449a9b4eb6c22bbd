package query

type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination describes the neighbouring pages of a list result. Next is
// present only when records exist past the current page, Prev only when the
// current page is not the first.
type Pagination struct {
	Next *Page `json:"next,omitempty"`
	Prev *Page `json:"prev,omitempty"`
}

func (q ListQuery) Pagination(total int) Pagination {
	var p Pagination
	if q.Page*q.Limit < total {
		p.Next = &Page{Page: q.Page + 1, Limit: q.Limit}
	}
	if q.Page > 1 {
		p.Prev = &Page{Page: q.Page - 1, Limit: q.Limit}
	}
	return p
}
