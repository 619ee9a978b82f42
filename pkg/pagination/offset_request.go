package pagination

import (
	"math"
	"strconv"
)

// OffsetRequest is a 1-based page request.
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// ParseOffsetRequest reads page and size from raw query values. Values that
// are missing or not numbers fall back to the defaults.
func ParseOffsetRequest(page, size string) OffsetRequest {
	r := OffsetRequest{}
	if n, err := strconv.Atoi(page); err == nil {
		r.Page = n
	}
	if n, err := strconv.Atoi(size); err == nil {
		r.Size = n
	}
	r.Normalize()
	return r
}

// Normalize clamps Page and Size into their valid ranges.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	// keeps (Page-1)*Size inside int
	if r.Page > math.MaxInt/PageMaxSize {
		r.Page = math.MaxInt / PageMaxSize
	}
}

func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
