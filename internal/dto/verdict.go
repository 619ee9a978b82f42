package dto

import (
	"github.com/DjordjeVuckovic/proplogic/internal/verdict"
	"github.com/DjordjeVuckovic/proplogic/pkg/pagination"
)

// VerdictPage is the listing body; it names the generic instantiation for
// the API docs.
type VerdictPage = pagination.OffsetResult[verdict.Record]
