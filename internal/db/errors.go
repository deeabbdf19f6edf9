package db

import (
	"fmt"

	"seoplanner/internal/seo"
)

// Domain-level database error sentinels. The duplicate sentinels wrap
// seo.ErrDuplicate so orchestrators can detect lost insert races without
// knowing which table was involved.
var (
	ErrDuplicateKeyword    = fmt.Errorf("keyword already exists: %w", seo.ErrDuplicate)
	ErrDuplicateCompetitor = fmt.Errorf("competitor rank already exists for keyword: %w", seo.ErrDuplicate)

	// ErrOutlineReference signals a suggestion insert against a missing outline.
	ErrOutlineReference = fmt.Errorf("content outline does not exist")
)

// Postgres error codes checked when mapping constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)
