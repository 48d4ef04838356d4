package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	ErrCatalog       = goerr.New("catalog request failed")
	ErrNoProjects    = goerr.New("no projects fetched from catalog")
	ErrCloneFailed   = goerr.New("clone failed")
	ErrScanFailed    = goerr.New("scan failed")
	ErrCleanupFailed = goerr.New("cleanup failed")
)
