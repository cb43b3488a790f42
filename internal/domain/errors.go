package domain

import "errors"

// Error taxonomy. Persistence errors degrade (fail-open), load errors block
// the view, export errors surface as a non-blocking notice. Wrap with
// fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	ErrStorage       = errors.New("storage unavailable")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	ErrDataLoad      = errors.New("recruitment data unreadable")
	ErrExport        = errors.New("export failed")
)
