package ledger

import "time"

// SetNow fixes the service clock for window tests.
func SetNow(s *Service, now func() time.Time) { s.now = now }
