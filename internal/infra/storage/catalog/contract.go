package catalog

import (
	"github.com/hartvaneindhoven/HVE-BookingService/pkg/dbmetrics"
)

// Reuse the shared database executor interfaces.
type DBExecutor = dbmetrics.DBExecutor
