package model

// Health states reported by GET /status.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HubDescriptor is the response of GET /.
type HubDescriptor struct {
	Name          string            `json:"name"`
	Version       string            `json:"version"`
	Status        string            `json:"status"`
	Description   string            `json:"description"`
	Endpoints     map[string]string `json:"endpoints"`
	Documentation string            `json:"documentation"`
}

// TableCheck reports the state of one reference table.
type TableCheck struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

// StatusChecks groups the sub-checks of a status report.
type StatusChecks struct {
	ReferenceData map[string]TableCheck `json:"reference_data"`
}

// StatusReport is the response of GET /status.
type StatusReport struct {
	Status      string       `json:"status"`
	Timestamp   string       `json:"timestamp"`
	Environment string       `json:"environment"`
	Version     string       `json:"version"`
	Checks      StatusChecks `json:"checks"`
}

// Healthy reports whether every check passed.
func (r *StatusReport) Healthy() bool {
	return r.Status == StatusHealthy
}
