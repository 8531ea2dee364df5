package domain

// Report is the JSON body of POST /api/v1/reports. The loading and
// unloading dates only apply to job-listing reports.
type Report struct {
	ReportType    string   `json:"reportType"`
	TargetID      string   `json:"targetId"`
	Reason        string   `json:"reason"`
	Details       string   `json:"details,omitempty"`
	Media         []string `json:"media,omitempty"`
	LoadingDate   string   `json:"loadingDate,omitempty"`
	UnloadingDate string   `json:"unloadingDate,omitempty"`
}
