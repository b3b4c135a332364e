package job

import "time"

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusSucceeded  Status = "Succeeded"
	StatusFailed     Status = "Failed"
)

// Terminal reports whether no further transitions can occur.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Job is one upload-to-thumbnail conversion. OutputFile is set only once the
// job has succeeded; until then it serializes as null.
type Job struct {
	ID          string    `json:"id"`
	Status      Status    `json:"status"`
	InputFile   string    `json:"input_file"`
	OutputFile  *string   `json:"output_file"`
	TimeCreated time.Time `json:"time_created"`
}

// New returns a freshly created job in the Processing state.
func New(id, inputFile string) Job {
	return Job{
		ID:          id,
		Status:      StatusProcessing,
		InputFile:   inputFile,
		TimeCreated: time.Now().UTC(),
	}
}
