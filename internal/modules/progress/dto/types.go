package dto

import "time"

type OpenDocumentInput struct {
	MaterialID string
}

type DocumentSession struct {
	MaterialID string
	Tracking   bool
	Elapsed    time.Duration
	Percent    float64
}

type OpenVideoInput struct {
	MaterialID string
	Duration   float64
}

type VideoSession struct {
	MaterialID   string
	Tracking     bool
	PriorPercent float64
	SeekTo       float64
}

type TimeUpdateInput struct {
	MaterialID  string
	CurrentTime float64
	Duration    float64
}

type SubmitInput struct {
	MaterialID string
	Kind       string
	Percent    float64
}

type SubmitOutput struct {
	MaterialID    string
	Kind          string
	Percent       float64
	Sent          bool
	SkipReason    string
	TotalProgress float64
	AllCompleted  bool
}

type TrackerStatus struct {
	MaterialID string
	Kind       string
	Tracking   bool
	Completed  bool
	Elapsed    time.Duration
	Percent    float64
}

type RecordOutput struct {
	TrainingID       string
	Title            string
	DocumentProgress float64
	VideoProgress    float64
	Progress         float64
	Status           string
}

type TrainingProgressOutput struct {
	Title    string
	Progress float64
	Status   string
}

type UserProgressOutput struct {
	UserID    string
	Name      string
	Role      string
	Completed bool
	Trainings []TrainingProgressOutput
}

type ReportOutput struct {
	Path         string
	AllCompleted bool
	Materials    int
}

// Notice is a transient message for a banner or the terminal.
type Notice struct {
	Level   string
	Message string
}
