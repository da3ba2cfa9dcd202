package dto

import "time"

type OpenMaterialInput struct {
	MaterialID     string
	Mode           string
	Page           int
	Duration       float64
	LaunchExternal bool
}

type OpenResult struct {
	MaterialID       string
	Title            string
	Mode             string
	Page             int
	TotalPage        int
	Content          string
	ExternalTarget   string
	ExternalLaunched bool
	Tracking         bool
	Elapsed          time.Duration
	Percent          float64
	Duration         float64
	SeekTo           float64
}

type ReadPageInput struct {
	MaterialID string
	Page       int
}

type PageOutput struct {
	Page      int
	TotalPage int
	Text      string
}

type PlaybackInput struct {
	MaterialID  string
	CurrentTime float64
	Duration    float64
}

type PlaybackOutput struct {
	Percent      float64
	Sent         bool
	SkipReason   string
	AllCompleted bool
}
