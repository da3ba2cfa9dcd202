package dto

type GateOutput struct {
	State       string
	CanRetry    bool
	Cooldown    int
	Countdown   string
	RetryLocked bool
	Message     string
}

type RetryOutput struct {
	Granted   bool
	Message   string
	Countdown string
	Gate      GateOutput
}

type QuestionOutput struct {
	ID      string
	Text    string
	Type    string
	Options []string
}

type SubmitInput struct {
	// Answers maps question id to an option text or its 1-based position.
	Answers map[string]string
}

type SubmitOutput struct {
	Passed  bool
	Status  string
	Message string
	Gate    GateOutput
}
