package dto

type ChooseInput struct {
	OptionID string
}

type TurnOutput struct {
	Speaker string
	Text    string
	Blocks  []string
}

type OptionOutput struct {
	ID           string
	Text         string
	HasFollowUps bool
}

type StateOutput struct {
	SessionID  string
	Transcript []TurnOutput
	Options    []OptionOutput
}

type ScriptSummaryOutput struct {
	Greeting    string
	RootOptions int
	Nodes       int
	Depth       int
}
