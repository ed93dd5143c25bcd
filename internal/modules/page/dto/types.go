package dto

type NavigateInput struct {
	Route string
}

type DestinationOutput struct {
	Section  string
	Label    string
	External string
}

type SectionOutput struct {
	ID    string
	Label string
	Route string
}

type ActionOutput struct {
	Label string
	Route string
}

type HeroOutput struct {
	Badge       string
	Headline    []string
	Gradient    []string
	Description string
	Actions     []ActionOutput
}

type StackPanelOutput struct {
	Headline []string
	Lines    []string
	Action   ActionOutput
}

type TemplateOutput struct {
	Title       string
	Rating      string
	Category    string
	Image       string
	Description string
	Gradient    []string
}

type ShowcaseOutput struct {
	Title    string
	Subtitle string
	Items    []TemplateOutput
	Action   ActionOutput
}

type CallToActionOutput struct {
	Badge    string
	Title    string
	Subtitle string
	Lines    []string
	Action   ActionOutput
}

type PageOutput struct {
	Sections  []SectionOutput
	Hero      HeroOutput
	Stack     StackPanelOutput
	Templates ShowcaseOutput
	CTA       CallToActionOutput
}
