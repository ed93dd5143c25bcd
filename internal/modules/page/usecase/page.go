package usecase

import (
	"context"

	"landing/internal/modules/page/domain"
	pagedto "landing/internal/modules/page/dto"
	pagein "landing/internal/modules/page/port/in"
	"landing/internal/modules/page/service"
)

type Interactor struct {
	svc *service.PageService
}

func NewInteractor(svc *service.PageService) pagein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Content(ctx context.Context) (pagedto.PageOutput, error) {
	page, err := i.svc.Page(ctx)
	if err != nil {
		return pagedto.PageOutput{}, err
	}
	return toPage(page), nil
}

func (i *Interactor) Navigate(ctx context.Context, input pagedto.NavigateInput) (pagedto.DestinationOutput, error) {
	dest, err := i.svc.Resolve(ctx, input.Route)
	if err != nil {
		return pagedto.DestinationOutput{}, err
	}
	if dest.IsExternal() {
		return pagedto.DestinationOutput{External: dest.External}, nil
	}
	page, err := i.svc.Page(ctx)
	if err != nil {
		return pagedto.DestinationOutput{}, err
	}
	sec, _ := page.Section(dest.Section)
	return pagedto.DestinationOutput{Section: sec.ID, Label: sec.Label}, nil
}

func toPage(p domain.Page) pagedto.PageOutput {
	sections := make([]pagedto.SectionOutput, 0, len(p.Sections))
	for _, s := range p.Sections {
		sections = append(sections, pagedto.SectionOutput{ID: s.ID, Label: s.Label, Route: "#" + s.ID})
	}
	items := make([]pagedto.TemplateOutput, 0, len(p.Templates.Items))
	for _, t := range p.Templates.Items {
		items = append(items, pagedto.TemplateOutput{
			Title:       t.Title,
			Rating:      t.Rating,
			Category:    t.Category,
			Image:       t.Image,
			Description: t.Description,
			Gradient:    t.Gradient,
		})
	}
	heroActions := make([]pagedto.ActionOutput, 0, len(p.Hero.Actions))
	for _, a := range p.Hero.Actions {
		heroActions = append(heroActions, toAction(a))
	}
	return pagedto.PageOutput{
		Sections: sections,
		Hero: pagedto.HeroOutput{
			Badge:       p.Hero.Badge,
			Headline:    p.Hero.Headline,
			Gradient:    p.Hero.Gradient,
			Description: p.Hero.Description,
			Actions:     heroActions,
		},
		Stack: pagedto.StackPanelOutput{
			Headline: p.Stack.Headline,
			Lines:    p.Stack.Lines,
			Action:   toAction(p.Stack.Action),
		},
		Templates: pagedto.ShowcaseOutput{
			Title:    p.Templates.Title,
			Subtitle: p.Templates.Subtitle,
			Items:    items,
			Action:   toAction(p.Templates.Action),
		},
		CTA: pagedto.CallToActionOutput{
			Badge:    p.CTA.Badge,
			Title:    p.CTA.Title,
			Subtitle: p.CTA.Subtitle,
			Lines:    p.CTA.Lines,
			Action:   toAction(p.CTA.Action),
		},
	}
}

func toAction(a domain.Action) pagedto.ActionOutput {
	return pagedto.ActionOutput{Label: a.Label, Route: a.Route}
}
