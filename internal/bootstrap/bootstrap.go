package bootstrap

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	cardsinadapter "landing/internal/modules/cards/adapter/in"
	cardsoutadapter "landing/internal/modules/cards/adapter/out"
	cardsservice "landing/internal/modules/cards/service"
	cardsusecase "landing/internal/modules/cards/usecase"
	dialoginadapter "landing/internal/modules/dialog/adapter/in"
	dialogoutadapter "landing/internal/modules/dialog/adapter/out"
	dialogservice "landing/internal/modules/dialog/service"
	dialogusecase "landing/internal/modules/dialog/usecase"
	pageinadapter "landing/internal/modules/page/adapter/in"
	pageoutadapter "landing/internal/modules/page/adapter/out"
	pageservice "landing/internal/modules/page/service"
	pageusecase "landing/internal/modules/page/usecase"
	particlesinadapter "landing/internal/modules/particles/adapter/in"
	particlesoutadapter "landing/internal/modules/particles/adapter/out"
	particlesservice "landing/internal/modules/particles/service"
	particlesusecase "landing/internal/modules/particles/usecase"
	"landing/internal/platform/clock"
	"landing/internal/platform/config"
	"landing/internal/platform/content"
	"landing/internal/platform/id"
	"landing/internal/platform/logging"
	uiapp "landing/internal/ui/app"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	DialogCLI    dialoginadapter.CLIHandler
	DialogTUI    dialoginadapter.TUIHandler
	ParticlesTUI particlesinadapter.TUIHandler
	CardsCLI     cardsinadapter.CLIHandler
	CardsTUI     cardsinadapter.TUIHandler
	PageCLI      pageinadapter.CLIHandler
	PageTUI      pageinadapter.TUIHandler
}

// New wires every module against the configured content. Content is read
// lazily, so a bad override directory surfaces on first use.
func New(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.NewNop()
	}
	fsys := content.Open(cfg.ContentDir)

	dialogUC := dialogusecase.NewInteractor(dialogservice.NewDialogService(
		dialogoutadapter.NewYAMLScriptSource(fsys, content.DialogFile),
		id.RandomHex{},
		logger.With("module", "dialog"),
	))
	particlesUC := particlesusecase.NewInteractor(particlesservice.NewFieldService(
		particlesoutadapter.NewPCGSampler(cfg.Seed),
	))
	cardsUC := cardsusecase.NewInteractor(cardsservice.NewStackService(
		cardsoutadapter.NewYAMLCardSource(fsys, content.PageFile),
		cfg.BreakpointPx,
	))
	pageUC := pageusecase.NewInteractor(pageservice.NewPageService(
		pageoutadapter.NewYAMLPageSource(fsys, content.PageFile),
		logger.With("module", "page"),
	))

	return &App{
		Config:       cfg,
		Logger:       logger,
		DialogCLI:    dialoginadapter.NewCLIHandler(dialogUC),
		DialogTUI:    dialoginadapter.NewTUIHandler(dialogUC),
		ParticlesTUI: particlesinadapter.NewTUIHandler(particlesUC),
		CardsCLI:     cardsinadapter.NewCLIHandler(cardsUC),
		CardsTUI:     cardsinadapter.NewTUIHandler(cardsUC),
		PageCLI:      pageinadapter.NewCLIHandler(pageUC),
		PageTUI:      pageinadapter.NewTUIHandler(pageUC),
	}
}

// NewModel builds the root TUI model from the wired handlers.
func NewModel(app *App, clk clock.Clock) uiapp.Model {
	return uiapp.NewModel(
		uiapp.Ports{
			Page:      app.PageTUI,
			Cards:     app.CardsTUI,
			Particles: app.ParticlesTUI,
			Dialog:    app.DialogTUI,
		},
		uiapp.Options{
			CellWidthPx:   app.Config.CellWidthPx,
			CellHeightPx:  app.Config.CellHeightPx,
			ParticleCount: app.Config.ParticleCount,
			SphereRadius:  app.Config.SphereRadius,
			FramePeriod:   app.Config.FramePeriod(),
			Clock:         clk,
			Logger:        app.Logger,
		},
	)
}

func RunTUI(app *App) error {
	program := tea.NewProgram(NewModel(app, clock.SystemClock{}), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
