package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "capacita/internal/modules/auth/adapter/in"
	authoutadapter "capacita/internal/modules/auth/adapter/out"
	authservice "capacita/internal/modules/auth/service"
	authusecase "capacita/internal/modules/auth/usecase"
	evaluationinadapter "capacita/internal/modules/evaluation/adapter/in"
	evaluationoutadapter "capacita/internal/modules/evaluation/adapter/out"
	evaluationservice "capacita/internal/modules/evaluation/service"
	evaluationusecase "capacita/internal/modules/evaluation/usecase"
	faqinadapter "capacita/internal/modules/faq/adapter/in"
	faqoutadapter "capacita/internal/modules/faq/adapter/out"
	faqservice "capacita/internal/modules/faq/service"
	faqusecase "capacita/internal/modules/faq/usecase"
	progressinadapter "capacita/internal/modules/progress/adapter/in"
	progressoutadapter "capacita/internal/modules/progress/adapter/out"
	progressservice "capacita/internal/modules/progress/service"
	progressusecase "capacita/internal/modules/progress/usecase"
	traininginadapter "capacita/internal/modules/training/adapter/in"
	trainingoutadapter "capacita/internal/modules/training/adapter/out"
	trainingservice "capacita/internal/modules/training/service"
	trainingusecase "capacita/internal/modules/training/usecase"
	userinadapter "capacita/internal/modules/user/adapter/in"
	useroutadapter "capacita/internal/modules/user/adapter/out"
	userservice "capacita/internal/modules/user/service"
	userusecase "capacita/internal/modules/user/usecase"
	viewerinadapter "capacita/internal/modules/viewer/adapter/in"
	vieweroutadapter "capacita/internal/modules/viewer/adapter/out"
	viewerservice "capacita/internal/modules/viewer/service"
	viewerusecase "capacita/internal/modules/viewer/usecase"
	"capacita/internal/platform/clock"
	"capacita/internal/platform/config"
	"capacita/internal/platform/httpapi"
	"capacita/internal/platform/kv"
	"capacita/internal/platform/schedule"
	uiapp "capacita/internal/ui/app"
)

type App struct {
	AuthCLI       authinadapter.CLIHandler
	TrainingCLI   traininginadapter.CLIHandler
	TrainingTUI   traininginadapter.TUIHandler
	ViewerCLI     viewerinadapter.CLIHandler
	ViewerTUI     viewerinadapter.TUIHandler
	ProgressCLI   progressinadapter.CLIHandler
	ProgressTUI   progressinadapter.TUIHandler
	EvaluationCLI evaluationinadapter.CLIHandler
	EvaluationTUI evaluationinadapter.TUIHandler
	FAQCLI        faqinadapter.CLIHandler
	FAQTUI        faqinadapter.TUIHandler
	UserCLI       userinadapter.CLIHandler

	// Notices receives every tracker and submission notice. Callers attach
	// a terminal writer or the TUI channel.
	Notices *progressoutadapter.FanoutNotifier

	cfg   config.Config
	store *kv.SQLiteStore
}

func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	clk := clock.SystemClock{}
	scheduler := schedule.SystemScheduler{}

	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	client := httpapi.New(cfg.API.BaseURL, cfg.API.Timeout, store, logger.Named("http"))

	authUC := authusecase.NewInteractor(authservice.NewAuthService(
		clk,
		authoutadapter.NewHTTPAuthAPI(client),
		authoutadapter.NewKVSessionStore(store),
		authoutadapter.NewJWTInspector(),
		logger.Named("auth"),
	))

	trainingUC := trainingusecase.NewInteractor(trainingservice.NewTrainingService(
		trainingoutadapter.NewHTTPTrainingAPI(client),
		trainingoutadapter.NewAuthRoleAdapter(authUC),
		logger.Named("training"),
	))

	notices := progressoutadapter.NewFanoutNotifier()
	progressAPI := progressoutadapter.NewHTTPProgressAPI(client)
	submitter := progressservice.NewSubmitter(
		progressAPI,
		progressoutadapter.NewAuthIdentityAdapter(authUC),
		notices,
		logger.Named("progress"),
	)
	tracker := progressservice.NewTracker(
		progressservice.TrackerConfig{DwellPeriod: cfg.Progress.DwellPeriod, DwellTotal: cfg.Progress.DwellTotal},
		submitter,
		progressAPI,
		store,
		scheduler,
		logger.Named("tracker"),
	)
	reports := progressservice.NewReportService(clk, submitter, progressoutadapter.NewMarkdownReportStore(cfg.HomeDir))
	progressUC := progressusecase.NewInteractor(tracker, submitter, reports, progressAPI)

	viewerUC := viewerusecase.NewInteractor(viewerservice.NewViewerService(
		vieweroutadapter.NewTrainingMaterialAdapter(trainingUC),
		vieweroutadapter.NewAssetCache(cfg.HomeDir, client),
		vieweroutadapter.NewLocalPDFReader(),
		vieweroutadapter.NewFFProbe(),
		vieweroutadapter.NewOSExternalLauncher(),
		vieweroutadapter.NewProgressTrackerAdapter(progressUC),
		logger.Named("viewer"),
	))

	evaluationUC := evaluationusecase.NewInteractor(evaluationservice.NewGateService(
		evaluationoutadapter.NewHTTPEvaluationAPI(client),
		evaluationoutadapter.NewProgressGateAdapter(progressUC),
		evaluationoutadapter.NewAuthLearnerAdapter(authUC),
		scheduler,
		clk,
		logger.Named("evaluation"),
	))

	faqUC := faqusecase.NewInteractor(faqservice.NewFAQService(
		faqoutadapter.NewHTTPFAQAPI(client),
		faqoutadapter.NewAuthRoleAdapter(authUC),
		logger.Named("faq"),
	))

	userUC := userusecase.NewInteractor(userservice.NewUserService(
		useroutadapter.NewHTTPUserAPI(client),
		useroutadapter.NewAuthRoleAdapter(authUC),
		logger.Named("user"),
	))

	return &App{
		AuthCLI:       authinadapter.NewCLIHandler(authUC),
		TrainingCLI:   traininginadapter.NewCLIHandler(trainingUC),
		TrainingTUI:   traininginadapter.NewTUIHandler(trainingUC),
		ViewerCLI:     viewerinadapter.NewCLIHandler(viewerUC),
		ViewerTUI:     viewerinadapter.NewTUIHandler(viewerUC),
		ProgressCLI:   progressinadapter.NewCLIHandler(progressUC),
		ProgressTUI:   progressinadapter.NewTUIHandler(progressUC),
		EvaluationCLI: evaluationinadapter.NewCLIHandler(evaluationUC),
		EvaluationTUI: evaluationinadapter.NewTUIHandler(evaluationUC),
		FAQCLI:        faqinadapter.NewCLIHandler(faqUC),
		FAQTUI:        faqinadapter.NewTUIHandler(faqUC),
		UserCLI:       userinadapter.NewCLIHandler(userUC),
		Notices:       notices,
		cfg:           cfg,
		store:         store,
	}, nil
}

// Close stops any running timers and releases the local store.
func (a *App) Close() error {
	_ = a.ViewerCLI.Close(context.Background())
	a.EvaluationTUI.Shutdown()
	return a.store.Close()
}

func RunTUI(app *App) error {
	channel := progressoutadapter.NewChannelNotifier(32)
	app.Notices.Attach(channel)
	model := uiapp.NewModel(uiapp.Ports{
		Training:   app.TrainingTUI,
		Viewer:     app.ViewerTUI,
		Tracker:    app.ProgressTUI,
		Progress:   app.ProgressTUI,
		Evaluation: app.EvaluationTUI,
		FAQ:        app.FAQTUI,
		Notices:    channel.Notices(),
		NoticeTTL:  app.cfg.Notice.TTL,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
