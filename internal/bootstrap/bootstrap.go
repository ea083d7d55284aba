package bootstrap

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	admininadapter "lbtui/internal/modules/admin/adapter/in"
	adminoutadapter "lbtui/internal/modules/admin/adapter/out"
	adminusecase "lbtui/internal/modules/admin/usecase"
	authinadapter "lbtui/internal/modules/auth/adapter/in"
	authoutadapter "lbtui/internal/modules/auth/adapter/out"
	authin "lbtui/internal/modules/auth/port/in"
	authservice "lbtui/internal/modules/auth/service"
	authusecase "lbtui/internal/modules/auth/usecase"
	practiceinadapter "lbtui/internal/modules/practice/adapter/in"
	practiceoutadapter "lbtui/internal/modules/practice/adapter/out"
	practicein "lbtui/internal/modules/practice/port/in"
	practiceservice "lbtui/internal/modules/practice/service"
	practiceusecase "lbtui/internal/modules/practice/usecase"
	progressinadapter "lbtui/internal/modules/progress/adapter/in"
	progressoutadapter "lbtui/internal/modules/progress/adapter/out"
	progressin "lbtui/internal/modules/progress/port/in"
	progressusecase "lbtui/internal/modules/progress/usecase"
	"lbtui/internal/platform/clock"
	"lbtui/internal/platform/config"
	"lbtui/internal/platform/httpapi"
	"lbtui/internal/platform/id"
	"lbtui/internal/platform/logging"
	uiapp "lbtui/internal/ui/app"
)

type App struct {
	AuthCLI     authinadapter.CLIHandler
	PracticeCLI practiceinadapter.CLIHandler
	ProgressCLI progressinadapter.CLIHandler
	AdminCLI    admininadapter.CLIHandler

	cfg        config.Config
	log        *slog.Logger
	closeLog   func() error
	authUC     authin.Usecase
	practiceUC practicein.Usecase
	progressUC progressin.Usecase
}

func New(cfg config.Config) (*App, error) {
	log, closeLog, err := logging.New(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	clk := clock.SystemClock{}
	ids := id.UUID{}

	// User-facing endpoints and admin endpoints ride separate clients so
	// each carries its own credential; a 401 on one clears only that one.
	userStore := authoutadapter.NewFileCredentialStore(cfg.DataDir, cfg.CredentialPath())
	adminStore := authoutadapter.NewFileCredentialStore(cfg.DataDir, cfg.AdminCredentialPath())
	userClient := httpapi.New(cfg.APIBaseURL, cfg.RequestTimeout, authoutadapter.NewStoreTokenSource(userStore), log)
	adminClient := httpapi.New(cfg.APIBaseURL, cfg.RequestTimeout, authoutadapter.NewStoreTokenSource(adminStore), log)

	authUC := authusecase.NewInteractor(
		authservice.NewCredentialService(userStore),
		authoutadapter.NewHTTPAuthAPI(userClient),
	)

	history, err := practiceoutadapter.NewSQLiteHistoryStore(cfg.HistoryDBPath())
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("open history store: %w", err)
	}
	practiceUC := practiceusecase.NewInteractor(
		practiceservice.NewPracticeService(clk, ids),
		practiceoutadapter.NewHTTPPracticeAPI(userClient),
		practiceoutadapter.NewFileActiveQuestionStore(cfg.DataDir),
		history,
		log,
		cfg.LessonID,
	)

	progressUC := progressusecase.NewInteractor(progressoutadapter.NewHTTPProgressAPI(userClient), log)

	adminUC := adminusecase.NewInteractor(adminStore, adminoutadapter.NewHTTPAdminAPI(adminClient))

	return &App{
		AuthCLI:     authinadapter.NewCLIHandler(authUC),
		PracticeCLI: practiceinadapter.NewCLIHandler(practiceUC),
		ProgressCLI: progressinadapter.NewCLIHandler(progressUC),
		AdminCLI:    admininadapter.NewCLIHandler(adminUC),
		cfg:         cfg,
		log:         log,
		closeLog:    closeLog,
		authUC:      authUC,
		practiceUC:  practiceUC,
		progressUC:  progressUC,
	}, nil
}

func (a *App) Close() error {
	if a.closeLog != nil {
		return a.closeLog()
	}
	return nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.authUC,
		app.progressUC,
		app.practiceUC,
		app.practiceUC,
		app.progressUC,
		uiapp.Options{
			AutoAdvance:        app.cfg.AutoAdvance,
			AdvanceDelay:       int(app.cfg.AdvanceDelay.Milliseconds()),
			RefreshAfterAnswer: app.cfg.RefreshAfterAnswer,
		},
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
