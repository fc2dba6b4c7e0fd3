package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/service"
	"github.com/MKhiriev/go-xref/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("tui: services are required")

// Options tune the screens.
type Options struct {
	// Mode selects the identity the UI runs as.
	Mode           models.Role
	Debounce       time.Duration
	SearchPageSize int
}

type TUI struct {
	services  *service.ClientServices
	opts      Options
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, opts Options, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	if opts.Mode != models.RoleAdmin {
		opts.Mode = models.RoleUser
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}
	if opts.SearchPageSize < 1 {
		opts.SearchPageSize = models.DefaultSearchPageSize
	}
	return &TUI{services: services, opts: opts, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	session := t.session()
	sessions, unsubscribe := session.Subscribe()
	defer unsubscribe()

	root := NewRootModel(t.pages(ctx), pageHome, t.opts.Mode, sessions, t.buildInfo, cmdLoadSession(ctx, session))

	t.logger.Info().Str("mode", string(t.opts.Mode)).Msg("starting terminal UI")
	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

func (t *TUI) session() service.SessionManager {
	if t.opts.Mode == models.RoleAdmin {
		return t.services.AdminSession
	}
	return t.services.UserSession
}

// pages registers the screens of the current mode. Protected screens are
// wrapped in a guard of the matching identity.
func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	session := t.session()

	pages := map[string]tea.Model{
		pageHome: NewMenuModel(ctx, session),
	}

	if t.opts.Mode == models.RoleAdmin {
		pages[pageAdminLogin] = newLoginForm(ctx, session)
		pages[pageDashboard] = newGuardedModel(ctx, s.AdminGuard, NewDashboardModel(ctx, s.Admin, t.opts.Debounce))
		pages[pageParts] = newGuardedModel(ctx, s.AdminGuard, NewPartsModel(ctx, s.Admin, t.opts.Debounce))
		return pages
	}

	pages[pageLogin] = newLoginForm(ctx, session)
	pages[pageSignup] = newSignupForm(ctx, s.Account)
	pages[pageForgot] = newForgotPasswordForm(ctx, s.Account)
	pages[pageReset] = newResetPasswordForm(ctx, s.Account)
	pages[pageVerify] = newVerifyEmailForm(ctx, s.Account)
	pages[pageContact] = newContactForm(ctx, s.Account)
	pages[pageSearch] = NewSearchModel(ctx, s.Search, t.opts.SearchPageSize)
	pages[pagePlans] = NewPlansModel(ctx, s.Account)
	pages[pageProfile] = newGuardedModel(ctx, s.UserGuard, NewProfileModel(ctx, session))
	pages[pageDeleteAccount] = newGuardedModel(ctx, s.UserGuard, newDeleteAccountForm(ctx, s.Account))
	return pages
}

func cmdLoadSession(ctx context.Context, session service.SessionManager) tea.Cmd {
	return func() tea.Msg {
		return sessionMsg{session: session.Load(ctx)}
	}
}
