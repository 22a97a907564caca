package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/sales-admin/internal/app"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/models"
)

// appModel routes between screens. Which of the loading, login and home
// screens is shown is decided by the session alone.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	buildInfo models.BuildInfo
	sessions  <-chan models.Session

	screen  screen
	session models.Session

	loading loadingModel
	login   loginModel
	home    homeModel
	list    listModel
	wizard  wizardModel

	// loginNotice survives the login screen being rebuilt by a later
	// session update.
	loginNotice string

	showBuildInfo bool
	overlay       *errorOverlayModel
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.BuildInfo, sessions <-chan models.Session) appModel {
	return appModel{
		ctx:       ctx,
		services:  services,
		buildInfo: buildInfo,
		sessions:  sessions,
		screen:    screenLoading,
		loading:   newLoadingModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), waitForSession(m.sessions), m.cmdBootstrap())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.overlay != nil {
			if key.Matches(msg, keys.enter, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.version) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.screen == screenHome {
			switch {
			case key.Matches(msg, keys.version):
				m.showBuildInfo = true
				return m, nil
			case key.Matches(msg, keys.quit):
				m.quitByUser = true
				return m, tea.Quit
			}
		}

	case sessionMsg:
		if !msg.ok {
			return m, nil
		}
		m.session = msg.session
		return m.route(), waitForSession(m.sessions)

	case bootstrapDoneMsg:
		if msg.err != nil && m.ctx.Err() == nil {
			m.overlay = &errorOverlayModel{message: humanize(msg.err)}
		}
		return m, nil

	case sessionEndedMsg:
		m.loginNotice = app.MsgSessionExpired
		m.login.notice = m.loginNotice
		return m, nil

	case logoutDoneMsg:
		m.loginNotice = app.MsgLoggedOut
		m.login.notice = m.loginNotice
		return m, nil

	case navigateMsg:
		return m.navigate(msg)
	}

	return m.updateScreen(msg)
}

// route picks the screen for the current session. Protected screens are
// never shown unless the session is logged in.
func (m appModel) route() appModel {
	switch {
	case !m.session.IsInitialized:
		m.screen = screenLoading
	case !m.session.IsLoggedIn:
		if m.screen != screenLogin {
			m.login = newLoginModel(m.ctx, m.services.Sessions)
			m.login.notice = m.loginNotice
			m.screen = screenLogin
		}
		m.showBuildInfo = false
	default:
		if m.screen == screenLoading || m.screen == screenLogin {
			m.home = newHomeModel(m.ctx, m.services)
			m.screen = screenHome
		}
		m.loginNotice = ""
	}
	return m
}

func (m appModel) navigate(msg navigateMsg) (tea.Model, tea.Cmd) {
	if !m.session.IsLoggedIn {
		return m, nil
	}

	switch msg.to {
	case screenHome:
		m.home = newHomeModel(m.ctx, m.services)
		m.home.notice = msg.notice
		m.screen = screenHome
		return m, nil

	case screenList:
		m.list = newListModel(m.ctx, msg.kind, m.services.Entities)
		m.list.notice = msg.notice
		m.screen = screenList
		return m, m.list.Init()

	case screenWizard:
		drafts := m.services.Drafts(msg.kind)
		if drafts == nil {
			m.overlay = &errorOverlayModel{message: humanize(models.ErrUnknownEntityKind)}
			return m, nil
		}
		var cmd tea.Cmd
		m.wizard, cmd = newWizardModel(m.ctx, msg, drafts, m.services.Entities)
		m.screen = screenWizard
		return m, cmd
	}

	return m, nil
}

func (m appModel) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLoading:
		m.loading, cmd = m.loading.Update(msg)
	case screenLogin:
		m.login, cmd = m.login.Update(msg)
	case screenHome:
		m.home, cmd = m.home.Update(msg)
	case screenList:
		m.list, cmd = m.list.Update(msg)
	case screenWizard:
		m.wizard, cmd = m.wizard.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.screen {
	case screenLogin:
		return m.login.View()
	case screenHome:
		return m.home.View()
	case screenList:
		return m.list.View()
	case screenWizard:
		return m.wizard.View()
	default:
		return m.loading.View()
	}
}

func (m appModel) cmdBootstrap() tea.Cmd {
	ctx, sessions := m.ctx, m.services.Sessions
	return func() tea.Msg {
		return bootstrapDoneMsg{err: sessions.Bootstrap(ctx)}
	}
}

func waitForSession(ch <-chan models.Session) tea.Cmd {
	return func() tea.Msg {
		session, ok := <-ch
		return sessionMsg{session: session, ok: ok}
	}
}
