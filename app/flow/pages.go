// Package flow decides which page the console shows next. It is the
// only place that branches on session presence and the admin flag;
// the UI renders whatever route comes back.
package flow

import (
	"github.com/rs/zerolog"

	"elite-motors/app/repo"
	"elite-motors/app/services"
)

type Route string

const (
	RouteHome     Route = "home"
	RouteLogin    Route = "login"
	RouteRegister Route = "register"
	RouteReset    Route = "reset"
	RouteProposal Route = "proposal"
	RouteAdmin    Route = "admin"
)

type Pages struct {
	Accounts  *services.AccountService
	Proposals *services.ProposalService
	Users     *repo.UserRepository
	Session   *repo.SessionRepository
	Log       zerolog.Logger
}

func NewPages(accounts *services.AccountService, proposals *services.ProposalService, users *repo.UserRepository, session *repo.SessionRepository, log zerolog.Logger) *Pages {
	return &Pages{Accounts: accounts, Proposals: proposals, Users: users, Session: session, Log: log}
}

// Negotiate is the landing-page entry action. A live session goes
// straight to the proposal form. With no session, a directory holding
// only the synthetic administrator means nobody ever registered, so
// the visitor is sent to registration; otherwise to login. (Directory
// cardinality is a first-run heuristic carried over from the original
// site, not a real flag.)
func (p *Pages) Negotiate() Route {
	if p.Session.Get() != nil {
		return RouteProposal
	}
	users := p.Users.All()
	if len(users) == 1 && p.Users.IsBuiltInAdmin(users[0]) {
		return RouteRegister
	}
	return RouteLogin
}

func (p *Pages) Login(email, password string) (Route, error) {
	u, err := p.Accounts.Login(email, password)
	if err != nil {
		return RouteLogin, err
	}
	if u.Admin {
		return RouteAdmin, nil
	}
	return RouteProposal, nil
}

func (p *Pages) Logout() Route {
	p.Accounts.Logout()
	return RouteLogin
}

func (p *Pages) Register(in services.RegisterInput) (Route, error) {
	if _, err := p.Accounts.Register(in); err != nil {
		return RouteRegister, err
	}
	return RouteProposal, nil
}

func (p *Pages) RequestPasswordReset(email string) error {
	return p.Accounts.RequestPasswordReset(email)
}

// ConfirmPasswordReset routes to login on success; the UI applies the
// configured display delay before actually switching.
func (p *Pages) ConfirmPasswordReset(newPassword, confirmPassword string) (Route, error) {
	if err := p.Accounts.ConfirmPasswordReset(newPassword, confirmPassword); err != nil {
		return RouteReset, err
	}
	return RouteLogin, nil
}

// SubmitProposal doubles as route protection: without a session the
// caller is bounced to login and the ledger is untouched.
func (p *Pages) SubmitProposal(vehicle, value, notes string) (Route, error) {
	u := p.Session.Get()
	if u == nil {
		p.Log.Warn().Msg("proposal submission without session, bouncing to login")
		return RouteLogin, services.ErrSessionRequired
	}
	if _, err := p.Proposals.Submit(*u, vehicle, value, notes); err != nil {
		return RouteProposal, err
	}
	return RouteHome, nil
}

// AdminProposals gates the ledger view on an administrator session.
func (p *Pages) AdminProposals() ([]services.ProposalRow, Route, error) {
	u := p.Session.Get()
	if u == nil || !u.Admin {
		return nil, RouteLogin, services.ErrAdminRequired
	}
	return p.Proposals.AdminListing(), RouteAdmin, nil
}

func (p *Pages) GoogleSignIn(credential string) (Route, error) {
	if _, err := p.Accounts.GoogleSignIn(credential); err != nil {
		return RouteLogin, err
	}
	return RouteProposal, nil
}
