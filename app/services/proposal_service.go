package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"elite-motors/app/models"
	"elite-motors/app/money"
	"elite-motors/app/repo"
)

// display timestamp, pt-BR day-first
const timestampLayout = "02/01/2006, 15:04:05"

// ProposalRow is a ledger entry joined with the submitter's phone for
// the admin listing. The phone is looked up at render time, not stored
// on the proposal.
type ProposalRow struct {
	models.Proposal
	Phone string
}

type ProposalService struct {
	proposals *repo.ProposalRepository
	users     *repo.UserRepository
	log       zerolog.Logger
	now       func() time.Time
}

func NewProposalService(proposals *repo.ProposalRepository, users *repo.UserRepository, log zerolog.Logger) *ProposalService {
	return &ProposalService{proposals: proposals, users: users, log: log, now: time.Now}
}

// Submit appends a proposal snapshot for u. The currency string and
// timestamp are rendered here, once, and stored as-is.
func (s *ProposalService) Submit(u models.User, vehicle, rawValue, notes string) (*models.Proposal, error) {
	vehicle = strings.TrimSpace(vehicle)
	rawValue = strings.TrimSpace(rawValue)
	if vehicle == "" || rawValue == "" {
		return nil, ErrMissingFields
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(rawValue, ",", "."), 64)
	if err != nil {
		return nil, ErrInvalidValue
	}
	ts := s.now()
	p := models.Proposal{
		ID:        ts.UnixMilli(),
		CreatedAt: ts.Format(timestampLayout),
		Vehicle:   vehicle,
		Value:     money.FormatBRL(value),
		Notes:     strings.TrimSpace(notes),
		Email:     u.Email,
		Admin:     u.Admin,
	}
	if err := s.proposals.Add(p); err != nil {
		return nil, err
	}
	s.log.Info().Str("vehicle", p.Vehicle).Str("value", p.Value).Str("email", p.Email).Msg("proposal submitted")
	return &p, nil
}

// AdminListing returns the full ledger, oldest first, each row joined
// against the directory by submitter email.
func (s *ProposalService) AdminListing() []ProposalRow {
	proposals := s.proposals.All()
	rows := make([]ProposalRow, 0, len(proposals))
	for _, p := range proposals {
		row := ProposalRow{Proposal: p}
		if u := s.users.FindByEmail(p.Email); u != nil {
			row.Phone = u.Phone
		}
		rows = append(rows, row)
	}
	return rows
}
