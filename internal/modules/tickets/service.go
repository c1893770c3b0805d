package tickets

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/mailer"
	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/shared/apperr"
)

type Service struct {
	repo   *Repo
	mail   mailer.Service
	from   string
	logger *slog.Logger
}

func NewService(repo *Repo, mail mailer.Service, fromEmail string, logger *slog.Logger) *Service {
	return &Service{repo: repo, mail: mail, from: fromEmail, logger: logger}
}

// Resolve closes the ticket. It drops out of the default (open) list view
// on the next refetch but stays visible under status=all.
func (s *Service) Resolve(ctx context.Context, id string) error {
	if err := s.repo.UpdateStatus(ctx, id, StatusClosed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundErr("Ticket not found.")
		}
		return apperr.Wrap(err)
	}
	return nil
}

type AddActivityInput struct {
	Message   string `json:"message" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=inbound outbound"`
	Sender    string `json:"sender"`
}

// AddActivity appends a message to the ticket timeline. Outbound messages
// are also mailed to the requester; a mail failure is logged, not surfaced,
// since the activity row is already the source of truth.
func (s *Service) AddActivity(ctx context.Context, ticketID string, in AddActivityInput) (Activity, error) {
	t, err := s.repo.Get(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Activity{}, apperr.NotFoundErr("Ticket not found.")
		}
		return Activity{}, apperr.Wrap(err)
	}

	a, err := s.repo.InsertActivity(ctx, Activity{
		TicketID:  ticketID,
		Message:   in.Message,
		Direction: in.Direction,
		Sender:    in.Sender,
	})
	if err != nil {
		return Activity{}, apperr.Wrap(err)
	}

	if in.Direction == DirectionOutbound && t.RequesterEmail != "" && s.mail != nil {
		err := s.mail.Send(ctx, mailer.Email{
			From:     s.from,
			To:       []string{t.RequesterEmail},
			Subject:  "Re: " + t.Subject,
			TextBody: in.Message,
		})
		if err != nil {
			s.logger.Error("ticket reply mail failed", "error", err, "ticket_id", ticketID)
		}
	}

	return a, nil
}
