package notification

import (
	"context"
	"fmt"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotifier sends booking confirmations over SMTP. Delivery is best
// effort: every failure ends in a log line, never in the caller's error
// path.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailNotifier(host string, port int, username, password, from string, logger logger.Logger) *EmailNotifier {
	if host == "" {
		logger.Warn("smtp host is empty, notifications disabled")
		return &EmailNotifier{dialer: nil, from: from, logger: logger}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

func (n *EmailNotifier) BookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking, space *domain.Coworkingspace) {
	subject := fmt.Sprintf("Your Booking Confirmation - %s", booking.ID)
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for reserving co-working space with us. We are pleased to confirm your reservation for the following details:\n"+
			"    Booking ID: %s\n"+
			"    Co-working space: %s\n"+
			"    Co-working space Address: %s, %s, %s\n"+
			"    Operating Hours: %s\n"+
			"    Number of Rooms: %d\n"+
			"    Booking Date: %s\n\n"+
			"We kindly ask that you review the details above to ensure that everything is accurate. "+
			"If you notice any discrepancies, please do not hesitate to contact us at %s.\n\n"+
			"Sincerely,\n",
		user.Name,
		booking.ID,
		space.Name,
		space.Address, space.Province, space.Tel,
		space.OperatingHours,
		booking.NumOfRooms,
		booking.BookingDate.Format("02/01/2006"),
		n.from,
	)

	n.send(ctx, user.Email, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("notification skipped (smtp disabled)", logger.String("to", to))
		return
	}

	if to == "" {
		n.logger.Debug("notification skipped (no recipient address)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("to", to))
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("failed to send booking email",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
	}
}
