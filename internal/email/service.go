package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/healthlab/portal-api/internal/model"
)

type Service interface {
	SendBookingConfirmation(ctx context.Context, patient *model.Patient, booking *model.Booking) error
}

type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	Enabled  bool   `mapstructure:"enabled"`
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewService(cfg Config) Service {
	if !cfg.Enabled {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendBookingConfirmation(ctx context.Context, patient *model.Patient, booking *model.Booking) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", patient.Email)
	m.SetHeader("Subject", "Your lab test is booked")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\n%s has been scheduled for %s.\nPrice: $%.2f\n\nCheck your bookings for details.\n",
		patient.FirstName,
		booking.TestName,
		booking.ScheduledDate.Format("Jan 2, 2006"),
		booking.Price,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

type noopService struct{}

func (s *noopService) SendBookingConfirmation(ctx context.Context, patient *model.Patient, booking *model.Booking) error {
	return nil
}
