package usecases

// EmailSender delivers a rendered notification to a user's mailbox.
// Implemented by the SMTP adapter.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}
