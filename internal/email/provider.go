package email

// Provider sends email. Delivery is best effort: the lifecycle manager
// never fails a transition because a mail could not be sent.
type Provider interface {
	Send(email *Email) error
	Close() error
}
