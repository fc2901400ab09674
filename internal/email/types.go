package email

// Email is one outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
}

// SMTPConfig holds the dialer settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
