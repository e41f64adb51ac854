package email

// Message is a plain outbound email.
type Message struct {
	From    string
	ReplyTo string
	To      string
	Subject string
	Body    string
}

// Mailer sends messages; the contact service depends on this interface
// so tests can substitute a fake.
type Mailer interface {
	Send(msg *Message) error
}
