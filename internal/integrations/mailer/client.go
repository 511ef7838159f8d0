package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP-клиент для отправки писем пользователям
// Доставка best-effort: вызывающий код (воркер) сам решает,
// считать ли сбой отправки фатальным для события
type Client struct {
	dialer *gomail.Dialer
	from   string
	log    Logger
}

// NewClient создает новый SMTP-клиент
func NewClient(host string, port int, username, password, from string, log Logger) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		log:    log,
	}
}

// Send отправляет письмо с темой subject и телом body на адрес to
func (c *Client) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := c.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	c.log.Info("Mailer: email sent to=%s subject=%q", to, subject)
	return nil
}
