// Package mailqueue moves account mails between the API and the mail worker
// over RabbitMQ.
package mailqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, msg domain.MailMessage) error
}

// Template names the html file and subject a mail type is rendered with.
type Template struct {
	File    string
	Subject string
}

var templates = map[string]Template{
	domain.MailCreateUser:     {File: "new_user_email.html", Subject: "RoadSaver - Your account"},
	domain.MailCreateEmployee: {File: "new_employee_email.html", Subject: "RoadSaver - Your employee account"},
	domain.MailAccountStatus:  {File: "account_status_email.html", Subject: "RoadSaver - Account status changed"},
}

func TemplateFor(mailType string) (Template, bool) {
	t, ok := templates[mailType]
	return t, ok
}

// Types lists the mail types the worker can render.
func Types() []string {
	return []string{domain.MailCreateUser, domain.MailCreateEmployee, domain.MailAccountStatus}
}

// DeclareQueue declares the durable queue shared by the publisher and the
// worker.
func DeclareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
}

func Encode(msg domain.MailMessage) (amqp.Publishing, error) {
	if _, ok := TemplateFor(msg.Type); !ok {
		return amqp.Publishing{}, fmt.Errorf("unsupported mail type %q", msg.Type)
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}, nil
}

// Decode reads a queued message. Data is left as a generic map, which is all
// the html templates need.
func Decode(body []byte) (domain.MailMessage, error) {
	var msg domain.MailMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return msg, err
	}
	if _, ok := TemplateFor(msg.Type); !ok {
		return msg, fmt.Errorf("unsupported mail type %q", msg.Type)
	}
	return msg, nil
}

type AMQPPublisher struct {
	ch      *amqp.Channel
	queue   string
	timeout time.Duration
}

func NewAMQPPublisher(ch *amqp.Channel, queue string, timeout time.Duration) *AMQPPublisher {
	return &AMQPPublisher{ch: ch, queue: queue, timeout: timeout}
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg domain.MailMessage) error {
	publishing, err := Encode(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.ch.PublishWithContext(ctx, "", p.queue, false, false, publishing)
}
