package main

import (
	"context"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/roadsaver-dev/account-manager/backend/internal/config"
	"github.com/roadsaver-dev/account-manager/backend/internal/mailqueue"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * config
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * templates
	 **********************************************/
	templates, err := loadTemplates(cfg.Email.TemplateDir)
	if err != nil {
		logger.Error("failed to parse mail templates", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * smtp client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	dialCtx, cancelDial := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancelDial()
	if err := client.DialWithContext(dialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := mailqueue.DeclareQueue(ch, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Error("failed to declare queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // broker assigned consumer tag
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to consume queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				deliver(logger, cfg, client, templates, msg)
			}
		}
	}()

	logger.Info("waiting for messages (press CTRL+C to quit)")
	<-sigChan

	slog.Info("shutting down mail worker")
	cancel()
	wg.Wait()
	slog.Info("mail worker stopped")
}

// loadTemplates parses every known mail template up front so a broken file
// stops the worker at startup.
func loadTemplates(dir string) (map[string]*template.Template, error) {
	out := make(map[string]*template.Template)
	for _, mailType := range mailqueue.Types() {
		t, _ := mailqueue.TemplateFor(mailType)
		tmpl, err := template.ParseFiles(filepath.Join(dir, t.File))
		if err != nil {
			return nil, err
		}
		out[mailType] = tmpl
	}
	return out, nil
}

func deliver(logger *slog.Logger, cfg *config.Config, client *mail.Client, templates map[string]*template.Template, msg amqp.Delivery) {
	mailMessage, err := mailqueue.Decode(msg.Body)
	if err != nil {
		logger.Error("failed to decode mail message", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}
	logger.Info("received mail message", slog.String("type", mailMessage.Type), slog.String("to", mailMessage.To))

	tmpl, ok := templates[mailMessage.Type]
	if !ok {
		logger.Error("unsupported mail type", slog.String("type", mailMessage.Type))
		_ = msg.Nack(false, false)
		return
	}
	t, _ := mailqueue.TemplateFor(mailMessage.Type)

	m := mail.NewMsg()
	if err := m.From(cfg.Email.SMTP.Username); err != nil {
		logger.Error("failed to set sender", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}
	if err := m.To(mailMessage.To); err != nil {
		logger.Error("failed to set recipient", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}
	if err := m.SetBodyHTMLTemplate(tmpl, mailMessage.Data); err != nil {
		logger.Error("failed to render mail body", slog.String("error", err.Error()))
		_ = msg.Nack(false, false)
		return
	}
	m.Subject(t.Subject)

	if err := client.DialAndSend(m); err != nil {
		logger.Error("failed to send mail", slog.String("error", err.Error()))
		_ = msg.Nack(false, true) // requeue
		return
	}

	_ = msg.Ack(false)
}
