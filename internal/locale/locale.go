// Package locale holds the English and Bulgarian texts of the dashboard
// notifications.
package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Language string

const (
	English   Language = "en"
	Bulgarian Language = "bg"
)

func (l Language) Valid() bool {
	return l == English || l == Bulgarian
}

var english = []*i18n.Message{
	{ID: "success", Other: "Success"},
	{ID: "error", Other: "Error"},
	{ID: "users.load_failed", Other: "Failed to load users"},
	{ID: "users.created", Other: "User {{.Username}} created successfully"},
	{ID: "users.create_failed", Other: "Failed to create user"},
	{ID: "users.banned", Other: "{{.Username}} has been restricted from using the app"},
	{ID: "users.ban_failed", Other: "Failed to ban user"},
	{ID: "users.unbanned", Other: "{{.Username}}'s access has been restored"},
	{ID: "users.unban_failed", Other: "Failed to reinstate user access"},
	{ID: "employees.load_failed", Other: "Failed to load employees"},
	{ID: "employees.created", Other: "Employee created successfully"},
	{ID: "employees.create_failed", Other: "Failed to create employee"},
	{ID: "employees.suspended", Other: "{{.Username}} has been suspended"},
	{ID: "employees.activated", Other: "{{.Username}} has been activated"},
	{ID: "employees.deactivated", Other: "{{.Username}} has been marked inactive"},
	{ID: "employees.status_failed", Other: "Failed to update employee status"},
	{ID: "simulation.load_failed", Other: "Failed to load simulation employees"},
	{ID: "simulation.created", Other: "Simulation employee created successfully"},
	{ID: "simulation.create_failed", Other: "Failed to create simulation employee"},
	{ID: "simulation.deleted", Other: "Simulation employee deleted successfully"},
	{ID: "simulation.delete_failed", Other: "Failed to delete simulation employee"},
	{ID: "dashboard.load_failed", Other: "Failed to load dashboard statistics"},
	{ID: "accounts.username_taken", Other: "Username already exists"},
	{ID: "accounts.email_taken", Other: "Email already exists"},
}

var bulgarian = []*i18n.Message{
	{ID: "success", Other: "Успех"},
	{ID: "error", Other: "Грешка"},
	{ID: "users.load_failed", Other: "Неуспешно зареждане на потребителите"},
	{ID: "users.created", Other: "Потребителят {{.Username}} е създаден успешно"},
	{ID: "users.create_failed", Other: "Неуспешно създаване на потребител"},
	{ID: "users.banned", Other: "{{.Username}} вече няма достъп до приложението"},
	{ID: "users.ban_failed", Other: "Неуспешно блокиране на потребителя"},
	{ID: "users.unbanned", Other: "Достъпът на {{.Username}} е възстановен"},
	{ID: "users.unban_failed", Other: "Неуспешно възстановяване на достъпа"},
	{ID: "employees.load_failed", Other: "Неуспешно зареждане на служителите"},
	{ID: "employees.created", Other: "Служителят е създаден успешно"},
	{ID: "employees.create_failed", Other: "Неуспешно създаване на служител"},
	{ID: "employees.suspended", Other: "{{.Username}} е спрян"},
	{ID: "employees.activated", Other: "{{.Username}} е активиран"},
	{ID: "employees.deactivated", Other: "{{.Username}} е отбелязан като неактивен"},
	{ID: "employees.status_failed", Other: "Неуспешна промяна на статуса на служителя"},
	{ID: "simulation.load_failed", Other: "Неуспешно зареждане на симулационните служители"},
	{ID: "simulation.created", Other: "Симулационният служител е създаден успешно"},
	{ID: "simulation.create_failed", Other: "Неуспешно създаване на симулационен служител"},
	{ID: "simulation.deleted", Other: "Симулационният служител е изтрит успешно"},
	{ID: "simulation.delete_failed", Other: "Неуспешно изтриване на симулационен служител"},
	{ID: "dashboard.load_failed", Other: "Неуспешно зареждане на статистиката"},
	{ID: "accounts.username_taken", Other: "Потребителското име вече съществува"},
	{ID: "accounts.email_taken", Other: "Имейлът вече съществува"},
}

type Translator struct {
	bundle *i18n.Bundle
}

func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, english...); err != nil {
		return nil, err
	}
	if err := bundle.AddMessages(language.Bulgarian, bulgarian...); err != nil {
		return nil, err
	}
	return &Translator{bundle: bundle}, nil
}

// Translate falls back to the message ID when no text is registered for it.
func (t *Translator) Translate(lang Language, id string, data map[string]any) string {
	loc := i18n.NewLocalizer(t.bundle, string(lang), string(English))
	s, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return s
}
