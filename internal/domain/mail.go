package domain

const (
	MailCreateUser     = "create_user"
	MailCreateEmployee = "create_employee"
	MailAccountStatus  = "account_status"
)

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateAccountMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type AccountStatusMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Status   string `json:"status"`
}
