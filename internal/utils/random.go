package utils

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/mozillazg/go-pinyin"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"Ivan", "Georgi", "Dimitar", "Nikolay", "Petar", "Hristo", "Stoyan", "Todor",
	"Maria", "Elena", "Desislava", "Ivanka", "Radostina", "Teodora", "Yana", "Milena",
}

var lastNames = []string{
	"Ivanov", "Georgiev", "Dimitrov", "Petrov", "Nikolov", "Hristov", "Stoyanov", "Todorov",
	"Angelov", "Iliev", "Kolev", "Popov", "Marinov", "Atanasov", "Yordanov", "Vasilev",
}

// Streamlined System transliteration of Bulgarian Cyrillic.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ж': "zh", 'з': "z",
	'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p",
	'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "sht", 'ъ': "a", 'ь': "y", 'ю': "yu", 'я': "ya",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

// UsernameBase turns a full name into lowercase latin letters. Han characters
// are spelled in pinyin and Bulgarian Cyrillic is transliterated.
func UsernameBase(fullName string) string {
	var b strings.Builder
	for _, r := range fullName {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		case unicode.Is(unicode.Han, r):
			if py := pinyin.LazyConvert(string(r), nil); len(py) > 0 {
				b.WriteString(py[0])
			}
		default:
			if s, ok := cyrillic[unicode.ToLower(r)]; ok {
				b.WriteString(s)
			}
		}
	}
	return b.String()
}

var digits = "0123456789"

func GenerateUsernameFromFullName(fullName string) string {
	username := UsernameBase(fullName)
	if username == "" {
		username = "user"
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}
	return username
}

func GenerateRandomPhoneNumber() string {
	phone := "+3598"
	for i := 0; i < 8; i++ {
		phone += string(digits[rand.Intn(len(digits))])
	}
	return phone
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

// GenerateRandomPassword draws from crypto/rand since the result is mailed
// out as a real credential.
func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	max := big.NewInt(int64(len(letters)))
	for i := range password {
		n, err := crand.Int(crand.Reader, max)
		if err != nil {
			panic(err)
		}
		password[i] = letters[n.Int64()]
	}
	return string(password)
}

var genders = []string{"male", "female"}

func GenerateRandomUser(password string, emailDomainName string) (*domain.UserAccount, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	status := domain.UserStatusActive
	if rand.Intn(10) == 0 {
		status = domain.UserStatusBanned
	}

	return &domain.UserAccount{
		ID:             uuid.New(),
		Username:       username,
		Email:          username + "@" + emailDomainName,
		PhoneNumber:    GenerateRandomPhoneNumber(),
		FullName:       fullName,
		Gender:         genders[rand.Intn(len(genders))],
		PasswordHash:   string(passwordHash),
		CreatedByAdmin: rand.Intn(2) == 0,
		Status:         status,
	}, nil
}

var roles = []domain.EmployeeRole{
	domain.EmployeeRoleTechnician,
	domain.EmployeeRoleSupervisor,
	domain.EmployeeRoleManager,
	domain.EmployeeRoleAdmin,
}

var employeeStatuses = []domain.EmployeeStatus{
	domain.EmployeeStatusActive,
	domain.EmployeeStatusInactive,
	domain.EmployeeStatusSuspended,
}

func GenerateRandomEmployee(password string, emailDomainName string) (*domain.EmployeeAccount, error) {
	realName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(realName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &domain.EmployeeAccount{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@" + emailDomainName,
		PhoneNumber:  GenerateRandomPhoneNumber(),
		Role:         roles[rand.Intn(len(roles))],
		Status:       employeeStatuses[rand.Intn(len(employeeStatuses))],
		RealName:     realName,
		PasswordHash: string(passwordHash),
	}, nil
}
