// Package seed fills a database with demo data.
package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
	"github.com/roadsaver-dev/account-manager/backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

type Store interface {
	CreateUser(ctx context.Context, user *domain.UserAccount) error
	CreateEmployee(ctx context.Context, employee *domain.EmployeeAccount) error
	ListSimulationEmployees(ctx context.Context) ([]*domain.SimulationEmployee, error)
	CreateSimulationEmployee(ctx context.Context, se *domain.SimulationEmployee) error
}

var (
	ErrMissingColumn = errors.New("roster is missing a required column")
	ErrEmptyRoster   = errors.New("roster has no rows")
)

const (
	columnNumber   = "employee_number"
	columnFullName = "full_name"
)

// ReadRoster parses a CSV simulation roster. The first row is a header
// naming at least the employee_number and full_name columns, in any order.
func ReadRoster(r io.Reader) ([]*domain.SimulationEmployee, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRoster(rows)
}

// ReadRosterXLSX reads the same layout from the first sheet of a workbook.
func ReadRosterXLSX(r io.Reader) ([]*domain.SimulationEmployee, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrEmptyRoster
	}
	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return parseRoster(rows)
}

// parseRoster skips rows with a blank name. Spreadsheet rows may be shorter
// than the header.
func parseRoster(rows [][]string) ([]*domain.SimulationEmployee, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyRoster
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	numberCol, ok := index[columnNumber]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, columnNumber)
	}
	nameCol, ok := index[columnFullName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, columnFullName)
	}

	var roster []*domain.SimulationEmployee
	for i, row := range rows[1:] {
		name := cellValue(row, nameCol)
		if name == "" {
			continue
		}
		number, err := strconv.Atoi(cellValue(row, numberCol))
		if err != nil || number <= 0 {
			return nil, fmt.Errorf("line %d: invalid employee number %q", i+2, cellValue(row, numberCol))
		}

		roster = append(roster, &domain.SimulationEmployee{EmployeeNumber: number, FullName: name})
	}

	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	return roster, nil
}

func cellValue(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ImportRoster inserts every row of a .csv or .xlsx roster file and returns how many were
// stored. A failing row is logged and skipped.
func ImportRoster(ctx context.Context, store Store, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	read := ReadRoster
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		read = ReadRosterXLSX
	}
	roster, err := read(file)
	if err != nil {
		return 0, err
	}

	cnt := 0
	for _, se := range roster {
		if err := store.CreateSimulationEmployee(ctx, se); err != nil {
			slog.Error("failed to insert simulation employee", "employeeNumber", se.EmployeeNumber, "error", err)
			continue
		}
		cnt++
	}
	return cnt, nil
}

// RandomUsers inserts n random users and returns how many were stored.
// Username clashes are expected with random names and are only logged.
func RandomUsers(ctx context.Context, store Store, n int, password, emailDomain string) int {
	cnt := 0
	for i := 0; i < n; i++ {
		user, err := utils.GenerateRandomUser(password, emailDomain)
		if err != nil {
			slog.Error("failed to generate user", "error", err)
			continue
		}
		if err := store.CreateUser(ctx, user); err != nil {
			slog.Error("failed to insert user", "username", user.Username, "error", err)
			continue
		}
		cnt++
	}
	return cnt
}

func RandomEmployees(ctx context.Context, store Store, n int, password, emailDomain string) int {
	cnt := 0
	for i := 0; i < n; i++ {
		employee, err := utils.GenerateRandomEmployee(password, emailDomain)
		if err != nil {
			slog.Error("failed to generate employee", "error", err)
			continue
		}
		if err := store.CreateEmployee(ctx, employee); err != nil {
			slog.Error("failed to insert employee", "username", employee.Username, "error", err)
			continue
		}
		cnt++
	}
	return cnt
}

// RandomSimulationEmployees appends n simulation employees numbered after the
// highest existing number.
func RandomSimulationEmployees(ctx context.Context, store Store, n int) (int, error) {
	existing, err := store.ListSimulationEmployees(ctx)
	if err != nil {
		return 0, err
	}
	next := 1
	for _, se := range existing {
		if se.EmployeeNumber >= next {
			next = se.EmployeeNumber + 1
		}
	}

	cnt := 0
	for i := 0; i < n; i++ {
		se := &domain.SimulationEmployee{EmployeeNumber: next, FullName: utils.GenerateRandomFullName()}
		if err := store.CreateSimulationEmployee(ctx, se); err != nil {
			slog.Error("failed to insert simulation employee", "employeeNumber", se.EmployeeNumber, "error", err)
			continue
		}
		next++
		cnt++
	}
	return cnt, nil
}
