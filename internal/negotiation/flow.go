package negotiation

import (
	"errors"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

var ErrNoQuote = errors.New("no price quote has been received yet")

type Action string

const (
	ActionAccept         Action = "accept"
	ActionDecline        Action = "decline"
	ActionConfirmDecline Action = "confirm-decline"
	ActionDismissDecline Action = "dismiss-decline"
	ActionCancel         Action = "cancel"
	ActionConfirmCancel  Action = "confirm-cancel"
	ActionDismissCancel  Action = "dismiss-cancel"
	ActionClose          Action = "close"
	ActionOpen           Action = "open"
)

func (a Action) Valid() bool {
	switch a {
	case ActionAccept, ActionDecline, ActionConfirmDecline, ActionDismissDecline,
		ActionCancel, ActionConfirmCancel, ActionDismissCancel, ActionClose, ActionOpen:
		return true
	}
	return false
}

// SubmitQuote records a quote from the assigned employee. The first quote opens
// the dialog; after the requester declined once, the next quote is the revision.
func SubmitQuote(rec *Record, amount float64) error {
	host := NewRequestHost(&rec.Request)

	if rec.Dialog == nil {
		d := New(Quote{
			ServiceType:  rec.Request.Type,
			Amount:       amount,
			EmployeeName: rec.Request.EmployeeName,
		}, false, host)
		s := d.Snapshot()
		rec.Dialog = &s
		rec.Request.PriceQuote = &amount
		return nil
	}

	d := Restore(*rec.Dialog, host)
	if err := d.ReviseQuote(amount); err != nil {
		return err
	}
	s := d.Snapshot()
	rec.Dialog = &s
	rec.Request.PriceQuote = &amount
	return nil
}

// Apply runs one requester action against the record's dialog and returns the
// host so the caller can react to a cancellation.
func Apply(rec *Record, action Action) (*RequestHost, error) {
	if rec.Dialog == nil {
		return nil, ErrNoQuote
	}

	host := NewRequestHost(&rec.Request)
	d := Restore(*rec.Dialog, host)

	var err error
	switch action {
	case ActionAccept:
		err = d.Accept()
	case ActionDecline:
		err = d.Decline()
	case ActionConfirmDecline:
		err = d.ConfirmDecline()
	case ActionDismissDecline:
		err = d.DismissDecline()
	case ActionCancel:
		err = d.RequestCancel()
	case ActionConfirmCancel:
		err = d.ConfirmCancel()
	case ActionDismissCancel:
		err = d.DismissCancel()
	case ActionClose:
		d.Close()
	case ActionOpen:
		err = d.Open()
	default:
		err = ErrInvalidTransition
	}
	if err != nil {
		return nil, err
	}

	s := d.Snapshot()
	rec.Dialog = &s
	return host, nil
}

// Reassign hands the request to another employee after a final decline. The
// dialog is dropped; the new employee starts with a fresh quote.
func Reassign(rec *Record, employeeName, employeePhone string) {
	rec.Request.EmployeeName = employeeName
	rec.Request.EmployeePhone = employeePhone
	rec.Request.Status = domain.RequestPending
	rec.Request.PriceQuote = nil
	rec.Dialog = nil
}
