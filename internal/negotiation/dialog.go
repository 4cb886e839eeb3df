// Package negotiation drives the price quote dialog shown to a requester when
// the assigned employee quotes a price for a service request.
//
// The dialog resolves into exactly one of three outcomes: the quote is
// accepted, the revised quote is declined a second time, or the request is
// cancelled. All effects are reported through Callbacks; the dialog itself
// owns no remote calls.
package negotiation

import (
	"errors"

	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

var ErrInvalidTransition = errors.New("action not allowed in the current dialog state")

type State string

const (
	StateAwaitingFirstResponse State = "awaiting_first_response"
	StateAwaitingRevision      State = "awaiting_revision"
	StateRevisedQuoteShown     State = "revised_quote_shown"
	StateResolved              State = "resolved"
)

// Prompt is the confirmation sub-dialog currently stacked on top of the quote.
type Prompt string

const (
	PromptNone           Prompt = ""
	PromptDeclineConfirm Prompt = "decline_confirm"
	PromptCancelConfirm  Prompt = "cancel_confirm"
)

type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDeclined  Outcome = "declined"
	OutcomeCancelled Outcome = "cancelled"
)

// Callbacks is implemented by the host of the dialog.
type Callbacks interface {
	OnAccept()
	OnDecline(isSecondDecline bool)
	OnCancelRequest()
	OnClose()
}

type Quote struct {
	ServiceType  domain.ServiceType `json:"serviceType"`
	Amount       float64            `json:"amount"`
	EmployeeName string             `json:"employeeName"`
}

// Snapshot is the serialisable form of a Dialog.
type Snapshot struct {
	State   State   `json:"state"`
	Prompt  Prompt  `json:"prompt"`
	Outcome Outcome `json:"outcome"`
	Visible bool    `json:"visible"`
	Title   string  `json:"title"`
	Quote   Quote   `json:"quote"`
}

type Dialog struct {
	state   State
	prompt  Prompt
	outcome Outcome
	visible bool
	quote   Quote
	cb      Callbacks
}

// New opens the dialog for a quote. A quote that arrives after the requester
// already declined once is shown as a revised quote.
func New(quote Quote, hasDeclinedOnce bool, cb Callbacks) *Dialog {
	state := StateAwaitingFirstResponse
	if hasDeclinedOnce {
		state = StateRevisedQuoteShown
	}
	return &Dialog{
		state:   state,
		visible: true,
		quote:   quote,
		cb:      cb,
	}
}

func Restore(s Snapshot, cb Callbacks) *Dialog {
	return &Dialog{
		state:   s.State,
		prompt:  s.Prompt,
		outcome: s.Outcome,
		visible: s.Visible,
		quote:   s.Quote,
		cb:      cb,
	}
}

func (d *Dialog) Snapshot() Snapshot {
	return Snapshot{
		State:   d.state,
		Prompt:  d.prompt,
		Outcome: d.outcome,
		Visible: d.visible,
		Title:   d.Title(),
		Quote:   d.quote,
	}
}

func (d *Dialog) State() State     { return d.state }
func (d *Dialog) Prompt() Prompt   { return d.prompt }
func (d *Dialog) Outcome() Outcome { return d.outcome }
func (d *Dialog) Visible() bool    { return d.visible }
func (d *Dialog) Quote() Quote     { return d.quote }

func (d *Dialog) HasDeclinedOnce() bool {
	return d.state == StateAwaitingRevision || d.state == StateRevisedQuoteShown
}

func (d *Dialog) Title() string {
	if d.HasDeclinedOnce() {
		return "Revised Price Quote"
	}
	return "Price Quote Received"
}

func (d *Dialog) quoteShown() bool {
	return d.state == StateAwaitingFirstResponse || d.state == StateRevisedQuoteShown
}

func (d *Dialog) resolve(o Outcome) {
	d.state = StateResolved
	d.outcome = o
	d.prompt = PromptNone
	d.visible = false
}

func (d *Dialog) Accept() error {
	if !d.quoteShown() || d.prompt != PromptNone {
		return ErrInvalidTransition
	}
	d.cb.OnAccept()
	d.resolve(OutcomeAccepted)
	return nil
}

// Decline asks for confirmation the first time. Declining the revised quote is
// final and skips the confirmation step.
func (d *Dialog) Decline() error {
	if !d.quoteShown() || d.prompt != PromptNone {
		return ErrInvalidTransition
	}
	if d.state == StateRevisedQuoteShown {
		d.cb.OnDecline(true)
		d.resolve(OutcomeDeclined)
		return nil
	}
	d.prompt = PromptDeclineConfirm
	return nil
}

func (d *Dialog) ConfirmDecline() error {
	if d.prompt != PromptDeclineConfirm {
		return ErrInvalidTransition
	}
	d.prompt = PromptNone
	d.cb.OnDecline(false)
	d.state = StateAwaitingRevision
	return nil
}

func (d *Dialog) DismissDecline() error {
	if d.prompt != PromptDeclineConfirm {
		return ErrInvalidTransition
	}
	d.prompt = PromptNone
	return nil
}

// RequestCancel is available in every state but Resolved and takes over any
// confirmation already on screen.
func (d *Dialog) RequestCancel() error {
	if d.state == StateResolved {
		return ErrInvalidTransition
	}
	d.prompt = PromptCancelConfirm
	return nil
}

func (d *Dialog) ConfirmCancel() error {
	if d.prompt != PromptCancelConfirm {
		return ErrInvalidTransition
	}
	d.cb.OnCancelRequest()
	d.resolve(OutcomeCancelled)
	d.cb.OnClose()
	return nil
}

func (d *Dialog) DismissCancel() error {
	if d.prompt != PromptCancelConfirm {
		return ErrInvalidTransition
	}
	d.prompt = PromptNone
	return nil
}

// ReviseQuote shows the employee's new price after the first decline.
func (d *Dialog) ReviseQuote(amount float64) error {
	if d.state != StateAwaitingRevision {
		return ErrInvalidTransition
	}
	d.quote.Amount = amount
	d.state = StateRevisedQuoteShown
	d.visible = true
	return nil
}

// Close hides the dialog (outside click, escape). The request stays pending.
func (d *Dialog) Close() {
	if !d.visible {
		return
	}
	d.visible = false
	d.cb.OnClose()
}

func (d *Dialog) Open() error {
	if d.state == StateResolved {
		return ErrInvalidTransition
	}
	d.visible = true
	return nil
}
