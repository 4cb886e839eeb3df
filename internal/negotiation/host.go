package negotiation

import "github.com/roadsaver-dev/account-manager/backend/internal/domain"

// RequestHost applies the dialog's signals to the ongoing request it belongs
// to. A second decline blacklists the assigned employee for this request.
type RequestHost struct {
	Request   *domain.OngoingRequest
	Cancelled bool
	Closed    bool
}

func NewRequestHost(req *domain.OngoingRequest) *RequestHost {
	return &RequestHost{Request: req}
}

func (h *RequestHost) OnAccept() {
	h.Request.Status = domain.RequestAccepted
}

func (h *RequestHost) OnDecline(isSecondDecline bool) {
	if !isSecondDecline {
		// the employee gets one chance to revise the price
		h.Request.Status = domain.RequestPending
		return
	}
	if !h.Request.HasDeclined(h.Request.EmployeeName) {
		h.Request.DeclinedEmployees = append(h.Request.DeclinedEmployees, h.Request.EmployeeName)
	}
	h.Request.Status = domain.RequestDeclined
}

func (h *RequestHost) OnCancelRequest() {
	h.Cancelled = true
}

func (h *RequestHost) OnClose() {
	h.Closed = true
}
