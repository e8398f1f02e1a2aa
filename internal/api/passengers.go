package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mohinik7/Metro-Route-Optimization/internal/model"
	"github.com/mohinik7/Metro-Route-Optimization/internal/planner"
	"github.com/mohinik7/Metro-Route-Optimization/internal/session"
)

type createPassengerRequest struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Phone int64  `json:"phone"`
}

type tripRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type changeRequest struct {
	Start       string `json:"start"`
	Midway      string `json:"midway"`
	Destination string `json:"destination"`
}

func (s *Server) handleCreatePassenger(w http.ResponseWriter, r *http.Request) {
	var req createPassengerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Name == "" || req.Age < 0 {
		badRequest(w, "name is required and age must not be negative")
		return
	}

	sess := s.Sessions.Create(model.NewPassenger(req.Name, req.Age, req.Phone))
	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.Sessions.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) handleGetPassenger(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleBill(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	bill, err := s.Planner.GenerateBill(sess.Passenger, req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	if bill.Found {
		sess.SetBill(bill.Amount)
	}
	writeJSON(w, http.StatusOK, billResponse(bill))
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	t, err := s.Planner.MinimalTransfer(sess.Passenger, req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	if t.Bill.Found {
		sess.SetBill(t.Bill.Amount)
	}

	resp := transferResponse(t)
	resp.Billed = sess.Bill()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChange(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	c, err := s.Planner.ChangeRoute(sess.Passenger, req.Start, req.Midway, req.Destination)
	if err != nil {
		writeError(w, err)
		return
	}

	// the leg's own bill is recorded first and then replaced by the two-leg sum
	if c.Leg.Bill.Found {
		sess.SetBill(c.Leg.Bill.Amount)
	}
	if c.Found {
		sess.SetBill(c.Amount)
	}

	resp := model.ChangeResponse{
		OnPath:    c.OnPath,
		Leg:       transferResponse(c.Leg),
		FirstLeg:  c.FirstLeg,
		SecondLeg: c.SecondLeg,
		Amount:    c.Amount,
		Found:     c.Found,
		Billed:    sess.Bill(),
	}
	if !c.OnPath {
		resp.Warning = planner.ErrMidwayOffRoute.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func billResponse(b planner.Bill) model.BillResponse {
	return model.BillResponse{
		ID:        b.ID.String(),
		Found:     b.Found,
		Passenger: b.Passenger,
		Phone:     b.Phone,
		From:      b.From,
		To:        b.To,
		Path:      b.Path,
		Amount:    b.Amount,
	}
}

func transferResponse(t planner.Transfer) model.TransferResponse {
	resp := model.TransferResponse{
		RouteResponse: routeResponse(t.Route),
		Quote:         t.Quote,
	}
	if t.Found {
		resp.Bill = billResponse(t.Bill)
	}
	return resp
}
