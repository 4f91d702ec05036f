package server

import (
	"bytes"
	"fmt"
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/render"
	"taskboard/internal/services"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderTodo(w, r, http.StatusOK, "")
}

// handleUpdate applies one form mutation and redirects back to the listing.
// Bad input re-renders the listing with the message and a 400.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeForm(w, r)
	if err == nil {
		_, err = s.api.Submit(r.Context(), payload)
	}
	if err != nil {
		s.logError(r, err)
		if errors.IsValidation(err) {
			s.renderTodo(w, r, http.StatusBadRequest, errors.GetUserMessage(err))
			return
		}
		http.Error(w, errors.GetUserMessage(err), statusFor(err))
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) renderTodo(w http.ResponseWriter, r *http.Request, status int, message string) {
	tasks, err := s.api.ListTasks(r.Context())
	if err != nil {
		s.logError(r, err)
		http.Error(w, errors.GetUserMessage(err), statusFor(err))
		return
	}

	var buf bytes.Buffer
	if err := render.Todo(&buf, render.TodoPage{Items: tasks, Error: message}); err != nil {
		s.logError(r, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := render.Hello(&buf, r.PathValue("name")); err != nil {
		s.logError(r, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.api.ListTasks(r.Context())
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeJSON(w, r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	result, err := s.api.Submit(r.Context(), payload)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	status := http.StatusOK
	if result.Action == domain.ActionAdd {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}

// handleDeleteTask backs the page script. Deleting an unknown id is not an
// error; the response reports affected 0.
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		s.writeErr(w, r, err)
		return
	}

	result, err := s.api.Submit(r.Context(), services.Payload{
		Action: domain.ActionDelete.String(),
		ID:     &id,
	})
	if err != nil {
		s.writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// errorResponse is the JSON body of every API error. Action names the
// rejected mutation when the dispatcher recorded one.
type errorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Action string `json:"action,omitempty"`
}

func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	s.logError(r, err)

	body := errorResponse{
		Error: errors.GetUserMessage(err),
		Code:  errors.GetErrorCode(err),
	}
	if appErr, ok := errors.AsAppError(err); ok {
		if action, ok := appErr.GetContext("action"); ok {
			body.Action = fmt.Sprint(action)
		}
	}
	writeJSON(w, statusFor(err), body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := render.JSON(&buf, v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// statusFor maps the error taxonomy onto HTTP status codes: bad input is a
// 400, anything from the store a 500.
func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logError(r *http.Request, err error) {
	logger := logging.FromContext(r.Context(), s.logger)

	var value any = err.Error()
	if appErr, ok := errors.AsAppError(err); ok {
		value = appErr
	}
	if !errors.ShouldLogError(err) {
		logger.Debug("request rejected", "error", value)
		return
	}
	logger.Error("request failed", "error", value)
}
