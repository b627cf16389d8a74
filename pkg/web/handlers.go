package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/aretw0/flatcms/pkg/auth"
	"github.com/aretw0/flatcms/pkg/core"
	"github.com/aretw0/flatcms/pkg/render"
)

// Handlers maps HTTP requests onto the document service and the session gate.
type Handlers struct {
	service  *core.Service
	gate     *auth.Gate
	pages    *render.Pages
	markdown *render.Markdown
	logger   *slog.Logger
}

// Index lists every document.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	s := h.gate.Load(w, r)

	names, err := h.service.ListDocuments(r.Context())
	if err != nil {
		h.logger.Error("failed to list documents", "error", err)
		s.AddFlash(msgUnavailable)
		h.render(w, s, http.StatusInternalServerError, render.PageIndex, "", render.IndexData{})
		return
	}

	h.render(w, s, http.StatusOK, render.PageIndex, "", render.IndexData{Names: names})
}

// View shows a single document. Markdown is rendered inside the site layout,
// anything else is served verbatim.
func (h *Handlers) View(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	doc, err := h.service.GetDocument(r.Context(), name)
	if err != nil {
		h.redirectMissing(w, r, name, err)
		return
	}

	if doc.Format != core.FormatMarkdown {
		w.Header().Set("Content-Type", core.ContentType(doc.Name))
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(doc.Content); err != nil {
			h.logger.Debug("failed to write document", "name", doc.Name, "error", err)
		}
		return
	}

	body, err := h.markdown.ToHTML(doc.Content)
	if err != nil {
		h.logger.Error("failed to render markdown", "name", doc.Name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s := h.gate.Load(w, r)
	h.render(w, s, http.StatusOK, render.PageDocument, doc.Name, render.DocumentData{
		Name: doc.Name,
		Body: template.HTML(body),
	})
}

// Edit shows the edit form for an existing document.
func (h *Handlers) Edit(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	doc, err := h.service.GetDocument(r.Context(), name)
	if err != nil {
		h.redirectMissing(w, r, name, err)
		return
	}

	s := h.gate.Load(w, r)
	h.render(w, s, http.StatusOK, render.PageEdit, "Edit "+doc.Name, render.EditData{
		Name:    doc.Name,
		Content: string(doc.Content),
	})
}

// Save overwrites a document with the submitted content.
func (h *Handlers) Save(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s := h.gate.Load(w, r)

	err := h.service.SaveDocument(r.Context(), name, []byte(r.PostFormValue("content")))
	switch {
	case err == nil:
		h.logger.Info("document updated", "name", name, "user", s.Username())
		s.AddFlash(fmt.Sprintf(msgUpdated, name))
	case errors.Is(err, core.ErrInvalidName):
		s.AddFlash(fmt.Sprintf(msgNotExist, name))
	default:
		h.logger.Error("failed to save document", "name", name, "error", err)
		s.AddFlash(msgUnavailable)
	}
	h.redirect(w, r, s, "/")
}

// NewDocument shows the creation form.
func (h *Handlers) NewDocument(w http.ResponseWriter, r *http.Request) {
	s := h.gate.Load(w, r)
	h.render(w, s, http.StatusOK, render.PageNew, "New Document", render.NewData{})
}

// Create adds an empty document named by the "filename" field.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	s := h.gate.Load(w, r)
	filename := r.PostFormValue("filename")

	name, err := h.service.CreateDocument(r.Context(), filename)
	if err == nil {
		h.logger.Info("document created", "name", name, "user", s.Username())
		s.AddFlash(fmt.Sprintf(msgCreated, name))
		h.redirect(w, r, s, "/")
		return
	}

	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, core.ErrAlreadyExists):
		s.AddFlash(fmt.Sprintf(msgExists, name))
	case errors.Is(err, core.ErrInvalidName) && strings.TrimSpace(filename) == "":
		s.AddFlash(msgNameRequired)
	case errors.Is(err, core.ErrInvalidName):
		s.AddFlash(fmt.Sprintf(msgBadName, filename))
	default:
		h.logger.Error("failed to create document", "name", filename, "error", err)
		s.AddFlash(msgUnavailable)
		status = http.StatusInternalServerError
	}
	h.render(w, s, status, render.PageNew, "New Document", render.NewData{Filename: filename})
}

// Delete removes a document. Missing documents are reported, not treated as failures.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	s := h.gate.Load(w, r)

	err := h.service.DeleteDocument(r.Context(), name)
	switch {
	case err == nil:
		h.logger.Info("document deleted", "name", name, "user", s.Username())
		s.AddFlash(fmt.Sprintf(msgDeleted, name))
	case errors.Is(err, core.ErrNotFound):
		s.AddFlash(fmt.Sprintf(msgNotExist, name))
	default:
		h.logger.Error("failed to delete document", "name", name, "error", err)
		s.AddFlash(msgUnavailable)
	}
	h.redirect(w, r, s, "/")
}

// SignInForm shows the sign-in form.
func (h *Handlers) SignInForm(w http.ResponseWriter, r *http.Request) {
	s := h.gate.Load(w, r)
	h.render(w, s, http.StatusOK, render.PageSignIn, "Sign In", render.SignInData{})
}

// SignIn checks the submitted credentials and authenticates the session.
func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	s := h.gate.Load(w, r)
	username := r.PostFormValue("username")

	if err := h.gate.SignIn(s, username, r.PostFormValue("password")); err != nil {
		s.AddFlash(msgBadCredentials)
		h.render(w, s, http.StatusUnprocessableEntity, render.PageSignIn, "Sign In", render.SignInData{Username: username})
		return
	}

	s.AddFlash(msgWelcome)
	h.redirect(w, r, s, "/")
}

// SignOut clears the session.
func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	s := h.gate.Load(w, r)
	if user := s.Username(); user != "" {
		h.logger.Info("signed out", "username", user)
	}
	s.SignOut()
	s.AddFlash(msgSignedOut)
	h.redirect(w, r, s, "/")
}

// redirectMissing reports a document that cannot be shown and returns to the index.
func (h *Handlers) redirectMissing(w http.ResponseWriter, r *http.Request, name string, err error) {
	s := h.gate.Load(w, r)
	if errors.Is(err, core.ErrNotFound) || errors.Is(err, core.ErrInvalidName) {
		s.AddFlash(fmt.Sprintf(msgNotExist, name))
	} else {
		h.logger.Error("failed to read document", "name", name, "error", err)
		s.AddFlash(msgUnavailable)
	}
	h.redirect(w, r, s, "/")
}

func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, s *auth.Session, target string) {
	if err := s.Save(); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// render drains pending notices into the page and writes it with status.
func (h *Handlers) render(w http.ResponseWriter, s *auth.Session, status int, name, title string, data any) {
	page := render.Page{
		Title:   title,
		Flashes: s.Flashes(),
		User:    s.Username(),
		Data:    data,
	}

	var buf bytes.Buffer
	if err := h.pages.Render(&buf, name, page); err != nil {
		h.logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := s.Save(); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write page", "page", name, "error", err)
	}
}
