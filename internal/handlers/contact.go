package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shinelaptops/storefront/internal/session"
	"github.com/shinelaptops/storefront/internal/wizard"
)

const contactWizard = "contact"

// ContactResponse is the contact form state plus the subject choices
type ContactResponse struct {
	wizard.ContactState
	Subjects []wizard.Subject `json:"subjects"`
}

// GetContact returns the contact form state
// @Summary Get contact form
// @Tags contact
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} handlers.ContactResponse
// @Router /api/contact [get]
func (h *Handler) GetContact(c *gin.Context) {
	var state wizard.ContactState
	err := h.withSession(c, func(st *session.State) error {
		state = st.Contact.State(h.opts.Now())
		return nil
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ContactResponse{ContactState: state, Subjects: wizard.Subjects})
}

// SubmitContact validates and submits the contact form
// @Summary Submit contact form
// @Description On success the fields are cleared and the submitted flag is raised for a few seconds. Nothing is sent.
// @Tags contact
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body wizard.ContactForm true "Contact fields"
// @Success 200 {object} handlers.ContactResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 422 {object} handlers.ErrorResponse
// @Router /api/contact [post]
func (h *Handler) SubmitContact(c *gin.Context) {
	var form wizard.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}

	now := h.opts.Now()
	var state wizard.ContactState
	err := h.withSession(c, func(st *session.State) error {
		st.Contact.Update(form)
		if err := st.Contact.Submit(now); err != nil {
			return err
		}
		state = st.Contact.State(now)
		return nil
	})
	if err != nil {
		var verr wizard.ValidationError
		if errors.As(err, &verr) {
			h.metrics.RecordValidationFailure(contactWizard)
		}
		h.respondError(c, err)
		return
	}

	h.metrics.RecordWizardTransition(contactWizard, "editing", "submitted")
	c.JSON(http.StatusOK, ContactResponse{ContactState: state, Subjects: wizard.Subjects})
}
