// Contact-form HTTP handlers.
//
//   - POST /contacts  (submit; Idempotency-Key aware)
//   - GET  /contacts  (list)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// CreateContact godoc
// @ID          createContact
// @Summary     Submit the contact form
// @Tags        Contacts
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string             false "Idempotency key for safe retries"
// @Param       body             body    domain.NewContact  true  "Contact payload"
//
// @Success     201  {object}  domain.Contact
// @Header      201  {string}  Idempotency-Replayed  "true when served from a previous submission"
// @Failure     400  {object}  handlers.ErrorResponse "Invalid contact data"
// @Failure     429  {object}  handlers.ErrorResponse "Too many requests"
// @Failure     500  {object}  handlers.ErrorResponse "Failed to submit contact form"
// @Router      /contacts [post]
func (h *Handlers) CreateContact(c *gin.Context) {
	if replay(c, h.contacts.Get) {
		return
	}

	var req domain.NewContact
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, msgInvalidContact, err)
		return
	}

	ct, err := h.contacts.Submit(c.Request.Context(), req)
	if err != nil {
		failErr(c, ErrCodeCreateFailed, msgContactFailed, err)
		return
	}
	h.remember(c, ct.ID)
	ok(c, http.StatusCreated, ct)
}

// ListContacts godoc
// @ID          listContacts
// @Summary     List contact submissions
// @Tags        Contacts
// @Produce     json
//
// @Success     200  {array}   domain.Contact
// @Failure     500  {object}  handlers.ErrorResponse "Failed to fetch contact submissions"
// @Router      /contacts [get]
func (h *Handlers) ListContacts(c *gin.Context) {
	items, err := h.contacts.List(c.Request.Context())
	if err != nil {
		failErr(c, ErrCodeListFailed, msgContactsFailed, err)
		return
	}
	ok(c, http.StatusOK, items)
}
