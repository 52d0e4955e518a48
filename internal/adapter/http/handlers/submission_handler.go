package handlers

import (
	"errors"
	"net/http"

	request "rentalquotes/internal/adapter/http/dto/request"
	response "rentalquotes/internal/adapter/http/dto/response"
	"rentalquotes/internal/usecase"
	"rentalquotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)
)

// SubmissionHandler handles inbound form submissions and drives quote
// derivation.
type SubmissionHandler struct {
	usecase usecase.IQuoteDerivationUseCase
}

func NewSubmissionHandler(uc usecase.IQuoteDerivationUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// CreateSubmission accepts a form submission and derives a quote from it.
//
// A submission that cannot produce a quote (unmapped form, missing customer
// identity) is still acknowledged with 200: the visitor-facing form flow
// must never surface derivation problems as submission failures.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	sub := payload.ToSubmissionContext(c.ClientIP(), c.Request.UserAgent())

	quote, err := h.usecase.Derive(c.Request.Context(), payload.FormID, sub)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrFormConfigNotFound):
			c.JSON(http.StatusOK, response.SubmissionSkipped("no quote mapping configured for form"))
		case errors.Is(err, usecase.ErrMissingCustomerName), errors.Is(err, usecase.ErrMissingCustomerEmail):
			c.JSON(http.StatusOK, response.SubmissionSkipped("submission carries no customer identity"))
		default:
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusCreated, response.SubmissionCreated(quote.QuoteHash))
}
