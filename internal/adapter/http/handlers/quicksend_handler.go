package handlers

import (
	"errors"
	"net/http"

	response "rentalquotes/internal/adapter/http/dto/response"
	"rentalquotes/internal/usecase"
	"rentalquotes/pkg"

	"github.com/gin-gonic/gin"
)

const quickSendAction = "quick_send"

var (
	errInvalidQuickSendAction = pkg.NewDomainErrorSimple("INVALID_QUICK_SEND_ACTION", "Unknown action", http.StatusBadRequest)
)

// QuickSendHandler serves the one-click quote dispatch links embedded in
// admin notification mails.
type QuickSendHandler struct {
	usecase usecase.IQuickSendUseCase
}

func NewQuickSendHandler(uc usecase.IQuickSendUseCase) *QuickSendHandler {
	return &QuickSendHandler{usecase: uc}
}

// HandleQuickSend processes a quick-send link hit.
//
// Query parameters: crqa_action=quick_send, quote_id, token, and an
// optional resend flag for links that were already used.
func (h *QuickSendHandler) HandleQuickSend(c *gin.Context) {
	if c.Query("crqa_action") != quickSendAction {
		c.JSON(errInvalidQuickSendAction.HTTPStatus, errInvalidQuickSendAction.ToHTTPError())
		return
	}

	resend := isAffirmative(c.Query("resend"))

	result, err := h.usecase.HandleQuickSend(c.Request.Context(), c.Query("quote_id"), c.Query("token"), resend)
	if err != nil {
		appErr := mapQuickSendError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuickSendResult(result))
}

// mapQuickSendError keeps the token failure response indistinguishable from
// other bad-link cases; it never confirms which part of the link was wrong.
func mapQuickSendError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTokenMismatch):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "This quick send link is not valid", http.StatusForbidden)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPriceNotSet):
		return pkg.NewDomainErrorSimple("PRICE_NOT_SET", "Set a price on the quote before sending it", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isAffirmative(v string) bool {
	switch v {
	case "1", "true", "yes":
		return true
	}
	return false
}
