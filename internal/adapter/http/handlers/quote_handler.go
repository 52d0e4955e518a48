package handlers

import (
	"errors"
	"net/http"

	response "rentalquotes/internal/adapter/http/dto/response"
	"rentalquotes/internal/usecase"
	"rentalquotes/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves public quote lookups by hash.
type QuoteHandler struct {
	usecase usecase.IQuoteQueryUseCase
}

func NewQuoteHandler(uc usecase.IQuoteQueryUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) GetQuoteByHash(c *gin.Context) {
	quote, err := h.usecase.GetByHash(c.Request.Context(), c.Param("hash"))
	if err != nil {
		appErr := mapQuoteQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteQueryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteHash):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
