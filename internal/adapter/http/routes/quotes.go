package routes

import (
	"rentalquotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmissions = "/submissions"
	PathQuickSend   = "/quick-send"
	PathQuotes      = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler, quickSendHandler *handlers.QuickSendHandler, quoteHandler *handlers.QuoteHandler) {
	submissions := rg.Group(PathSubmissions)
	{
		submissions.POST("", submissionHandler.CreateSubmission)
	}

	quickSend := rg.Group(PathQuickSend)
	{
		// The action query parameter mirrors the link format embedded in
		// admin notification mails.
		quickSend.GET("", quickSendHandler.HandleQuickSend)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:hash", quoteHandler.GetQuoteByHash)
	}
}
