package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickcar/lead-notification-service/internal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("handler",
	fx.Provide(
		NewSubmissionHandler,
	),
)

type Submission struct {
	notifier service.NotifierProvider
}

type SubmissionParams struct {
	fx.In

	Notifier service.NotifierProvider
}

func NewSubmissionHandler(params SubmissionParams) *Submission {
	return &Submission{
		notifier: params.Notifier,
	}
}

type SendResponse struct {
	OK  bool            `json:"ok"`
	SMS json.RawMessage `json:"sms"`
}

// SendHandler accepts one lead submission and reports the combined
// mail+SMS outcome.
func (h *Submission) SendHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubmissionRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrCodeInvalidPayload})
		return
	}

	sms, err := h.notifier.Notify(ctx, service.Lead{
		CarNumber: req.CarNumber,
		Phone:     req.Phone,
		Region:    req.Region,
		Mileage:   string(req.Mileage),
	})
	if err != nil {
		status, resp := responseFor(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, SendResponse{OK: true, SMS: sms})
}
