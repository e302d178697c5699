package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/iscore/internal/domain/errors"
	"github.com/polkiloo/iscore/internal/domain/model"
	"github.com/polkiloo/iscore/internal/render"
	"github.com/polkiloo/iscore/internal/server/http/dto"
	"github.com/polkiloo/iscore/internal/usecase"
)

const formatText = "text"

// ViewHandler serves the view read-outs.
type ViewHandler struct {
	facade   ViewFacade
	currency string
	logger   *slog.Logger
}

// NewViewHandler constructs ViewHandler.
func NewViewHandler(facade ViewFacade, currency string, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{facade: facade, currency: currency, logger: logger}
}

// Show handles GET /api/views/:view?user_id=N.
func (h *ViewHandler) Show(c *gin.Context) {
	userID, err := usecase.ParseUserID(c.Query("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	view := model.ParseView(c.Param("view"))
	if !view.Valid() {
		h.fail(c, domainErrors.ErrUnknownView)
		return
	}

	result, err := h.facade.View(c.Request.Context(), view, userID)
	if err != nil {
		h.fail(c, err)
		return
	}

	if c.Query("format") == formatText {
		c.String(http.StatusOK, render.Text(result, h.currency))
		return
	}
	c.JSON(http.StatusOK, dto.NewViewResponse(result, h.currency, render.Lines(result, h.currency)))
}

func (h *ViewHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("view lookup failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	msg := render.Message(err)
	if c.Query("format") == formatText {
		c.String(status, msg)
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrMissingUserID), errors.Is(err, domainErrors.ErrInvalidUserID):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrUnknownView),
		errors.Is(err, domainErrors.ErrUserNotFound),
		errors.Is(err, domainErrors.ErrRecordMissing):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
