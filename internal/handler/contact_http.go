package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
	"github.com/Xalpha19/chaitravm/internal/core/port"
)

type ContactHTTPHandler struct {
	intakeService port.IntakeService
}

type contactResponse struct {
	Success      bool      `json:"success"`
	Message      string    `json:"message"`
	SubmissionID uuid.UUID `json:"submissionId"`
}

func NewContactHTTPHandler(intakeService port.IntakeService) *ContactHTTPHandler {
	return &ContactHTTPHandler{
		intakeService: intakeService,
	}
}

func (h *ContactHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload domain.SubmissionPayload

		if err := c.Bind(&payload); err != nil {
			log.WithError(err).Error("Failed to bind contact payload")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		if err := c.Validate(&payload); err != nil {
			log.WithError(err).Warn("Contact payload failed validation")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		meta := domain.RequestMeta{
			SourceIP:  clientIP(c.Request()),
			UserAgent: c.Request().UserAgent(),
		}

		result := h.intakeService.Process(c.Request().Context(), payload, meta)

		switch result.Status {
		case domain.IntakeAccepted, domain.IntakeAcceptedEmailWarning:
			return c.JSON(http.StatusOK, contactResponse{
				Success:      true,
				Message:      result.Message,
				SubmissionID: result.SubmissionID,
			})
		case domain.IntakeRejected:
			return c.JSON(http.StatusBadRequest, map[string]string{"error": result.Message})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": result.Message})
		}
	}
}

// clientIP resolves the submitter's address for audit: first hop of
// X-Forwarded-For, then X-Real-Ip, else "unknown".
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-Ip"); real != "" {
		return real
	}
	return "unknown"
}
