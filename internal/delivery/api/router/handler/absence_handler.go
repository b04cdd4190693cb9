package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"winespa/internal/delivery/api/response"
	"winespa/internal/domain/entity"
	domainerrors "winespa/internal/domain/errors"
	"winespa/internal/usecase"
)

// AbsenceHandlerParams holds dependencies for AbsenceHandler, injected by Fx.
type AbsenceHandlerParams struct {
	fx.In

	AbsenceUC usecase.AbsenceUsecase
}

// AbsenceHandler serves manicurist absences.
type AbsenceHandler struct {
	absenceUC usecase.AbsenceUsecase
}

// NewAbsenceHandler is the constructor for AbsenceHandler
func NewAbsenceHandler(params AbsenceHandlerParams) *AbsenceHandler {
	return &AbsenceHandler{absenceUC: params.AbsenceUC}
}

// RecordAbsenceRequest records an absence or late arrival. Times are "HH:MM".
type RecordAbsenceRequest struct {
	ManicuristID string `json:"manicurist_id" validate:"required,uuid"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Kind         string `json:"kind" validate:"required,oneof=absent late"`
	Type         string `json:"type" validate:"omitempty,oneof=full partial"`
	ArrivalTime  string `json:"arrival_time" validate:"omitempty,clock"`
	AbsenceStart string `json:"absence_start" validate:"omitempty,clock"`
	AbsenceEnd   string `json:"absence_end" validate:"omitempty,clock"`
	Notes        string `json:"notes" validate:"max=500"`
}

func (h *AbsenceHandler) Record(c echo.Context) error {
	var req RecordAbsenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	absence, err := h.absenceUC.Record(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toAbsenceResponse(absence))
}

func (req *RecordAbsenceRequest) toInput() (*usecase.RecordAbsenceInput, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("date must be YYYY-MM-DD")
	}

	input := &usecase.RecordAbsenceInput{
		ManicuristID: uuid.MustParse(req.ManicuristID),
		Date:         date,
		Kind:         entity.AbsenceKind(req.Kind),
		Type:         entity.AbsenceType(req.Type),
		Notes:        req.Notes,
	}
	if input.ArrivalTime, err = parseClock(req.ArrivalTime); err != nil {
		return nil, err
	}
	if input.AbsenceStart, err = parseClock(req.AbsenceStart); err != nil {
		return nil, err
	}
	if input.AbsenceEnd, err = parseClock(req.AbsenceEnd); err != nil {
		return nil, err
	}

	return input, nil
}

// ListUpcoming returns the manicurist's absences from today on.
func (h *AbsenceHandler) ListUpcoming(c echo.Context) error {
	manicuristID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	absences, err := h.absenceUC.ListUpcoming(c.Request().Context(), manicuristID)
	if err != nil {
		return err
	}

	resp := make([]*AbsenceResponse, len(absences))
	for i, absence := range absences {
		resp[i] = toAbsenceResponse(absence)
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *AbsenceHandler) Cancel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.absenceUC.Cancel(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
