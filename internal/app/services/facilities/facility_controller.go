package facilities

import (
	"context"
	"net/http"
	"time"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type FacilityController struct {
	Log             *zap.Logger
	FacilityUsecase FacilityUsecase
}

func NewFacilityController(log *zap.Logger, facilityUsecase FacilityUsecase) *FacilityController {
	return &FacilityController{
		Log:             log,
		FacilityUsecase: facilityUsecase,
	}
}

func (ctrl *FacilityController) CreateFacility(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateFacility)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FacilityUsecase.CreateFacility(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.FacilityCreatedSuccess, result)
}

func (ctrl *FacilityController) ListFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FacilityUsecase.ListFacilities(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FacilityListSuccess, result)
}

func (ctrl *FacilityController) GetFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "facilityID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FacilityUsecase.GetFacility(ctx, facilityID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FacilityGetSuccess, result)
}

func (ctrl *FacilityController) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateFacility)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	facilityID := chi.URLParam(r, "facilityID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FacilityUsecase.UpdateFacility(ctx, facilityID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FacilityUpdatedSuccess, result)
}

func (ctrl *FacilityController) EnableFacility(w http.ResponseWriter, r *http.Request) {
	ctrl.setEnabled(w, r, true)
}

func (ctrl *FacilityController) DisableFacility(w http.ResponseWriter, r *http.Request) {
	ctrl.setEnabled(w, r, false)
}

func (ctrl *FacilityController) setEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	facilityID := chi.URLParam(r, "facilityID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.FacilityUsecase.SetEnabled(ctx, facilityID, enabled)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FacilityUpdatedSuccess, nil)
}
