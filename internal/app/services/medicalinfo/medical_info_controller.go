package medicalinfo

import (
	"context"
	"net/http"
	"time"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicalInfoController struct {
	Log                *zap.Logger
	MedicalInfoUsecase MedicalInfoUsecase
}

func NewMedicalInfoController(log *zap.Logger, medicalInfoUsecase MedicalInfoUsecase) *MedicalInfoController {
	return &MedicalInfoController{
		Log:                log,
		MedicalInfoUsecase: medicalInfoUsecase,
	}
}

func (ctrl *MedicalInfoController) UpsertMedicalInfo(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpsertMedicalInfo)
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

	patientID := utils.SubjectIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalInfoUsecase.Upsert(ctx, patientID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalInfoSavedSuccess, result)
}

func (ctrl *MedicalInfoController) GetMedicalInfo(w http.ResponseWriter, r *http.Request) {
	patientID := utils.SubjectIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalInfoUsecase.Get(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalInfoGetSuccess, result)
}
