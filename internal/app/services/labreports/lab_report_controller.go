package labreports

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

type LabReportController struct {
	Log                 *zap.Logger
	LabReportUsecase    LabReportUsecase
	MaxUploadSizeInByte int64
}

func NewLabReportController(log *zap.Logger, labReportUsecase LabReportUsecase, maxUploadSizeInMB int) *LabReportController {
	return &LabReportController{
		Log:                 log,
		LabReportUsecase:    labReportUsecase,
		MaxUploadSizeInByte: int64(maxUploadSizeInMB) << 20,
	}
}

func (ctrl *LabReportController) UploadLabReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, ctrl.MaxUploadSizeInByte)
	if err := r.ParseMultipartForm(ctrl.MaxUploadSizeInByte); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		title = header.Filename
	}
	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	patientID := utils.SubjectIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.LabReportUsecase.Upload(ctx, patientID, title, contentType, header.Size, file)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.LabReportUploadedSuccess, result)
}

func (ctrl *LabReportController) ListLabReports(w http.ResponseWriter, r *http.Request) {
	patientID := utils.SubjectIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LabReportUsecase.List(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabReportGetSuccess, result)
}

func (ctrl *LabReportController) DeleteLabReport(w http.ResponseWriter, r *http.Request) {
	patientID := utils.SubjectIDFromContext(r.Context())
	reportID := chi.URLParam(r, "reportID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.LabReportUsecase.Delete(ctx, patientID, reportID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabReportDeletedSuccess, nil)
}

// SummarizeLabReport gets a longer deadline than the usual 10s because it
// waits on an external model call.
func (ctrl *LabReportController) SummarizeLabReport(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SummarizeLabReport)
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
	reportID := chi.URLParam(r, "reportID")

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.LabReportUsecase.Summarize(ctx, patientID, reportID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LabReportSummarySuccess, result)
}
