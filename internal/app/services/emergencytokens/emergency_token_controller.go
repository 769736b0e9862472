package emergencytokens

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EmergencyTokenController struct {
	Log                   *zap.Logger
	EmergencyTokenUsecase EmergencyTokenUsecase
	CacheTTLInMinute      int
}

func NewEmergencyTokenController(log *zap.Logger, emergencyTokenUsecase EmergencyTokenUsecase, cacheTTLInMinute int) *EmergencyTokenController {
	return &EmergencyTokenController{
		Log:                   log,
		EmergencyTokenUsecase: emergencyTokenUsecase,
		CacheTTLInMinute:      cacheTTLInMinute,
	}
}

// IssueToken and RevokeToken sit behind a patient-only rule in the gate's
// route table, so the session here is always a patient's.
func (ctrl *EmergencyTokenController) IssueToken(w http.ResponseWriter, r *http.Request) {
	patientID := utils.SubjectIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EmergencyTokenUsecase.Issue(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.EmergencyTokenIssued, result)
}

func (ctrl *EmergencyTokenController) RevokeToken(w http.ResponseWriter, r *http.Request) {
	patientID := utils.SubjectIDFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.EmergencyTokenUsecase.Revoke(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EmergencyTokenRevoked, nil)
}

// ResolveToken is the fully public endpoint first responders hit. Responses
// are briefly cacheable so repeated scans near an incident stay fast, but a
// revoked token must stop resolving within minutes.
func (ctrl *EmergencyTokenController) ResolveToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.EmergencyTokenUsecase.Resolve(ctx, token, r.RemoteAddr)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	w.Header().Set(constvars.HeaderCacheControl, fmt.Sprintf("public, max-age=%d", ctrl.CacheTTLInMinute*60))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EmergencyViewGetSuccess, result)
}
