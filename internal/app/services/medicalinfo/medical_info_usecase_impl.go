package medicalinfo

import (
	"context"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type medicalInfoUsecase struct {
	Log                   *zap.Logger
	MedicalInfoRepository contracts.MedicalInfoRepository
	TokenRepository       contracts.EmergencyTokenRepository
	RedisRepository       contracts.RedisRepository
}

func NewMedicalInfoUsecase(
	log *zap.Logger,
	medicalInfoRepository contracts.MedicalInfoRepository,
	tokenRepository contracts.EmergencyTokenRepository,
	redisRepository contracts.RedisRepository,
) MedicalInfoUsecase {
	return &medicalInfoUsecase{
		Log:                   log,
		MedicalInfoRepository: medicalInfoRepository,
		TokenRepository:       tokenRepository,
		RedisRepository:       redisRepository,
	}
}

func (uc *medicalInfoUsecase) Upsert(ctx context.Context, patientID string, request *requests.UpsertMedicalInfo) (*responses.MedicalInfo, error) {
	info := &models.MedicalInfo{
		PatientID:             patientID,
		BloodGroup:            request.BloodGroup,
		BloodGroupOther:       request.BloodGroupOther,
		Allergies:             request.Allergies,
		AllergiesOther:        request.AllergiesOther,
		Medications:           request.Medications,
		MedicationsOther:      request.MedicationsOther,
		EmergencyContact:      request.EmergencyContact,
		EmergencyContactOther: request.EmergencyContactOther,
	}

	if err := uc.MedicalInfoRepository.UpsertByPatientID(ctx, info); err != nil {
		return nil, err
	}

	// An emergency responder must see the new snapshot, not a cached copy.
	uc.purgeEmergencyCache(ctx, patientID)

	return buildMedicalInfoResponse(info), nil
}

func (uc *medicalInfoUsecase) Get(ctx context.Context, patientID string) (*responses.MedicalInfo, error) {
	info, err := uc.MedicalInfoRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return &responses.MedicalInfo{}, nil
	}
	return buildMedicalInfoResponse(info), nil
}

func (uc *medicalInfoUsecase) purgeEmergencyCache(ctx context.Context, patientID string) {
	tokens, err := uc.TokenRepository.FindActiveByPatientID(ctx, patientID)
	if err != nil {
		uc.Log.Warn("failed to list active tokens for cache purge", zap.Error(err))
		return
	}
	keys := make([]string, 0, len(tokens))
	for _, t := range tokens {
		keys = append(keys, constvars.EmergencyViewCachePrefix+t.Token)
	}
	if err := uc.RedisRepository.Delete(ctx, keys...); err != nil {
		uc.Log.Warn("failed to purge emergency view cache", zap.Error(err))
	}
}

func buildMedicalInfoResponse(info *models.MedicalInfo) *responses.MedicalInfo {
	return &responses.MedicalInfo{
		BloodGroup:            info.BloodGroup,
		BloodGroupOther:       info.BloodGroupOther,
		Allergies:             info.Allergies,
		AllergiesOther:        info.AllergiesOther,
		Medications:           info.Medications,
		MedicationsOther:      info.MedicationsOther,
		EmergencyContact:      info.EmergencyContact,
		EmergencyContactOther: info.EmergencyContactOther,
	}
}
