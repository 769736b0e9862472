package emergencytokens

import (
	"context"
	"errors"
	"time"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"
	"yuktah-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type emergencyTokenUsecase struct {
	Log                   *zap.Logger
	TokenRepository       contracts.EmergencyTokenRepository
	UserRepository        contracts.UserRepository
	MedicalInfoRepository contracts.MedicalInfoRepository
	RedisRepository       contracts.RedisRepository
	Publisher             contracts.NotificationPublisher
	CacheTTL              time.Duration
}

func NewEmergencyTokenUsecase(
	log *zap.Logger,
	tokenRepository contracts.EmergencyTokenRepository,
	userRepository contracts.UserRepository,
	medicalInfoRepository contracts.MedicalInfoRepository,
	redisRepository contracts.RedisRepository,
	publisher contracts.NotificationPublisher,
	cacheTTLInMinute int,
) EmergencyTokenUsecase {
	return &emergencyTokenUsecase{
		Log:                   log,
		TokenRepository:       tokenRepository,
		UserRepository:        userRepository,
		MedicalInfoRepository: medicalInfoRepository,
		RedisRepository:       redisRepository,
		Publisher:             publisher,
		CacheTTL:              time.Duration(cacheTTLInMinute) * time.Minute,
	}
}

// issueRetryLimit bounds how often a rotation is re-run after losing an
// insert race to a concurrent Issue for the same patient.
const issueRetryLimit = 3

func (uc *emergencyTokenUsecase) Issue(ctx context.Context, patientID string) (*responses.EmergencyToken, error) {
	uc.purgeCachedViews(ctx, patientID)

	// Deactivate-then-insert is two storage operations, so two concurrent
	// Issues can interleave both deactivations before either insert. The
	// storage layer allows only one active token per patient; the loser's
	// insert comes back as ErrActiveTokenExists and the rotation re-runs.
	for attempt := 0; attempt < issueRetryLimit; attempt++ {
		if _, err := uc.TokenRepository.DeactivateAllByPatientID(ctx, patientID); err != nil {
			return nil, err
		}

		token := &models.EmergencyToken{
			Token:     utils.GenerateEmergencyToken(),
			PatientID: patientID,
			Active:    true,
			CreatedAt: time.Now(),
		}
		err := uc.TokenRepository.CreateToken(ctx, token)
		if err == nil {
			return &responses.EmergencyToken{
				Token:     token.Token,
				CreatedAt: token.CreatedAt.Format(time.RFC3339),
			}, nil
		}
		if !errors.Is(err, contracts.ErrActiveTokenExists) {
			return nil, err
		}
	}
	return nil, exceptions.ErrEmergencyTokenGenerate(contracts.ErrActiveTokenExists)
}

func (uc *emergencyTokenUsecase) Revoke(ctx context.Context, patientID string) error {
	uc.purgeCachedViews(ctx, patientID)

	_, err := uc.TokenRepository.DeactivateAllByPatientID(ctx, patientID)
	return err
}

func (uc *emergencyTokenUsecase) Resolve(ctx context.Context, token, remoteAddr string) (*responses.EmergencyView, error) {
	// Reject malformed input before touching storage.
	if !utils.IsUUIDv4Shaped(token) {
		return nil, exceptions.ErrEmergencyTokenMalformed(nil)
	}

	if cached := uc.cachedView(ctx, token); cached != nil {
		uc.notifyAccess(token, cached.PatientID, remoteAddr)
		return &cached.View, nil
	}

	emergencyToken, err := uc.TokenRepository.FindActiveByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if emergencyToken == nil {
		// Revoked and never-issued are indistinguishable on purpose.
		return nil, exceptions.ErrEmergencyTokenNotFound(nil)
	}

	patient, err := uc.UserRepository.FindByID(ctx, emergencyToken.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		// Dangling token whose patient record is gone: absence, not a crash.
		return nil, exceptions.ErrEmergencyTokenNotFound(nil)
	}

	info, err := uc.MedicalInfoRepository.FindByPatientID(ctx, emergencyToken.PatientID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &models.MedicalInfo{}
	}

	view := &responses.EmergencyView{
		UserName:         patient.Name,
		BloodGroup:       info.EffectiveBloodGroup(),
		Allergies:        info.EffectiveAllergies(),
		Medications:      info.EffectiveMedications(),
		EmergencyContact: info.EffectiveEmergencyContact(),
	}

	uc.cacheView(ctx, token, emergencyToken.PatientID, view)
	uc.notifyAccess(token, emergencyToken.PatientID, remoteAddr)

	return view, nil
}

// cachedEmergencyView is the Redis payload: the public view plus the owning
// patient id, which never leaves the process (needed for access events and
// cache purging).
type cachedEmergencyView struct {
	View      responses.EmergencyView `json:"view"`
	PatientID string                  `json:"patient_id"`
}

func (uc *emergencyTokenUsecase) cachedView(ctx context.Context, token string) *cachedEmergencyView {
	raw, err := uc.RedisRepository.Get(ctx, constvars.EmergencyViewCachePrefix+token)
	if err != nil || raw == "" {
		return nil
	}
	var cached cachedEmergencyView
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil
	}
	return &cached
}

func (uc *emergencyTokenUsecase) cacheView(ctx context.Context, token, patientID string, view *responses.EmergencyView) {
	payload, err := json.Marshal(cachedEmergencyView{View: *view, PatientID: patientID})
	if err != nil {
		return
	}
	if err := uc.RedisRepository.Set(ctx, constvars.EmergencyViewCachePrefix+token, payload, uc.CacheTTL); err != nil {
		uc.Log.Warn("failed to cache emergency view", zap.Error(err))
	}
}

// purgeCachedViews drops cache entries for the patient's active tokens so a
// revocation takes effect immediately instead of waiting out the TTL. The
// pre-read exists only for this purge; the one-active invariant rests on the
// storage layer's uniqueness guarantee, never on this read.
func (uc *emergencyTokenUsecase) purgeCachedViews(ctx context.Context, patientID string) {
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

// notifyAccess publishes an access event so the patient learns their QR code
// was scanned. Best effort: a broker outage must not block a first responder.
func (uc *emergencyTokenUsecase) notifyAccess(token, patientID, remoteAddr string) {
	if uc.Publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	event := &contracts.EmergencyAccessEvent{
		PatientID:  patientID,
		Token:      token,
		AccessedAt: time.Now().Format(time.RFC3339),
		RemoteAddr: remoteAddr,
	}
	if err := uc.Publisher.PublishEmergencyAccess(ctx, event); err != nil {
		uc.Log.Warn("failed to publish emergency access event", zap.Error(err))
	}
}
