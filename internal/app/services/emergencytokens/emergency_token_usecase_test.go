package emergencytokens

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeTokenStore mirrors the storage layer's guarantees, including the
// unique-active-token rule the partial index enforces in Mongo.
type fakeTokenStore struct {
	mu        sync.Mutex
	tokens    []*models.EmergencyToken
	findCalls int
	// raceOnCreate, when set, injects a competing active token right before
	// the next insert, simulating a concurrent Issue that lands first.
	raceOnCreate func() *models.EmergencyToken
}

func (s *fakeTokenStore) FindActiveByPatientID(ctx context.Context, patientID string) ([]models.EmergencyToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var active []models.EmergencyToken
	for _, t := range s.tokens {
		if t.PatientID == patientID && t.Active {
			active = append(active, *t)
		}
	}
	return active, nil
}

func (s *fakeTokenStore) DeactivateAllByPatientID(ctx context.Context, patientID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	now := time.Now()
	for _, t := range s.tokens {
		if t.PatientID == patientID && t.Active {
			t.Active = false
			t.DeactivatedAt = &now
			n++
		}
	}
	return n, nil
}

func (s *fakeTokenStore) CreateToken(ctx context.Context, token *models.EmergencyToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raceOnCreate != nil {
		competitor := s.raceOnCreate()
		s.raceOnCreate = nil
		s.tokens = append(s.tokens, competitor)
	}
	if token.Active {
		for _, t := range s.tokens {
			if t.PatientID == token.PatientID && t.Active {
				return contracts.ErrActiveTokenExists
			}
		}
	}
	s.tokens = append(s.tokens, token)
	return nil
}

func (s *fakeTokenStore) FindActiveByToken(ctx context.Context, token string) (*models.EmergencyToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findCalls++
	for _, t := range s.tokens {
		if t.Token == token && t.Active {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeTokenStore) activeCount(patientID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, t := range s.tokens {
		if t.PatientID == patientID && t.Active {
			count++
		}
	}
	return count
}

func (s *fakeTokenStore) activeToken(patientID string) *models.EmergencyToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tokens {
		if t.PatientID == patientID && t.Active {
			copied := *t
			return &copied
		}
	}
	return nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func (s *fakeUserStore) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}
func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}
func (s *fakeUserStore) FindByID(ctx context.Context, userID string) (*models.User, error) {
	return s.users[userID], nil
}
func (s *fakeUserStore) UpdateUser(ctx context.Context, user *models.User) error { return nil }
func (s *fakeUserStore) DeleteByID(ctx context.Context, userID string) error     { return nil }

type fakeMedicalInfoStore struct {
	infos map[string]*models.MedicalInfo
}

func (s *fakeMedicalInfoStore) UpsertByPatientID(ctx context.Context, info *models.MedicalInfo) error {
	return nil
}
func (s *fakeMedicalInfoStore) FindByPatientID(ctx context.Context, patientID string) (*models.MedicalInfo, error) {
	return s.infos[patientID], nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		c.entries[key] = string(v)
	case string:
		c.entries[key] = v
	}
	return nil
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func newTestUsecase(store *fakeTokenStore, users *fakeUserStore, infos *fakeMedicalInfoStore, cache contracts.RedisRepository) EmergencyTokenUsecase {
	return NewEmergencyTokenUsecase(zap.NewNop(), store, users, infos, cache, nil, 2)
}

func janeFixture() (*fakeUserStore, *fakeMedicalInfoStore) {
	users := &fakeUserStore{users: map[string]*models.User{
		"patient-1": {ID: "patient-1", Name: "Jane Doe", Email: "jane@example.com", Role: "patient"},
	}}
	infos := &fakeMedicalInfoStore{infos: map[string]*models.MedicalInfo{
		"patient-1": {
			PatientID:        "patient-1",
			BloodGroup:       "O+",
			Allergies:        "Peanuts",
			Medications:      "Aspirin 75mg",
			EmergencyContact: "John Doe - 555-0100",
		},
	}}
	return users, infos
}

func TestIssueTwiceLeavesExactlyOneActiveToken(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	first, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)
	second, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, 1, store.activeCount("patient-1"), "exactly one token may be active")

	_, err = uc.Resolve(ctx, first.Token, "")
	assert.Error(t, err, "the superseded token must resolve as not-found")

	view, err := uc.Resolve(ctx, second.Token, "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", view.UserName)
}

func TestResolveMalformedTokenNeverTouchesStorage(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	malformed := []string{
		"",
		"not-a-uuid",
		"123e4567-e89b-12d3-a456-426614174000",  // version 1, wrong version nibble
		"123e4567-e89b-42d3-c456-426614174000",  // bad variant nibble
		"123e4567-e89b-42d3-a456-42661417400",   // too short
		"123e4567-e89b-42d3-a456-4266141740000", // too long
		"123e4567e89b42d3a456426614174000",      // missing dashes
	}

	for _, token := range malformed {
		_, err := uc.Resolve(ctx, token, "")
		assert.Error(t, err, "token %q should be rejected", token)
	}
	assert.Equal(t, 0, store.findCalls, "malformed tokens must be rejected before any storage lookup")
}

func TestRevokeThenResolveReturnsNotFound(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)

	require.NoError(t, uc.Revoke(ctx, "patient-1"))
	assert.Equal(t, 0, store.activeCount("patient-1"))

	_, err = uc.Resolve(ctx, issued.Token, "")
	assert.Error(t, err)
}

func TestRevokedAndUnissuedTokensAreIndistinguishable(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)
	require.NoError(t, uc.Revoke(ctx, "patient-1"))

	_, revokedErr := uc.Resolve(ctx, issued.Token, "")
	_, unissuedErr := uc.Resolve(ctx, "7f3e9b1c-4d2a-4f6e-8a1b-0c9d8e7f6a5b", "")

	require.Error(t, revokedErr)
	require.Error(t, unissuedErr)
	assert.Equal(t, unissuedErr.Error(), revokedErr.Error(), "callers must not learn issuance history")
}

func TestResolveWithDeletedPatientReturnsNotFound(t *testing.T) {
	store := &fakeTokenStore{}
	users := &fakeUserStore{users: map[string]*models.User{}}
	infos := &fakeMedicalInfoStore{infos: map[string]*models.MedicalInfo{}}
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "ghost-patient")
	require.NoError(t, err)

	_, err = uc.Resolve(ctx, issued.Token, "")
	assert.Error(t, err, "a dangling token must resolve as absence, never partial data")
}

func TestResolveReturnsExactlyTheNarrowedFieldSet(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)

	view, err := uc.Resolve(ctx, issued.Token, "")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", view.UserName)
	assert.Equal(t, "O+", view.BloodGroup)
	assert.Equal(t, "Peanuts", view.Allergies)
	assert.Equal(t, "Aspirin 75mg", view.Medications)
	assert.Equal(t, "John Doe - 555-0100", view.EmergencyContact)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.ElementsMatch(t,
		[]string{"userName", "bloodGroup", "allergies", "medications", "emergencyContact"},
		keysOf(fields),
		"the public view must expose nothing beyond the five triage fields",
	)
}

func TestOtherOverridesTakePrecedenceInTheView(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	infos.infos["patient-1"].BloodGroupOther = "Bombay phenotype"
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)

	view, err := uc.Resolve(ctx, issued.Token, "")
	require.NoError(t, err)
	assert.Equal(t, "Bombay phenotype", view.BloodGroup)
}

func TestResolveServesFromCacheOnRepeatedScans(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)

	_, err = uc.Resolve(ctx, issued.Token, "")
	require.NoError(t, err)
	callsAfterFirst := store.findCalls

	_, err = uc.Resolve(ctx, issued.Token, "")
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirst, store.findCalls, "second scan should be a cache hit")
}

func TestRevokePurgesTheCachedView(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	cache := newFakeCache()
	uc := newTestUsecase(store, users, infos, cache)
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "patient-1")
	require.NoError(t, err)

	_, err = uc.Resolve(ctx, issued.Token, "")
	require.NoError(t, err)

	require.NoError(t, uc.Revoke(ctx, "patient-1"))

	_, err = uc.Resolve(ctx, issued.Token, "")
	assert.Error(t, err, "a revoked token must stop resolving immediately, not after the TTL")
}

func TestConcurrentIssueNeverLeavesTwoActiveTokens(t *testing.T) {
	store := &fakeTokenStore{}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())

	var wg sync.WaitGroup
	var issued int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Issue(context.Background(), "patient-1"); err == nil {
				atomic.AddInt32(&issued, 1)
			}
		}()
	}
	wg.Wait()

	// Under heavy contention an individual Issue may give up after its
	// retries, but the store must end with exactly one active token.
	assert.GreaterOrEqual(t, atomic.LoadInt32(&issued), int32(1))
	assert.Equal(t, 1, store.activeCount("patient-1"),
		"racing Issues must never leave two tokens active")
}

func TestIssueRerunsRotationAfterLosingAnInsertRace(t *testing.T) {
	store := &fakeTokenStore{}
	store.raceOnCreate = func() *models.EmergencyToken {
		return &models.EmergencyToken{
			ID:        "competitor",
			Token:     "7f3e9b1c-4d2a-4f6e-8a1b-0c9d8e7f6a5b",
			PatientID: "patient-1",
			Active:    true,
			CreatedAt: time.Now(),
		}
	}
	users, infos := janeFixture()
	uc := newTestUsecase(store, users, infos, newFakeCache())

	issued, err := uc.Issue(context.Background(), "patient-1")
	require.NoError(t, err, "losing one insert race must be retried, not surfaced")

	require.Equal(t, 1, store.activeCount("patient-1"))
	active := store.activeToken("patient-1")
	require.NotNil(t, active)
	assert.Equal(t, issued.Token, active.Token,
		"the retried insert wins; the competitor it raced is deactivated")
}

func keysOf(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
