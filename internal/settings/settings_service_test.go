package settings_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sharda-hr/internal/settings"
	settingserrors "sharda-hr/internal/settings/errors"
	"sharda-hr/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	row   *settings.CompanySetting
	saved *settings.CompanySetting
	rules map[string]*settings.DeductionRule
}

func (f *fakeRepo) Get(ctx context.Context, companyID string) (*settings.CompanySetting, error) {
	return f.row, nil
}
func (f *fakeRepo) Upsert(ctx context.Context, s *settings.CompanySetting) error {
	f.saved = s
	return nil
}
func (f *fakeRepo) ListRules(ctx context.Context, companyID string) ([]settings.DeductionRule, error) {
	var out []settings.DeductionRule
	for _, r := range f.rules {
		out = append(out, *r)
	}
	return out, nil
}
func (f *fakeRepo) ListActiveRules(ctx context.Context, companyID, employeeID string) ([]settings.DeductionRule, error) {
	return f.ListRules(ctx, companyID)
}
func (f *fakeRepo) FindRule(ctx context.Context, companyID, id string) (*settings.DeductionRule, error) {
	if r, ok := f.rules[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) CreateRule(ctx context.Context, r *settings.DeductionRule) error {
	if f.rules == nil {
		f.rules = map[string]*settings.DeductionRule{}
	}
	f.rules[r.ID.String()] = r
	return nil
}
func (f *fakeRepo) UpdateRule(ctx context.Context, r *settings.DeductionRule) error {
	f.rules[r.ID.String()] = r
	return nil
}
func (f *fakeRepo) DeleteRule(ctx context.Context, companyID, id string) error {
	if _, ok := f.rules[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.rules, id)
	return nil
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	key := settings.CacheKey(companyID)
	defaults := settings.MustEmbeddedDefaults()

	t.Run("no saved row falls back to defaults and caches", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := settings.NewService(&fakeRepo{}, rdb, defaults)

		expected := settings.SettingsResponse{CompanySettings: defaults, IsDefault: true}
		raw, _ := json.Marshal(expected)
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, string(raw), time.Hour).SetVal("OK")

		resp, err := svc.Get(ctx, companyID)

		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, defaults.LateCutoff, resp.LateCutoff)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("saved document wins", func(t *testing.T) {
		doc := defaults
		doc.WorkingDayPolicy = settings.PolicyFixed26
		raw, _ := json.Marshal(doc)

		svc := settings.NewService(&fakeRepo{row: &settings.CompanySetting{Document: raw}}, nil, defaults)
		resp, err := svc.Get(ctx, companyID)

		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, settings.PolicyFixed26, resp.WorkingDayPolicy)
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	defaults := settings.MustEmbeddedDefaults()

	t.Run("invalid document returns every problem", func(t *testing.T) {
		svc := settings.NewService(&fakeRepo{}, nil, defaults)
		doc := defaults
		doc.WorkingDayPolicy = "weekly"
		doc.HalfDayThresholdHours = 30

		_, err := svc.Update(ctx, companyID, "u-1", doc)

		require.ErrorIs(t, err, settingserrors.ErrInvalidSettings)
		httpErr := apperror.ToHTTP(err)
		problems, ok := httpErr.Details.([]string)
		require.True(t, ok)
		assert.Len(t, problems, 2)
	})

	t.Run("saves and invalidates cache", func(t *testing.T) {
		repo := &fakeRepo{}
		rdb, mock := redismock.NewClientMock()
		svc := settings.NewService(repo, rdb, defaults)
		mock.ExpectDel(settings.CacheKey(companyID)).SetVal(1)

		doc := defaults
		doc.WorkingDayPolicy = "fixed_26"
		resp, err := svc.Update(ctx, companyID, "u-1", doc)

		require.NoError(t, err)
		assert.Equal(t, settings.PolicyFixed26, resp.WorkingDayPolicy)
		require.NotNil(t, repo.saved)
		assert.Equal(t, "u-1", repo.saved.UpdatedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsService_Rules(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	svc := settings.NewService(&fakeRepo{}, nil, settings.MustEmbeddedDefaults())

	_, err := svc.CreateRule(ctx, companyID, settings.DeductionRuleRequest{Name: "x", Type: "BONUS"})
	assert.ErrorIs(t, err, settingserrors.ErrInvalidRuleType)

	_, err = svc.CreateRule(ctx, companyID, settings.DeductionRuleRequest{
		Name: "Welfare", Type: settings.RulePercentOfBasic, Percent: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, settingserrors.ErrInvalidRuleValue)

	created, err := svc.CreateRule(ctx, companyID, settings.DeductionRuleRequest{
		Name: "Late fine", Type: "per_late_mark", Amount: 10000, LateGraceCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, settings.RulePerLateMark, created.Type)
	assert.True(t, created.Active)

	inactive := false
	updated, err := svc.UpdateRule(ctx, companyID, created.ID, settings.DeductionRuleRequest{
		Name: "Late fine", Type: settings.RulePerLateMark, Amount: 20000, Active: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, int64(20000), updated.Amount)

	require.NoError(t, svc.DeleteRule(ctx, companyID, created.ID))
	assert.ErrorIs(t, svc.DeleteRule(ctx, companyID, created.ID), settingserrors.ErrRuleNotFound)
}
