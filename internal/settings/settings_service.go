package settings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	settingserrors "sharda-hr/internal/settings/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const settingsCacheTTL = time.Hour

func CacheKey(companyID string) string {
	return "settings:" + companyID
}

type Service interface {
	Get(ctx context.Context, companyID string) (SettingsResponse, error)
	Update(ctx context.Context, companyID, updatedBy string, doc CompanySettings) (SettingsResponse, error)
	Defaults() CompanySettings
	SetDefaults(doc CompanySettings)
	ListRules(ctx context.Context, companyID string) ([]DeductionRuleResponse, error)
	GetRule(ctx context.Context, companyID, id string) (DeductionRuleResponse, error)
	CreateRule(ctx context.Context, companyID string, req DeductionRuleRequest) (DeductionRuleResponse, error)
	UpdateRule(ctx context.Context, companyID, id string, req DeductionRuleRequest) (DeductionRuleResponse, error)
	DeleteRule(ctx context.Context, companyID, id string) error
	ActiveRulesFor(ctx context.Context, companyID, employeeID string) ([]DeductionRule, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	mu       sync.RWMutex
	defaults CompanySettings
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, defaults CompanySettings, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{repo: repo, rdb: rdb, defaults: defaults, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Defaults() CompanySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSettings(s.defaults)
}

// SetDefaults swaps the statutory defaults. Companies already cached keep
// the old values until their cache entry expires.
func (s *service) SetDefaults(doc CompanySettings) {
	s.mu.Lock()
	s.defaults = cloneSettings(doc)
	s.mu.Unlock()
	s.logger.Info("statutory defaults replaced")
}

func (s *service) Get(ctx context.Context, companyID string) (SettingsResponse, error) {
	key := CacheKey(companyID)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var resp SettingsResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		row, err := s.repo.Get(ctx, companyID)
		if err != nil {
			return nil, err
		}

		resp := SettingsResponse{CompanySettings: s.Defaults(), IsDefault: true}
		if row != nil {
			var doc CompanySettings
			if err := json.Unmarshal(row.Document, &doc); err != nil {
				s.logger.Error("stored settings document is corrupt, using defaults",
					zap.String("company_id", companyID),
					zap.Error(err),
				)
			} else {
				resp = SettingsResponse{CompanySettings: doc}
			}
		}

		if s.rdb != nil {
			if raw, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, key, string(raw), settingsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache settings failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return SettingsResponse{}, err
	}
	return v.(SettingsResponse), nil
}

func (s *service) Update(ctx context.Context, companyID, updatedBy string, doc CompanySettings) (SettingsResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return SettingsResponse{}, settingserrors.ErrInvalidSettings
	}

	doc = normalize(doc)
	if problems := Validate(doc); len(problems) > 0 {
		return SettingsResponse{}, settingserrors.ErrInvalidSettings.WithDetails(problems)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return SettingsResponse{}, err
	}

	if err := s.repo.Upsert(ctx, &CompanySetting{
		CompanyID: cid,
		Document:  raw,
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now().UTC(),
	}); err != nil {
		return SettingsResponse{}, err
	}

	s.invalidate(ctx, companyID)
	s.logger.Info("company settings updated", zap.String("company_id", companyID), zap.String("updated_by", updatedBy))
	return SettingsResponse{CompanySettings: doc}, nil
}

func (s *service) ListRules(ctx context.Context, companyID string) ([]DeductionRuleResponse, error) {
	rules, err := s.repo.ListRules(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]DeductionRuleResponse, len(rules))
	for i, r := range rules {
		out[i] = mapRule(r)
	}
	return out, nil
}

func (s *service) GetRule(ctx context.Context, companyID, id string) (DeductionRuleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DeductionRuleResponse{}, settingserrors.ErrInvalidRuleID
	}
	rule, err := s.repo.FindRule(ctx, companyID, id)
	if err != nil {
		return DeductionRuleResponse{}, mapRuleError(err)
	}
	return mapRule(*rule), nil
}

func (s *service) CreateRule(ctx context.Context, companyID string, req DeductionRuleRequest) (DeductionRuleResponse, error) {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return DeductionRuleResponse{}, settingserrors.ErrInvalidRuleID
	}

	rule := &DeductionRule{ID: uuid.New(), CompanyID: cid, Active: true}
	if err := applyRule(rule, req); err != nil {
		return DeductionRuleResponse{}, err
	}

	if err := s.repo.CreateRule(ctx, rule); err != nil {
		return DeductionRuleResponse{}, err
	}
	return mapRule(*rule), nil
}

func (s *service) UpdateRule(ctx context.Context, companyID, id string, req DeductionRuleRequest) (DeductionRuleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DeductionRuleResponse{}, settingserrors.ErrInvalidRuleID
	}
	rule, err := s.repo.FindRule(ctx, companyID, id)
	if err != nil {
		return DeductionRuleResponse{}, mapRuleError(err)
	}
	if err := applyRule(rule, req); err != nil {
		return DeductionRuleResponse{}, err
	}
	if err := s.repo.UpdateRule(ctx, rule); err != nil {
		return DeductionRuleResponse{}, err
	}
	return mapRule(*rule), nil
}

func (s *service) DeleteRule(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return settingserrors.ErrInvalidRuleID
	}
	return mapRuleError(s.repo.DeleteRule(ctx, companyID, id))
}

func (s *service) ActiveRulesFor(ctx context.Context, companyID, employeeID string) ([]DeductionRule, error) {
	return s.repo.ListActiveRules(ctx, companyID, employeeID)
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("invalidate settings cache failed", zap.Error(err))
	}
}

func applyRule(rule *DeductionRule, req DeductionRuleRequest) error {
	t := strings.ToUpper(strings.TrimSpace(req.Type))
	if !IsRuleType(t) {
		return settingserrors.ErrInvalidRuleType
	}

	hundred := decimal.NewFromInt(100)
	switch t {
	case RulePercentOfBasic, RulePercentOfGross:
		if !req.Percent.IsPositive() || req.Percent.GreaterThan(hundred) {
			return settingserrors.ErrInvalidRuleValue
		}
	default:
		if req.Amount <= 0 {
			return settingserrors.ErrInvalidRuleValue
		}
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		id, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return settingserrors.ErrInvalidRuleValue
		}
		employeeID = &id
	}

	rule.Name = strings.TrimSpace(req.Name)
	rule.Type = t
	rule.Amount = req.Amount
	rule.Percent = req.Percent
	rule.EmployeeID = employeeID
	rule.LateGraceCount = req.LateGraceCount
	rule.Sequence = req.Sequence
	if req.Active != nil {
		rule.Active = *req.Active
	}
	return nil
}

func mapRule(r DeductionRule) DeductionRuleResponse {
	resp := DeductionRuleResponse{
		ID:             r.ID.String(),
		Name:           r.Name,
		Type:           r.Type,
		Amount:         r.Amount,
		Percent:        r.Percent,
		Active:         r.Active,
		LateGraceCount: r.LateGraceCount,
		Sequence:       r.Sequence,
	}
	if r.EmployeeID != nil {
		resp.EmployeeID = r.EmployeeID.String()
	}
	return resp
}

func mapRuleError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return settingserrors.ErrRuleNotFound
	}
	return err
}

func normalize(doc CompanySettings) CompanySettings {
	doc.WorkingDayPolicy = strings.ToUpper(strings.TrimSpace(doc.WorkingDayPolicy))
	doc.LateCutoff = strings.TrimSpace(doc.LateCutoff)
	if doc.LeaveEntitlements != nil {
		m := make(map[string]float64, len(doc.LeaveEntitlements))
		for k, v := range doc.LeaveEntitlements {
			m[strings.ToUpper(strings.TrimSpace(k))] = v
		}
		doc.LeaveEntitlements = m
	}
	if doc.ExpenseCategoryLimits != nil {
		m := make(map[string]int64, len(doc.ExpenseCategoryLimits))
		for k, v := range doc.ExpenseCategoryLimits {
			m[strings.ToUpper(strings.TrimSpace(k))] = v
		}
		doc.ExpenseCategoryLimits = m
	}
	return doc
}

func cloneSettings(doc CompanySettings) CompanySettings {
	raw, err := json.Marshal(doc)
	if err != nil {
		return doc
	}
	var out CompanySettings
	if err := json.Unmarshal(raw, &out); err != nil {
		return doc
	}
	return out
}
