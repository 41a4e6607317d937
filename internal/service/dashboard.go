package service

import (
	"context"
	"fmt"
	"time"

	"institute-portal-backend/internal/cache"
	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:counters"
	// DashboardTTL is how long computed counters are served from the cache
	DashboardTTL = 60 * time.Second
)

// ModuleVisibility tells which back-office modules a role can open
type ModuleVisibility interface {
	CanSeeModule(role, key string) bool
}

// Counter is one figure on the dashboard
type Counter struct {
	Module string `json:"module"`
	Key    string `json:"key"`
	Label  string `json:"label"`
	Value  int64  `json:"value"`
}

// Dashboard is the set of counters a user may see
type Dashboard struct {
	Counters    []Counter `json:"counters"`
	GeneratedAt time.Time `json:"generated_at"`
	Cached      bool      `json:"cached"`
}

type cachedCounters struct {
	Counters    []Counter `json:"counters"`
	GeneratedAt time.Time `json:"generated_at"`
}

// DashboardRepositories groups the counting queries the dashboard runs
type DashboardRepositories struct {
	Employees        repository.EmployeeRepositoryInterface
	PayrollRuns      repository.PayrollRunRepositoryInterface
	Procurement      repository.ProcurementRepositoryInterface
	Portarias        repository.PortariaRepositoryInterface
	PreRegistrations repository.PreRegistrationRepositoryInterface
	Assets           repository.AssetRepositoryInterface
}

// DashboardService computes the per-module counters of the home screen
type DashboardService struct {
	repos   DashboardRepositories
	store   cache.Store
	modules ModuleVisibility
	now     func() time.Time
}

// NewDashboardService creates a new dashboard service. store may be nil, in
// which case counters are computed on every request.
func NewDashboardService(repos DashboardRepositories, store cache.Store, modules ModuleVisibility) *DashboardService {
	return &DashboardService{
		repos:   repos,
		store:   store,
		modules: modules,
		now:     time.Now,
	}
}

// Get returns the counters of the modules role can see
func (s *DashboardService) Get(ctx context.Context, role string) (*Dashboard, error) {
	all, cached, err := s.counters(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]Counter, 0, len(all.Counters))
	for _, c := range all.Counters {
		if s.modules.CanSeeModule(role, c.Module) {
			visible = append(visible, c)
		}
	}
	return &Dashboard{Counters: visible, GeneratedAt: all.GeneratedAt, Cached: cached}, nil
}

// counters reads the counters from the cache or computes and stores them.
// Cache failures only cost a recomputation.
func (s *DashboardService) counters(ctx context.Context) (*cachedCounters, bool, error) {
	log := logger.WithContext(ctx)
	if s.store != nil {
		var hit cachedCounters
		ok, err := cache.GetJSON(ctx, s.store, dashboardCacheKey, &hit)
		if err != nil {
			log.WithError(err).Warn("dashboard cache read failed")
		}
		if ok {
			return &hit, true, nil
		}
	}

	computed, err := s.compute()
	if err != nil {
		return nil, false, err
	}
	if s.store != nil {
		if err := cache.SetJSON(ctx, s.store, dashboardCacheKey, computed, DashboardTTL); err != nil {
			log.WithError(err).Warn("dashboard cache write failed")
		}
	}
	return computed, false, nil
}

func (s *DashboardService) compute() (*cachedCounters, error) {
	type query struct {
		module, key, label string
		count              func() (int64, error)
	}
	queries := []query{
		{"hr", "employees_active", "Servidores ativos", func() (int64, error) {
			return s.repos.Employees.CountByStatus(models.EmployeeStatusActive)
		}},
		{"payroll", "payroll_runs_open", "Folhas em aberto", func() (int64, error) {
			return s.repos.PayrollRuns.CountByStatus(models.PayrollStatusOpen, models.PayrollStatusProcessing, models.PayrollStatusReopened)
		}},
		{"procurement", "procurement_in_progress", "Licitações em andamento", func() (int64, error) {
			return s.repos.Procurement.CountByStatus(models.ProcurementStatusInProgress)
		}},
		{"governance", "portarias_draft", "Portarias em rascunho", func() (int64, error) {
			return s.repos.Portarias.CountByStatus(models.PortariaStatusDraft)
		}},
		{"credentialing", "pre_registrations_pending", "Pré-cadastros pendentes", func() (int64, error) {
			return s.repos.PreRegistrations.CountByStatus(models.PreRegistrationStatusPending)
		}},
		{"assets", "assets_active", "Bens ativos", func() (int64, error) {
			return s.repos.Assets.CountByStatus(models.AssetStatusActive)
		}},
	}

	out := &cachedCounters{Counters: make([]Counter, 0, len(queries)), GeneratedAt: s.now()}
	for _, q := range queries {
		n, err := q.count()
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", q.key, err)
		}
		out.Counters = append(out.Counters, Counter{Module: q.module, Key: q.key, Label: q.label, Value: n})
	}
	return out, nil
}
