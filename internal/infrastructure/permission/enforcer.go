package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"aula/internal/shared/logger"
)

// Enforcer wraps a casbin enforcer backed by a gorm policy store. Subjects
// are user UUIDs, grouped into role slugs.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(subject, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "subject", subject, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

func (e *Enforcer) AddPolicy(role, resource, action string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}

	return e.enforcer.SavePolicy()
}

// SetRoleForUser replaces the user's role grouping with the given role.
// A user holds exactly one platform role at a time.
func (e *Enforcer) SetRoleForUser(userUUID, role string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.DeleteRolesForUser(userUUID); err != nil {
		return fmt.Errorf("failed to clear roles for user: %w", err)
	}

	if _, err := e.enforcer.AddRoleForUser(userUUID, role); err != nil {
		return fmt.Errorf("failed to add role for user: %w", err)
	}

	return e.enforcer.SavePolicy()
}

func (e *Enforcer) GetRolesForUser(userUUID string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	roles, err := e.enforcer.GetRolesForUser(userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles for user: %w", err)
	}

	return roles, nil
}
