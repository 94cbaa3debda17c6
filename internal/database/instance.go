package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-shift-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	organizationRepo contract.OrganizationRepo
	shiftRepo        contract.ShiftRepo
	loaRepo          contract.LOARepo
	statsRepo        contract.StatsRepo
	warningRepo      contract.WarningRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		organizationRepo: newOrganizationRepo(db),
		shiftRepo:        newShiftRepo(db),
		loaRepo:          newLOARepo(db),
		statsRepo:        newStatsRepo(db),
		warningRepo:      newWarningRepo(db),
	}
}

// Organization returns the organization repository
func (i *instance) Organization() contract.OrganizationRepo {
	return i.organizationRepo
}

// Shift returns the shift repository
func (i *instance) Shift() contract.ShiftRepo {
	return i.shiftRepo
}

// LOA returns the leave of absence repository
func (i *instance) LOA() contract.LOARepo {
	return i.loaRepo
}

// Stats returns the staff statistics repository
func (i *instance) Stats() contract.StatsRepo {
	return i.statsRepo
}

// Warning returns the warning repository
func (i *instance) Warning() contract.WarningRepo {
	return i.warningRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
