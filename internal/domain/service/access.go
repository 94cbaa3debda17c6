package service

import (
	"context"
)

// CanManage reports whether the member may approve leave, record moderation
// actions and change settings. With no manager groups configured anyone may.
func (s *staffService) CanManage(ctx context.Context, teamID, userID string) (bool, error) {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return false, err
	}
	return s.inAnyGroup(ctx, org.Config.ManagerGroupIDs, userID)
}

// CanUseShiftCommands reports whether the member may take shifts and apply for leave
func (s *staffService) CanUseShiftCommands(ctx context.Context, teamID, userID string) (bool, error) {
	org, err := ensureOrganization(ctx, s.dm, teamID)
	if err != nil {
		return false, err
	}

	if len(org.Config.AllowedGroupIDs) == 0 {
		return true, nil
	}

	allowed, err := s.inAnyGroup(ctx, org.Config.AllowedGroupIDs, userID)
	if err != nil || allowed {
		return allowed, err
	}

	// managers are always allowed
	if len(org.Config.ManagerGroupIDs) == 0 {
		return false, nil
	}
	return s.inAnyGroup(ctx, org.Config.ManagerGroupIDs, userID)
}

func (s *staffService) inAnyGroup(ctx context.Context, groupIDs []string, userID string) (bool, error) {
	if len(groupIDs) == 0 {
		return true, nil
	}

	for _, groupID := range groupIDs {
		held, err := s.hasRole(ctx, groupID, userID)
		if err != nil {
			return false, err
		}
		if held {
			return true, nil
		}
	}
	return false, nil
}
