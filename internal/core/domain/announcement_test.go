package domain_test

import (
	"testing"

	"github.com/afsarfurkan25-ux/exchange-board-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEligibleGroups(t *testing.T) {
	testCases := []struct {
		name     string
		member   *domain.Member
		expected []domain.TargetGroup
	}{
		{
			name:     "nil viewer sees nothing",
			member:   nil,
			expected: nil,
		},
		{
			name:   "admin sees universal and manager groups",
			member: &domain.Member{Role: domain.RoleAdmin},
			expected: []domain.TargetGroup{
				domain.TargetAllMembers, domain.TargetManagers,
			},
		},
		{
			name:   "manager sees universal and manager groups",
			member: &domain.Member{Role: domain.RoleManager},
			expected: []domain.TargetGroup{
				domain.TargetAllMembers, domain.TargetManagers,
			},
		},
		{
			name:   "standard member sees universal and standard groups",
			member: &domain.Member{Role: domain.RoleMember},
			expected: []domain.TargetGroup{
				domain.TargetAllMembers, domain.TargetStandardMembers,
			},
		},
		{
			name:   "member with a shop additionally sees the jeweler group",
			member: &domain.Member{Role: domain.RoleMember, ShopName: "Altın Dünyası"},
			expected: []domain.TargetGroup{
				domain.TargetAllMembers, domain.TargetStandardMembers, domain.TargetJewelers,
			},
		},
		{
			name:   "admin with a shop sees manager and jeweler groups",
			member: &domain.Member{Role: domain.RoleAdmin, ShopName: "Sarraf"},
			expected: []domain.TargetGroup{
				domain.TargetAllMembers, domain.TargetManagers, domain.TargetJewelers,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.EligibleGroups(tc.member))
		})
	}
}

func TestIsEligible(t *testing.T) {
	member := &domain.Member{Role: domain.RoleMember}

	assert.True(t, domain.IsEligible(member, domain.TargetAllMembers))
	assert.True(t, domain.IsEligible(member, domain.TargetStandardMembers))
	assert.False(t, domain.IsEligible(member, domain.TargetManagers))
	assert.False(t, domain.IsEligible(member, domain.TargetJewelers))
	assert.False(t, domain.IsEligible(nil, domain.TargetAllMembers))
}

func TestMemberIsActive(t *testing.T) {
	active := domain.Member{Status: domain.StatusActive}
	inactive := domain.Member{Status: domain.StatusInactive}

	assert.True(t, active.IsActive())
	assert.False(t, inactive.IsActive())
}
