package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	agentrepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/agent-repo"
	coderepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/code-repo"
	earningsrepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/earnings-repo"
	payoutrepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/payout-repo"
	usagerepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/usage-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.Agents)
	assert.NotNil(t, repo.Codes)
	assert.NotNil(t, repo.Usages)
	assert.NotNil(t, repo.Earnings)
	assert.NotNil(t, repo.Payouts)

	assert.IsType(t, &agentrepo.Repository{}, repo.Agents)
	assert.IsType(t, &coderepo.Repository{}, repo.Codes)
	assert.IsType(t, &usagerepo.Repository{}, repo.Usages)
	assert.IsType(t, &earningsrepo.Repository{}, repo.Earnings)
	assert.IsType(t, &payoutrepo.Repository{}, repo.Payouts)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
