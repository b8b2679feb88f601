package repo

import (
	"github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/pg"
	agentrepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/agent-repo"
	coderepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/code-repo"
	earningsrepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/earnings-repo"
	payoutrepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/payout-repo"
	usagerepo "github.com/Planettalk-Limited/AgentPortalBackend-sub001/internal/repo/usage-repo"
)

type Repositories struct {
	Agents   *agentrepo.Repository
	Codes    *coderepo.Repository
	Usages   *usagerepo.Repository
	Earnings *earningsrepo.Repository
	Payouts  *payoutrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Agents:   agentrepo.New(conn),
		Codes:    coderepo.New(conn),
		Usages:   usagerepo.New(conn),
		Earnings: earningsrepo.New(conn),
		Payouts:  payoutrepo.New(conn),
	}
}
