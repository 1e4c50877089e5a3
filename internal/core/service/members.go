package service

import (
	"context"
	"iter"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/dto"
	"github.com/coopware/grocery/internal/core/logger"
)

// AddMember enrolls a new member under a generated id.
func (g *Grocery) AddMember(ctx context.Context, request *dto.AddMemberRequest) *dto.MemberResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	member := domain.NewMember(request.Name, request.Address, request.Phone,
		request.JoinedAt, domain.NewAmountFromCents(request.FeePaid))
	if err := g.members.Insert(ctx, member); err != nil {
		logger.Error(ctx, "member: insert failed", err, map[string]any{
			"name": request.Name,
		})
		return memberResult(dto.CodeOperationFailed, nil)
	}

	logger.Info(ctx, "Member enrolled", map[string]any{"member_id": member.ID})
	return memberResult(dto.CodeOK, member)
}

// RemoveMember removes the member and returns their fields. The member's
// transactions stay in the transaction list.
func (g *Grocery) RemoveMember(ctx context.Context, memberID string) *dto.MemberResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	member, err := g.members.Remove(ctx, memberID)
	if err != nil {
		return memberResult(dto.CodeNoSuchMember, nil)
	}

	logger.Info(ctx, "Member removed", map[string]any{"member_id": member.ID})
	return memberResult(dto.CodeOK, member)
}

func (g *Grocery) SearchMember(ctx context.Context, memberID string) *dto.MemberResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	member, err := g.members.Search(ctx, memberID)
	if err != nil {
		return memberResult(dto.CodeNoSuchMember, nil)
	}
	return memberResult(dto.CodeOK, member)
}

func (g *Grocery) ListMembers(ctx context.Context) iter.Seq[dto.MemberResult] {
	g.mu.Lock()
	defer g.mu.Unlock()

	members, err := g.members.All(ctx)
	if err != nil {
		logger.Error(ctx, "member: list failed", err, nil)
		return emptyResults[dto.MemberResult]()
	}
	return lazyResults(members, func(m *domain.Member) dto.MemberResult {
		return *memberResult(dto.CodeOK, m)
	})
}

// FindMembersByNamePrefix matches member names case-insensitively on a
// "starts with" basis, preserving enrollment order.
func (g *Grocery) FindMembersByNamePrefix(ctx context.Context, prefix string) iter.Seq[dto.MemberResult] {
	g.mu.Lock()
	defer g.mu.Unlock()

	members, err := g.members.ByNamePrefix(ctx, prefix)
	if err != nil {
		logger.Error(ctx, "member: prefix search failed", err, map[string]any{"prefix": prefix})
		return emptyResults[dto.MemberResult]()
	}
	return lazyResults(members, func(m *domain.Member) dto.MemberResult {
		return *memberResult(dto.CodeOK, m)
	})
}

// GetMemberTransactions reports the member's transactions dated within
// [Start, End] inclusive. An unknown member or an inverted range yields an
// empty sequence, not an error; this is a fail-soft reporting query.
func (g *Grocery) GetMemberTransactions(ctx context.Context, request *dto.TransactionReportRequest) iter.Seq[dto.TransactionResult] {
	g.mu.Lock()
	defer g.mu.Unlock()

	member, err := g.members.Search(ctx, request.MemberID)
	if err != nil || request.Start.After(request.End) {
		return emptyResults[dto.TransactionResult]()
	}
	selected := member.TransactionsBetween(request.Start, request.End)
	return lazyResults(selected, func(t *domain.Transaction) dto.TransactionResult {
		return *transactionResult(dto.CodeOK, t)
	})
}
