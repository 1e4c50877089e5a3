package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/coopware/grocery/internal/core/domain"
	"github.com/coopware/grocery/internal/core/port"
	"github.com/coopware/grocery/internal/core/serviceerrors"
)

// memberIDPrefix marks generated member ids, e.g. "M12".
const memberIDPrefix = "M"

// MemberRepository keeps members in enrollment order and owns the member id
// sequence.
type MemberRepository struct {
	members []*domain.Member
	seq     int
}

func NewMemberRepository() port.MemberPort {
	return &MemberRepository{}
}

func (r *MemberRepository) Insert(_ context.Context, member *domain.Member) error {
	r.seq++
	member.ID = fmt.Sprintf("%s%d", memberIDPrefix, r.seq)
	r.members = append(r.members, member)
	return nil
}

func (r *MemberRepository) Search(_ context.Context, memberID string) (*domain.Member, error) {
	for _, member := range r.members {
		if member.ID == memberID {
			return member, nil
		}
	}
	return nil, serviceerrors.NewNotFoundError(fmt.Sprintf("member %s not found", memberID))
}

func (r *MemberRepository) Remove(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := r.Search(ctx, memberID)
	if err != nil {
		return nil, err
	}
	for i, m := range r.members {
		if m == member {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	return member, nil
}

func (r *MemberRepository) ByNamePrefix(_ context.Context, prefix string) ([]*domain.Member, error) {
	lowered := strings.ToLower(prefix)
	var matched []*domain.Member
	for _, member := range r.members {
		if strings.HasPrefix(strings.ToLower(member.Name), lowered) {
			matched = append(matched, member)
		}
	}
	return matched, nil
}

func (r *MemberRepository) All(_ context.Context) ([]*domain.Member, error) {
	snapshot := make([]*domain.Member, len(r.members))
	copy(snapshot, r.members)
	return snapshot, nil
}

func (r *MemberRepository) Sequence(_ context.Context) (int, error) {
	return r.seq, nil
}

func (r *MemberRepository) Restore(_ context.Context, members []*domain.Member, seq int) error {
	r.members = members
	r.seq = seq
	return nil
}
