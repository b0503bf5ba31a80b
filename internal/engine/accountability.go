package engine

import (
	"context"
	"strings"

	"vitacoach/internal/catalog"
	"vitacoach/internal/storage"
)

// SetPartner stores the accountability partner's email.
func (s *Service) SetPartner(ctx context.Context, email string) (*storage.Accountability, error) {
	addr, err := parseEmail("partner email", email)
	if err != nil {
		return nil, err
	}
	st, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireRole(st, RolePatient); err != nil {
			return err
		}
		st.Accountability.PartnerEmail = addr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &st.Accountability, nil
}

type ContractInput struct {
	Goal        string
	StakeCents  int64
	AntiCharity string
}

// SetContract records a commitment contract. It is data only; nothing
// enforces or collects the stake.
func (s *Service) SetContract(ctx context.Context, in ContractInput) (*storage.CommitmentContract, error) {
	goal := strings.TrimSpace(in.Goal)
	if goal == "" {
		return nil, required("goal")
	}
	if in.StakeCents <= 0 {
		return nil, ValidationError{Field: "stake", Reason: "must be greater than zero"}
	}
	anti := strings.TrimSpace(in.AntiCharity)
	if anti != "" && !catalog.IsAntiCharity(anti) {
		return nil, ValidationError{Field: "anti-charity", Reason: "not one of the listed organisations"}
	}

	c := &storage.CommitmentContract{
		Goal:        goal,
		StakeCents:  in.StakeCents,
		AntiCharity: anti,
		CreatedAt:   s.now().UTC(),
	}
	if _, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireRole(st, RolePatient); err != nil {
			return err
		}
		st.Accountability.Contract = c
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "commitment contract set", "stake_cents", c.StakeCents)
	return c, nil
}

func (s *Service) ClearContract(ctx context.Context) error {
	_, err := s.update(ctx, func(st *storage.State) error {
		if err := RequireRole(st, RolePatient); err != nil {
			return err
		}
		st.Accountability.Contract = nil
		return nil
	})
	return err
}
