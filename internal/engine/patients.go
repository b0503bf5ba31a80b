package engine

import (
	"context"

	"vitacoach/internal/catalog"
)

// requireDoctor loads the blob and checks the doctor view is active.
func (s *Service) requireDoctor(ctx context.Context) error {
	st, err := s.State(ctx)
	if err != nil {
		return err
	}
	return RequireRole(st, RoleDoctor)
}

func (s *Service) SearchPatients(ctx context.Context, q string, risk catalog.RiskLevel) ([]catalog.Patient, error) {
	if err := s.requireDoctor(ctx); err != nil {
		return nil, err
	}
	return catalog.SearchPatients(q, risk), nil
}

func (s *Service) PatientDetail(ctx context.Context, id string, tab catalog.Tab) (*catalog.PatientDetail, error) {
	if err := s.requireDoctor(ctx); err != nil {
		return nil, err
	}
	return catalog.GetPatientDetail(id, tab)
}

func (s *Service) PatientLabs(ctx context.Context, id string) ([]catalog.LabResult, error) {
	if err := s.requireDoctor(ctx); err != nil {
		return nil, err
	}
	return catalog.LabsForPatient(id)
}

// SearchGenetics is doctor-only since markers belong to patients.
func (s *Service) SearchGenetics(ctx context.Context, q string) ([]catalog.GeneticMarker, error) {
	if err := s.requireDoctor(ctx); err != nil {
		return nil, err
	}
	return catalog.SearchGenetics(q), nil
}
