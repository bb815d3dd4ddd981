package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/booking"
)

// DoctorService exposes the read-only doctor directory.
type DoctorService interface {
	GetAllDoctors() ([]models.DoctorDTO, error)
	GetDoctorByID(id string) (*models.DoctorDTO, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// GetAllDoctors returns the public view of every doctor in the directory.
func (s *DefaultDoctorService) GetAllDoctors() ([]models.DoctorDTO, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}

	dtos := make([]models.DoctorDTO, 0, len(doctors))
	for i := range doctors {
		dtos = append(dtos, doctors[i].DTO())
	}
	return dtos, nil
}

// GetDoctorByID returns the public view of a single doctor.
func (s *DefaultDoctorService) GetDoctorByID(id string) (*models.DoctorDTO, error) {
	if id == "" {
		return nil, booking.NewValidationError("doctor id is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, booking.NewNotFoundError(fmt.Sprintf("doctor %q not found", id))
		}
		return nil, fmt.Errorf("failed to retrieve doctor: %w", err)
	}

	dto := doc.DTO()
	return &dto, nil
}
