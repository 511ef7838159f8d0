package book_session

import (
	"fmt"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor id must be positive", ErrInvalidInput)
	}

	if req.WorkingHourID <= 0 {
		return fmt.Errorf("%w: working_hours_id must be positive", ErrInvalidInput)
	}

	if req.DistrictID <= 0 {
		return fmt.Errorf("%w: district_id must be positive", ErrInvalidInput)
	}

	if req.DirectionID <= 0 {
		return fmt.Errorf("%w: direction_id must be positive", ErrInvalidInput)
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: client_id must be positive", ErrInvalidInput)
	}

	return nil
}

// resolveClient возвращает id клиента, для которого создается сессия
func resolveClient(req *Request) (int64, error) {
	if req.Actor.IsAdmin() {
		if req.ClientID == nil {
			return 0, fmt.Errorf("%w: client_id is required for admin booking", ErrInvalidInput)
		}
		return *req.ClientID, nil
	}

	if req.ClientID != nil && *req.ClientID != req.Actor.ID {
		return 0, ErrForbidden
	}

	return req.Actor.ID, nil
}
