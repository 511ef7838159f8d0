package models

import (
	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// DirectionResponse ответ с данными направления
type DirectionResponse struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Description          *string `json:"description,omitempty"`
	Requirements         *string `json:"requirements,omitempty"`
	CategoryID           int64   `json:"categoryId"`
	RequiresConfirmation bool    `json:"requiresConfirmation"`
}

// DistrictResponse ответ с данными отделения
type DistrictResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// DirectionListResponse ответ со списком направлений
type DirectionListResponse struct {
	Directions []DirectionResponse `json:"directions"`
	Total      int                 `json:"total"`
}

// FromDomainDirection конвертирует domain.Direction в DirectionResponse
func FromDomainDirection(dir *domain.Direction) DirectionResponse {
	return DirectionResponse{
		ID:                   dir.ID,
		Name:                 dir.Name,
		Description:          dir.Description,
		Requirements:         dir.Requirements,
		CategoryID:           dir.CategoryID,
		RequiresConfirmation: dir.RequiresConfirmation,
	}
}

// FromDomainDistrict конвертирует domain.District в DistrictResponse
func FromDomainDistrict(district *domain.District) *DistrictResponse {
	return &DistrictResponse{
		ID:      district.ID,
		Name:    district.Name,
		Address: district.Address,
		Phone:   district.Phone,
		Email:   district.Email,
	}
}

// FromDomainDirectionList конвертирует список domain.Direction в DirectionListResponse
func FromDomainDirectionList(dirs []*domain.Direction) *DirectionListResponse {
	directions := make([]DirectionResponse, 0, len(dirs))
	for _, dir := range dirs {
		directions = append(directions, FromDomainDirection(dir))
	}

	return &DirectionListResponse{
		Directions: directions,
		Total:      len(directions),
	}
}
