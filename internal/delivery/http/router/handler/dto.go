package handler

import (
	"time"

	"carhub/internal/domain/entity"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type carTagsResponse struct {
	Company string `json:"company"`
	CarType string `json:"carType"`
	Dealer  string `json:"dealer"`
}

type carResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        carTagsResponse `json:"tags"`
	Images      []string        `json:"images"`
	Owner       string          `json:"owner"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func toCarResponse(car *entity.Car) *carResponse {
	if car == nil {
		return nil
	}

	images := car.Images
	if images == nil {
		images = []string{}
	}

	return &carResponse{
		ID:          car.ID.String(),
		Title:       car.Title,
		Description: car.Description,
		Tags: carTagsResponse{
			Company: car.Tags.Company,
			CarType: car.Tags.CarType,
			Dealer:  car.Tags.Dealer,
		},
		Images:    images,
		Owner:     car.OwnerID.String(),
		CreatedAt: car.CreatedAt,
		UpdatedAt: car.UpdatedAt,
	}
}

func toCarResponses(cars []*entity.Car) []*carResponse {
	out := make([]*carResponse, 0, len(cars))
	for _, car := range cars {
		out = append(out, toCarResponse(car))
	}

	return out
}
