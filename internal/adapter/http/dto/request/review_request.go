package request

import "thaki_platform/internal/domain/entities"

type AddReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

func (r AddReviewRequest) ToEntity() entities.Review {
	return entities.Review{Name: r.Name, Rating: r.Rating, Comment: r.Comment}
}
