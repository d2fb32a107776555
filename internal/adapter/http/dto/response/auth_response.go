package response

import "github.com/giordanomadjo-lab/sisgped/internal/domain/entities"

type LoginResponse struct {
	User entities.SessionUser `json:"user"`
}
